package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/domainmodel/domain"
)

// MapConfig applies parsed values on top of domain.DefaultConfig and validates the result.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	dm := y.DomainModel

	if err := mapFactors(path, "exchange.to_usd", dm.Exchange.ToUSD, cfg.Exchange.ToUSD); err != nil {
		return domain.DefaultConfig(), err
	}
	if err := mapFactors(path, "exchange.from_usd", dm.Exchange.FromUSD, cfg.Exchange.FromUSD); err != nil {
		return domain.DefaultConfig(), err
	}
	if err := cfg.Exchange.Validate(); err != nil {
		return domain.DefaultConfig(), invalidField(path, "exchange", err.Error())
	}

	if dm.Household.AnnualHours != nil {
		if *dm.Household.AnnualHours < 0 {
			return domain.DefaultConfig(), invalidField(path, "household.annual_hours", "must not be negative")
		}
		cfg.Household.AnnualHours = *dm.Household.AnnualHours
	}
	if strings.TrimSpace(dm.Household.BaseCurrency) != "" {
		c, err := domain.ParseCurrency(dm.Household.BaseCurrency)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "household.base_currency",
				fmt.Sprintf("unsupported currency %q", dm.Household.BaseCurrency))
		}
		cfg.Household.BaseCurrency = c
	}

	if dm.Logging.Debug != nil {
		cfg.Logging.Debug = *dm.Logging.Debug
	}
	if strings.TrimSpace(dm.Logging.Dir) != "" {
		cfg.Logging.Dir = strings.TrimSpace(dm.Logging.Dir)
	}

	return cfg, nil
}

// mapFactors rejects two keys naming the same currency ("GBP" and "gbp", or
// "CAN" and "CAD"), since map order would otherwise pick the winner.
func mapFactors(path, field string, in map[string]float64, out map[domain.Currency]float64) error {
	codes := make([]string, 0, len(in))
	for code := range in {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	seen := make(map[domain.Currency]string, len(codes))

	for _, code := range codes {
		c, err := domain.ParseCurrency(code)
		if err != nil {
			return invalidField(path, fmt.Sprintf("%s.%s", field, code), "unsupported currency")
		}
		if prev, dup := seen[c]; dup {
			return invalidField(path, fmt.Sprintf("%s.%s", field, code),
				fmt.Sprintf("duplicates %s.%s", field, prev))
		}
		seen[c] = code

		factor := in[code]
		if factor <= 0 {
			return invalidField(path, fmt.Sprintf("%s.%s", field, code), "factor must be positive")
		}
		out[c] = factor
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
