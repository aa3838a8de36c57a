package domain

import (
	"fmt"
	"maps"
)

// Exchange holds the two conversion tables. Amounts are converted to USD with ToUSD
// and from USD into the target with FromUSD.
type Exchange struct {
	ToUSD   map[Currency]float64
	FromUSD map[Currency]float64
}

var defaultExchange = Exchange{
	ToUSD: map[Currency]float64{
		USD: 1.0,
		GBP: 2.0,
		EUR: 2.0 / 3.0,
		CAN: 0.8,
	},
	FromUSD: map[Currency]float64{
		USD: 1.0,
		GBP: 0.5,
		EUR: 1.5,
		CAN: 1.25,
	},
}

// DefaultExchange returns a copy of the fixed conversion tables.
func DefaultExchange() Exchange {
	return defaultExchange.Clone()
}

func (e Exchange) Clone() Exchange {
	return Exchange{
		ToUSD:   maps.Clone(e.ToUSD),
		FromUSD: maps.Clone(e.FromUSD),
	}
}

// Validate checks that every supported currency has a positive factor in both tables.
func (e Exchange) Validate() error {
	for _, c := range Currencies() {
		if f, ok := e.ToUSD[c]; !ok || f <= 0 {
			return fmt.Errorf("to_usd.%s: missing or non-positive factor: %w", c, ErrInvalidConfig)
		}
		if f, ok := e.FromUSD[c]; !ok || f <= 0 {
			return fmt.Errorf("from_usd.%s: missing or non-positive factor: %w", c, ErrInvalidConfig)
		}
	}
	return nil
}

// Rate is the multiplier applied to an amount in from to obtain an amount in to.
func (e Exchange) Rate(from, to Currency) (float64, error) {
	if !from.Valid() {
		return 0, invalidCurrency("exchange.rate", from.String())
	}
	if !to.Valid() {
		return 0, invalidCurrency("exchange.rate", to.String())
	}
	in, ok := e.ToUSD[from]
	if !ok {
		return 0, missingFactor("to_usd", from)
	}
	out, ok := e.FromUSD[to]
	if !ok {
		return 0, missingFactor("from_usd", to)
	}
	return in * out, nil
}

// Convert expresses m in the target currency. The result is truncated toward zero,
// so a round trip through another currency may lose a few units.
func (e Exchange) Convert(m Money, to Currency) (Money, error) {
	if !to.Valid() {
		return Money{}, invalidCurrency("money.convert", to.String())
	}
	in, ok := e.ToUSD[m.currency]
	if !ok {
		return Money{}, missingFactor("to_usd", m.currency)
	}
	out, ok := e.FromUSD[to]
	if !ok {
		return Money{}, missingFactor("from_usd", to)
	}
	usd := float64(m.amount) * in
	return Money{amount: int(usd * out), currency: to}, nil
}

func missingFactor(table string, c Currency) error {
	return &OpError{
		Op:   "exchange.convert",
		Kind: KindInvalidCurrency,
		Err:  fmt.Errorf("%s has no factor for %s: %w", table, c, ErrInvalidCurrency),
	}
}
