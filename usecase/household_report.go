package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/domainmodel/domain"
)

type HouseholdReport struct {
	cfg domain.Config
	log *slog.Logger
}

type ReportOption func(*HouseholdReport)

func WithLogger(l *slog.Logger) ReportOption {
	return func(uc *HouseholdReport) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewHouseholdReport(cfg domain.Config, opts ...ReportOption) *HouseholdReport {
	uc := &HouseholdReport{
		cfg: cfg,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute breaks the family's income down per member over the configured annual
// hours. Incomes are in the configured base currency; Total is converted to target.
func (uc *HouseholdReport) Execute(ctx context.Context, fam *domain.Family, target domain.Currency) (domain.IncomeReport, error) {
	if fam == nil {
		return domain.IncomeReport{}, &domain.OpError{
			Op:   "usecase.household_report",
			Kind: domain.KindInvalidFamily,
			Err:  domain.ErrInvalidFamily,
		}
	}

	hours := uc.cfg.Household.AnnualHours
	members := fam.Members()

	report := domain.IncomeReport{
		Hours:   hours,
		Members: make([]domain.MemberIncome, 0, len(members)),
	}

	total := 0
	for _, m := range members {
		if err := ctx.Err(); err != nil {
			return domain.IncomeReport{}, err
		}

		row := domain.MemberIncome{
			Name:     m.FirstName + " " + m.LastName,
			Age:      m.Age,
			Employed: m.Job() != nil,
		}
		if row.Employed && m.IsAdult() {
			row.Counted = true
			row.Income = m.Job().CalculateIncome(hours)
			total += row.Income
		}

		uc.log.Debug("household.member",
			"name", row.Name,
			"age", row.Age,
			"counted", row.Counted,
			"income", row.Income,
		)
		report.Members = append(report.Members, row)
	}

	base, err := domain.NewMoney(total, uc.cfg.Household.BaseCurrency)
	if err != nil {
		return domain.IncomeReport{}, err
	}
	converted, err := uc.cfg.Exchange.Convert(base, target)
	if err != nil {
		return domain.IncomeReport{}, err
	}

	report.Base = base
	report.Total = converted

	uc.log.Info("household.report",
		"members", len(report.Members),
		"hours", hours,
		"base", base.String(),
		"total", converted.String(),
	)
	return report, nil
}
