package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/aalvaropc/domainmodel/domain"
)

func newNewards(t *testing.T) (*domain.Family, *domain.Person, *domain.Person) {
	t.Helper()

	ted := domain.NewPerson("Ted", "Neward", 45)
	charlotte := domain.NewPerson("Charlotte", "Neward", 45)
	ted.SetJob(domain.NewJob("Guest Lecturer", domain.Salary{Amount: 1000}))
	charlotte.SetJob(domain.NewJob("Consultant", domain.Hourly{Rate: 15}))

	fam, err := domain.NewFamily(ted, charlotte)
	if err != nil {
		t.Fatalf("NewFamily: %v", err)
	}
	return fam, ted, charlotte
}

func TestHouseholdReport_MatchesHouseholdIncome(t *testing.T) {
	fam, _, _ := newNewards(t)
	kid := domain.NewPerson("Mike", "Neward", 12)
	kid.SetJob(domain.NewJob("Paper boy", domain.Hourly{Rate: 5}))
	if !fam.HaveChild(kid) {
		t.Fatalf("expected child to be added")
	}

	uc := NewHouseholdReport(domain.DefaultConfig())
	report, err := uc.Execute(context.Background(), fam, domain.USD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Hours != domain.AnnualHours {
		t.Fatalf("expected %d hours, got %d", domain.AnnualHours, report.Hours)
	}
	if report.Total.Amount() != fam.HouseholdIncome() {
		t.Fatalf("expected total %d, got %s", fam.HouseholdIncome(), report.Total)
	}
	if len(report.Members) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report.Members))
	}

	child := report.Members[2]
	if child.Name != "Mike Neward" || child.Counted || child.Income != 0 {
		t.Fatalf("expected child row to be excluded, got %+v", child)
	}
	if child.Employed {
		t.Fatalf("expected minor job assignment to have been dropped")
	}
	if !report.Members[1].Counted || report.Members[1].Income != 30000 {
		t.Fatalf("unexpected hourly row %+v", report.Members[1])
	}
}

func TestHouseholdReport_ConvertsTotal(t *testing.T) {
	fam, _, _ := newNewards(t)

	uc := NewHouseholdReport(domain.DefaultConfig())
	report, err := uc.Execute(context.Background(), fam, domain.GBP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Base.Equal(domain.MustMoney(31000, domain.USD)) {
		t.Fatalf("expected base 31000 USD, got %s", report.Base)
	}
	if !report.Total.Equal(domain.MustMoney(15500, domain.GBP)) {
		t.Fatalf("expected 15500 GBP, got %s", report.Total)
	}
}

func TestHouseholdReport_UsesConfig(t *testing.T) {
	fam, _, _ := newNewards(t)

	cfg := domain.DefaultConfig()
	cfg.Household.AnnualHours = 100
	cfg.Household.BaseCurrency = domain.GBP
	cfg.Exchange.ToUSD[domain.GBP] = 1.0

	uc := NewHouseholdReport(cfg)
	report, err := uc.Execute(context.Background(), fam, domain.USD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1000 salary + 15 * 100 hourly, at parity.
	if !report.Total.Equal(domain.MustMoney(2500, domain.USD)) {
		t.Fatalf("expected 2500 USD, got %s", report.Total)
	}
	if report.Base.Currency() != domain.GBP {
		t.Fatalf("expected GBP base, got %s", report.Base)
	}
}

func TestHouseholdReport_UnsupportedTarget(t *testing.T) {
	fam, _, _ := newNewards(t)

	uc := NewHouseholdReport(domain.DefaultConfig())
	_, err := uc.Execute(context.Background(), fam, domain.Currency(99))
	if !errors.Is(err, domain.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestHouseholdReport_NilFamily(t *testing.T) {
	uc := NewHouseholdReport(domain.DefaultConfig())
	_, err := uc.Execute(context.Background(), nil, domain.USD)
	if !domain.IsKind(err, domain.KindInvalidFamily) {
		t.Fatalf("expected KindInvalidFamily, got %v", err)
	}
}

func TestHouseholdReport_ContextCancelled(t *testing.T) {
	fam, _, _ := newNewards(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before Execute

	uc := NewHouseholdReport(domain.DefaultConfig())
	_, err := uc.Execute(ctx, fam, domain.USD)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestHouseholdReport_Logs(t *testing.T) {
	fam, _, _ := newNewards(t)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	uc := NewHouseholdReport(domain.DefaultConfig(), WithLogger(l))
	if _, err := uc.Execute(context.Background(), fam, domain.USD); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Count(out, "household.member") != 2 {
		t.Fatalf("expected one debug line per member, got:\n%s", out)
	}
	if !strings.Contains(out, `total="31000 USD"`) {
		t.Fatalf("expected total in report log, got:\n%s", out)
	}
}
