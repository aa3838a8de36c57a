package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PayScheme is either Hourly or Salary.
type PayScheme interface {
	payScheme()
}

// Hourly pays Rate per hour worked.
type Hourly struct {
	Rate float64
}

// Salary pays Amount regardless of hours worked.
type Salary struct {
	Amount int
}

func (Hourly) payScheme() {}
func (Salary) payScheme() {}

func (h Hourly) String() string {
	s := strconv.FormatFloat(h.Rate, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return "Hourly(" + s + ")"
}

func (s Salary) String() string {
	return fmt.Sprintf("Salary(%d)", s.Amount)
}

// Job pairs a title with a pay scheme. Raises change Pay in place.
type Job struct {
	Title string
	Pay   PayScheme
}

func NewJob(title string, pay PayScheme) *Job {
	return &Job{Title: title, Pay: pay}
}

// CalculateIncome returns the income for the given hours. Hourly income is
// truncated toward zero; salaried income ignores hours.
func (j *Job) CalculateIncome(hoursWorked int) int {
	switch p := j.Pay.(type) {
	case Hourly:
		return int(p.Rate * float64(hoursWorked))
	case Salary:
		return p.Amount
	default:
		return 0
	}
}

// RaiseByAmount adds amount to the hourly rate, or its truncated value to the salary.
func (j *Job) RaiseByAmount(amount float64) {
	switch p := j.Pay.(type) {
	case Hourly:
		j.Pay = Hourly{Rate: p.Rate + amount}
	case Salary:
		j.Pay = Salary{Amount: p.Amount + int(amount)}
	}
}

// RaiseByPercent scales the pay. Hourly takes percent as a fraction (1.0 doubles
// the rate); Salary takes whole percentage points (10 adds a tenth).
func (j *Job) RaiseByPercent(percent float64) {
	switch p := j.Pay.(type) {
	case Hourly:
		j.Pay = Hourly{Rate: p.Rate * (1 + percent)}
	case Salary:
		j.Pay = Salary{Amount: int(float64(p.Amount) * (1 + percent/100))}
	}
}

// Describe renders the pay scheme, e.g. "Salary(1000)" or "Hourly(15.0)".
func (j *Job) Describe() string {
	if j == nil || j.Pay == nil {
		return "None"
	}
	return fmt.Sprint(j.Pay)
}
