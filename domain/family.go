package domain

import (
	"errors"
	"fmt"
	"slices"
)

// AnnualHours is the yearly hour basis used for household income.
const AnnualHours = 2000

// ParentAge is the age a member must exceed before the family may have a child.
const ParentAge = 21

// Family records two spouses followed by any children. It links the spouses
// to each other but does not own any Person.
type Family struct {
	members []*Person
}

// NewFamily marries spouse1 and spouse2. Both must be distinct, unmarried adults.
func NewFamily(spouse1, spouse2 *Person) (*Family, error) {
	switch {
	case spouse1 == nil || spouse2 == nil:
		return nil, invalidFamily(errors.New("both spouses are required"))
	case spouse1 == spouse2:
		return nil, invalidFamily(fmt.Errorf("%s cannot marry themselves", spouse1.FirstName))
	case spouse1.spouse != nil:
		return nil, invalidFamily(fmt.Errorf("%s is already married", spouse1.FirstName))
	case spouse2.spouse != nil:
		return nil, invalidFamily(fmt.Errorf("%s is already married", spouse2.FirstName))
	case !spouse1.IsAdult():
		return nil, invalidFamily(fmt.Errorf("%s is under %d", spouse1.FirstName, AdultAge))
	case !spouse2.IsAdult():
		return nil, invalidFamily(fmt.Errorf("%s is under %d", spouse2.FirstName, AdultAge))
	}

	spouse1.spouse = spouse2
	spouse2.spouse = spouse1

	return &Family{members: []*Person{spouse1, spouse2}}, nil
}

// HaveChild appends child when any current member is older than ParentAge.
// It reports whether the child was added.
func (f *Family) HaveChild(child *Person) bool {
	if child == nil {
		return false
	}
	eligible := slices.ContainsFunc(f.members, func(p *Person) bool {
		return p.Age > ParentAge
	})
	if !eligible {
		return false
	}
	f.members = append(f.members, child)
	return true
}

// HouseholdIncome is IncomeFor(AnnualHours).
func (f *Family) HouseholdIncome() int {
	return f.IncomeFor(AnnualHours)
}

// IncomeFor sums the income of every adult member with a job over hours.
func (f *Family) IncomeFor(hours int) int {
	total := 0
	for _, m := range f.members {
		if m.IsAdult() && m.job != nil {
			total += m.job.CalculateIncome(hours)
		}
	}
	return total
}

// Members returns a copy of the member list, spouses first.
func (f *Family) Members() []*Person {
	return slices.Clone(f.members)
}

func (f *Family) Size() int {
	return len(f.members)
}

func invalidFamily(err error) error {
	return &OpError{
		Op:   "family.new",
		Kind: KindInvalidFamily,
		Err:  fmt.Errorf("%w: %w", ErrInvalidFamily, err),
	}
}
