package domain

// MemberIncome is one row of an IncomeReport. Counted is true when the member
// contributes to the household total.
type MemberIncome struct {
	Name     string
	Age      int
	Employed bool
	Counted  bool
	Income   int
}

// IncomeReport breaks a family's income down per member.
type IncomeReport struct {
	Hours   int
	Members []MemberIncome
	Base    Money
	Total   Money
}
