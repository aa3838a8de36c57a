package domain

import "fmt"

// Money is an immutable amount in one of the supported currencies.
// The zero value is 0 USD.
type Money struct {
	amount   int
	currency Currency
}

// NewMoney fails with ErrInvalidCurrency when c is not a supported currency.
func NewMoney(amount int, c Currency) (Money, error) {
	if !c.Valid() {
		return Money{}, invalidCurrency("money.new", c.String())
	}
	return Money{amount: amount, currency: c}, nil
}

// MustMoney is like NewMoney but panics on an unsupported currency.
func MustMoney(amount int, c Currency) Money {
	m, err := NewMoney(amount, c)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() int {
	return m.amount
}

func (m Money) Currency() Currency {
	return m.currency
}

// Convert uses the default exchange tables.
func (m Money) Convert(to Currency) (Money, error) {
	return defaultExchange.Convert(m, to)
}

// Add converts other into m's currency and returns the sum in m's currency.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.in(m.currency), currency: m.currency}
}

// Subtract converts other into m's currency and returns the difference in m's currency.
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount - other.in(m.currency), currency: m.currency}
}

// Equal reports whether both amount and currency match. No conversion is done.
func (m Money) Equal(other Money) bool {
	return m == other
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}

// in returns the amount of m expressed in c. Both currencies are valid by
// construction, so the default tables always have a factor for them.
func (m Money) in(c Currency) int {
	converted, err := defaultExchange.Convert(m, c)
	if err != nil {
		panic(err)
	}
	return converted.amount
}
