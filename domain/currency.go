package domain

import (
	"fmt"
	"strings"

	iso "golang.org/x/text/currency"
)

// Currency is one of the supported currency codes. USD is the zero value.
type Currency uint8

const (
	USD Currency = iota
	GBP
	EUR
	CAN
)

var currencyCodes = [...]string{
	USD: "USD",
	GBP: "GBP",
	EUR: "EUR",
	CAN: "CAN",
}

// CAN is the code used throughout the model; its ISO 4217 unit is CAD.
var isoUnits = [...]iso.Unit{
	USD: iso.USD,
	GBP: iso.GBP,
	EUR: iso.EUR,
	CAN: iso.CAD,
}

// Currencies returns every supported currency in declaration order.
func Currencies() []Currency {
	return []Currency{USD, GBP, EUR, CAN}
}

func (c Currency) Valid() bool {
	return int(c) < len(currencyCodes)
}

func (c Currency) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Currency(%d)", uint8(c))
	}
	return currencyCodes[c]
}

// ISO returns the ISO 4217 unit for c, or XXX when c is not supported.
func (c Currency) ISO() iso.Unit {
	if !c.Valid() {
		return iso.XXX
	}
	return isoUnits[c]
}

// ParseCurrency maps a code such as "usd" or " GBP " to a Currency. Any ISO 4217
// code of a supported currency is accepted too, so "CAD" parses as CAN.
func ParseCurrency(code string) (Currency, error) {
	up := strings.ToUpper(strings.TrimSpace(code))
	for i, known := range currencyCodes {
		if known == up {
			return Currency(i), nil
		}
	}

	unit, err := iso.ParseISO(up)
	if err != nil {
		return 0, invalidCurrency("currency.parse", code)
	}
	for i, u := range isoUnits {
		if u == unit {
			return Currency(i), nil
		}
	}
	return 0, invalidCurrency("currency.parse", code)
}

func invalidCurrency(op, code string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidCurrency,
		Err:  fmt.Errorf("unsupported currency %q: %w", code, ErrInvalidCurrency),
	}
}
