package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, cur currency.Unit) Money {
	return Money{Amount: amount, Currency: cur}
}

func ZeroMoney(cur currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: cur}
}

// Mul scales the amount by a quantity, keeping the currency.
func (m Money) Mul(qty int) Money {
	return Money{
		Amount:   m.Amount.Mul(decimal.NewFromInt(int64(qty))),
		Currency: m.Currency,
	}
}

// Add sums amounts. The receiver's currency wins; carts are single-currency.
func (m Money) Add(other Money) Money {
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// String renders the amount with two decimals behind the currency symbol, e.g. "$10.00".
func (m Money) String() string {
	return Symbol(m.Currency) + m.Amount.StringFixed(2)
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"INR": "₹",
}

// Symbol returns the display symbol for a currency, or its ISO code followed by a space.
func Symbol(cur currency.Unit) string {
	code := cur.String()
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}
