package valueobjects

import "fmt"

const DefaultCurrency = "BRL"

// Money is an amount in minor units (cents). Arithmetic never goes through
// floating point.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// Major returns the amount in major units, for display only.
func (m Money) Major() float64 {
	return float64(m.amountInCents) / 100.0
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Major(), m.currency)
}
