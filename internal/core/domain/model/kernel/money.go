package kernel

import (
	"fmt"

	"entrega/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// totalTolerance is the maximum accepted deviation between a declared order
// total and the sum of its line items: one cent of the currency unit.
var totalTolerance = decimal.New(1, -2)

// Money is a fixed-point, currency-agnostic monetary amount. It exists so
// the rest of the domain never touches binary floating point: amounts are
// stored and compared as decimals with two fractional digits of precision.
//
// Example:
//
//	price, err := kernel.MoneyFromString("10.00")
//	total := price.MulInt(2).Add(kernel.MoneyFromDecimal(decimal.NewFromInt(5)))
type Money struct {
	amount decimal.Decimal
}

// MoneyFromDecimal wraps a decimal amount as Money.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MoneyFromString parses a decimal string such as "25.00".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n)))}
}

// IsEqual reports exact numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// WithinTolerance reports whether the two amounts differ by at most 0.01.
// Used to reconcile a declared order total against the computed item sum.
func (m Money) WithinTolerance(other Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(totalTolerance)
}

// String renders the amount with two fractional digits, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// ValidatePositive rejects zero and negative amounts.
func (m Money) ValidatePositive(paramName string) error {
	if !m.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is not greater than 0", m.String()),
		)
	}
	return nil
}
