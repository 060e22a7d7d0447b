package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places stored for every amount.
const MoneyScale = 2

// MaxMoney is the largest magnitude a NUMERIC(10,2) column holds.
var MaxMoney = decimal.New(9999999999, -MoneyScale)

// Parsed exponents outside this window are rejected before rounding, which
// would otherwise expand inputs like "1e1000000" digit by digit.
const (
	minMoneyExponent = -18
	maxMoneyExponent = 8
)

// Money is a fixed-point amount with two decimal places.
// The zero value is an unset amount; IsSet reports whether a value was assigned.
type Money struct {
	d   decimal.Decimal
	set bool
}

func NewMoney(d decimal.Decimal) Money {
	return Money{d: d.Round(MoneyScale), set: true}
}

// ParseMoney parses a decimal string such as "12.50" or "3". Amounts beyond
// MaxMoney in either direction are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: must be numeric", s)
	}
	if exp := d.Exponent(); exp < minMoneyExponent || exp > maxMoneyExponent {
		return Money{}, fmt.Errorf("invalid amount %q: exponent out of range", s)
	}
	m := NewMoney(d)
	if !m.InRange() {
		return Money{}, outOfRange(s)
	}
	return m, nil
}

func outOfRange(s string) error {
	return fmt.Errorf("invalid amount %q: must be between -%s and %s", s, MaxMoney.StringFixed(MoneyScale), MaxMoney.StringFixed(MoneyScale))
}

// MustMoney is ParseMoney for constants and tests.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) IsSet() bool { return m.set }

func (m Money) Decimal() decimal.Decimal { return m.d }

func (m Money) IsNegative() bool { return m.d.IsNegative() }

// InRange reports whether the amount fits a stored amount column.
func (m Money) InRange() bool { return m.d.Abs().LessThanOrEqual(MaxMoney) }

func (m Money) Add(o Money) Money { return NewMoney(m.d.Add(o.d)) }

func (m Money) Sub(o Money) Money { return NewMoney(m.d.Sub(o.d)) }

func (m Money) Equal(o Money) bool { return m.d.Equal(o.d) }

// String always renders two decimals: "12.50", never "12.5".
func (m Money) String() string {
	return m.d.StringFixed(MoneyScale)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string ("12.50") or a JSON number (12.5).
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}

	parsed, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m Money) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Value stores the amount as its two-decimal string so TEXT (SQLite),
// NUMERIC (PostgreSQL) and DECIMAL (MySQL) columns all keep the scale.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

func (m *Money) Scan(src interface{}) error {
	var d decimal.Decimal
	switch v := src.(type) {
	case nil:
		*m = Money{}
		return nil
	case string:
		parsed, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("failed to scan amount %q: %w", v, err)
		}
		d = parsed
	case []byte:
		parsed, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("failed to scan amount %q: %w", v, err)
		}
		d = parsed
	case int64:
		d = decimal.NewFromInt(v)
	case float64:
		d = decimal.NewFromFloat(v)
	default:
		return fmt.Errorf("failed to scan amount: unsupported type %T", src)
	}
	*m = NewMoney(d)
	return nil
}
