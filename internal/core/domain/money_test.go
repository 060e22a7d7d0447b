package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyKeepsTwoDecimals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"string with two decimals", `"12.50"`, "12.50"},
		{"bare number", `12.5`, "12.50"},
		{"integer string", `"3"`, "3.00"},
		{"rounds half up", `"1.005"`, "1.01"},
		{"zero", `0`, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))
			assert.True(t, m.IsSet())
			assert.Equal(t, tt.want, m.String())

			out, err := json.Marshal(m)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.want+`"`, string(out))
		})
	}
}

func TestMoneyRejectsNonNumeric(t *testing.T) {
	var m Money
	err := json.Unmarshal([]byte(`"twelve"`), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be numeric")
	assert.False(t, m.IsSet())
}

func TestMoneyNullIsUnset(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.False(t, m.IsSet())
}

func TestMoneyScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"text column", "12.50", "12.50"},
		{"mysql decimal bytes", []byte("99.90"), "99.90"},
		{"sqlite integer sum", int64(7), "7.00"},
		{"sqlite real sum", 0.1 + 0.2, "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, m.Scan(tt.src))
			assert.Equal(t, tt.want, m.String())
		})
	}

	var m Money
	assert.Error(t, m.Scan(true))
}

func TestMoneyValue(t *testing.T) {
	v, err := MustMoney("12.5").Value()
	require.NoError(t, err)
	assert.Equal(t, "12.50", v)
}

func TestParseMoneyBounds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"largest amount", "99999999.99", "99999999.99", ""},
		{"largest negative amount", "-99999999.99", "-99999999.99", ""},
		{"rounds up past the limit", "99999999.995", "", "must be between"},
		{"too many integer digits", "123456789012.34", "", "must be between"},
		{"huge exponent", "1e1000000", "", "exponent out of range"},
		{"zero with huge exponent", "0e1000000", "", "exponent out of range"},
		{"tiny exponent", "1e-1000000", "", "exponent out of range"},
		{"exponent within range", "1.5e3", "1500.00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMoney(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.False(t, m.IsSet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.String())
		})
	}
}

func TestMoneyInRange(t *testing.T) {
	assert.True(t, MustMoney("99999999.99").InRange())
	assert.False(t, NewMoney(MaxMoney.Add(MustMoney("0.01").Decimal())).InRange())
	assert.False(t, NewMoney(MaxMoney.Neg().Sub(MustMoney("0.01").Decimal())).InRange())
}
