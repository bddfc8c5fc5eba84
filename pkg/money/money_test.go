package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"12.50":     "12.50",
		"1a2b.5c0":  "12.50",
		"-15":       "15",
		"P 20.00":   "20.00",
		"1.2.3":     "1.2",
		"..5":       ".",
		"":          "",
		"abc":       "",
		"10,000.25": "10000.25",
	}
	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), "input %q", in)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Cents
	}{
		{"", 0},
		{".", 0},
		{"abc", 0},
		{"5", 500},
		{"5.", 500},
		{"0.05", 5},
		{"12.5", 1250},
		{"12.50", 1250},
		{"12.505", 1251},
		{"12.504", 1250},
		{"-3.25", 325}, // minus stripped by sanitizing
		{"1.2.3", 120},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseDecimalRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", ".", "1.2.3", "12a", "-5", "1,5"} {
		_, err := ParseDecimal(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestParseDecimal(t *testing.T) {
	got, err := ParseDecimal("199.99")
	require.NoError(t, err)
	assert.Equal(t, Cents(19999), got)

	got, err = ParseDecimal(".75")
	require.NoError(t, err)
	assert.Equal(t, Cents(75), got)
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.00", Cents(0).String())
	assert.Equal(t, "12.30", Cents(1230).String())
	assert.Equal(t, "0.05", Cents(5).String())
	assert.Equal(t, "-4.50", Cents(-450).String())
}

func TestClampZero(t *testing.T) {
	assert.Equal(t, Cents(0), Cents(-450).ClampZero())
	assert.Equal(t, Cents(450), Cents(450).ClampZero())
}
