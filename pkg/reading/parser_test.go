package reading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/temp-probe/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Reading
	}{
		{
			name: "single reading",
			raw:  "21.81",
			want: []Reading{{Channel: 0, Raw: "21.81", Centi: 2181}},
		},
		{
			name: "single reading trailing space",
			raw:  "21.81 ",
			want: []Reading{{Channel: 0, Raw: "21.81", Centi: 2181}},
		},
		{
			name: "comma separator",
			raw:  "23,00",
			want: []Reading{{Channel: 0, Raw: "23,00", Centi: 2300}},
		},
		{
			name: "colon separator",
			raw:  "23:00",
			want: []Reading{{Channel: 0, Raw: "23:00", Centi: 2300}},
		},
		{
			name: "no leading zero",
			raw:  "9.75",
			want: []Reading{{Channel: 0, Raw: "9.75", Centi: 975}},
		},
		{
			name: "no separator",
			raw:  "2181",
			want: []Reading{{Channel: 0, Raw: "2181", Centi: 2181}},
		},
		{
			name: "negative value",
			raw:  "-9.75",
			want: []Reading{{Channel: 0, Raw: "-9.75", Centi: -975}},
		},
		{
			name: "multiple channels in input order",
			raw:  "24.00 31.00",
			want: []Reading{
				{Channel: 0, Raw: "24.00", Centi: 2400},
				{Channel: 1, Raw: "31.00", Centi: 3100},
			},
		},
		{
			name: "mixed separators across channels",
			raw:  "24,00 9.75 31:00",
			want: []Reading{
				{Channel: 0, Raw: "24,00", Centi: 2400},
				{Channel: 1, Raw: "9.75", Centi: 975},
				{Channel: 2, Raw: "31:00", Centi: 3100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code errors.ErrorCode
	}{
		{name: "empty string", raw: "", code: errors.ErrCodeNoReadings},
		{name: "whitespace only", raw: "   ", code: errors.ErrCodeNoReadings},
		{name: "non numeric", raw: "CRC failed", code: errors.ErrCodeMalformedReading},
		{name: "trailing garbage", raw: "21.81;", code: errors.ErrCodeMalformedReading},
		{name: "double separator", raw: "21..81", code: errors.ErrCodeMalformedReading},
		{name: "bare separator", raw: "21.", code: errors.ErrCodeMalformedReading},
		{name: "one bad channel taints all", raw: "21.81 nan 22.00", code: errors.ErrCodeMalformedReading},
		{name: "tab separated", raw: "21.81\t22.00", code: errors.ErrCodeMalformedReading},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got, "no readings may survive a malformed input")
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	const raw = "24.00 9,75 31.00"

	first, err := Parse(raw)
	require.NoError(t, err)
	second, err := Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalize_PreservesFixedWidthOrdering(t *testing.T) {
	// The legacy scheme strips the separator and left-pads 4-character
	// values to compare fixed-width digit strings. Integer hundredths must
	// order the same pairs the same way.
	pairs := [][2]string{
		{"9.75", "21.81"},
		{"21.81", "21.82"},
		{"09.75", "9.76"},
		{"-9.75", "0.00"},
		{"22,10", "25:00"},
	}

	for _, p := range pairs {
		lo, err := Normalize(p[0])
		require.NoError(t, err)
		hi, err := Normalize(p[1])
		require.NoError(t, err)
		assert.Less(t, lo, hi, "%s should order below %s", p[0], p[1])
	}
}

func TestCelsius(t *testing.T) {
	r := Reading{Channel: 0, Raw: "21.81", Centi: 2181}
	assert.InDelta(t, 21.81, r.Celsius(), 0.0001)
}
