package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected string
	}{
		{"TrailingPointZero", "2.0", "2"},
		{"TrailingPointZeroWithUnitContext", "12.0 ", "12"},
		{"PointZeroInRange", "1.0-2.0", "1-2"},
		{"PointZeroEnDashRange", "1.0–2.0", "1–2"},
		{"HundredthsSurvive", "2.05", "2.05"},
		{"DecimalHalf", "1.5", "1½"},
		{"DecimalQuarter", "2.25", "2¼"},
		{"DecimalThreeQuarters", "1.75", "1¾"},
		{"DecimalThird", "1.33", "1⅓"},
		{"DecimalThirdLong", "1.333", "1⅓"},
		{"DecimalTwoThirds", "2.67", "2⅔"},
		{"DecimalTwoThirdsLong", "2.667", "2⅔"},
		{"DecimalEighth", "1.125", "1⅛"},
		{"DecimalThreeEighths", "1.375", "1⅜"},
		{"DecimalFiveEighths", "1.625", "1⅝"},
		{"DecimalSevenEighths", "1.875", "1⅞"},
		{"BareDecimalHalf", ".5", "½"},
		{"BareDecimalWithUnit", ".5 cup", "½ cup"},
		{"BareDecimalThird", ".333", "⅓"},
		{"TensPlaceUntouched", "10.25", "10¼"},
		{"InteriorDecimalUntouched", "1.05", "1.05"},
		{"AsciiHalf", "1/2", "½"},
		{"AsciiMixedNumber", "1 1/2", "1 ½"},
		{"AsciiQuarterInRange", "1/4-1/2", "¼-½"},
		{"AsciiEighth", "3/8", "⅜"},
		{"DecimalInRange", "1.5-2", "1½-2"},
		{"WhitespaceTrimmed", "  2  ", "2"},
		{"Empty", "", ""},
		{"PlainInteger", "3", "3"},
		{"NonNumeric", "a pinch", "a pinch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(tt.amount))
		})
	}
}

func TestFormatAmountIdempotent(t *testing.T) {
	inputs := []string{
		"2.0", "1.5", ".5", "1/2", "1 1/2", "1.0-2.0", "10.25",
		"1.05", "a pinch", "", "½", "1½", "⅓ scant",
	}

	for _, input := range inputs {
		once := FormatAmount(input)
		assert.Equal(t, once, FormatAmount(once), "input %q", input)
	}
}
