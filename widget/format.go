package widget

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prices below this are written out from their scientific form so the
// significant digits stay visible
const tinyPriceThreshold = 0.00001

var largeNumberUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
}

// FormatPrice formats a USD price for display.
//
//	0.000001  -> $0.000001000000
//	0.5       -> $0.50000000
//	1234.567  -> $1,234.57
//	-3        -> -$3.00
func FormatPrice(price float64) string {
	switch {
	case math.IsNaN(price) || math.IsInf(price, 0):
		return "$0.00"
	case price < 0:
		return formatCurrency(price)
	case price > 0 && price < tinyPriceThreshold:
		return formatTinyPrice(price)
	case price < 1:
		return "$" + decimal.NewFromFloat(price).StringFixed(8)
	default:
		return formatCurrency(price)
	}
}

// formatTinyPrice expands the 6 digit scientific form into leading zeros
func formatTinyPrice(price float64) string {
	scientific := strconv.FormatFloat(price, 'e', 6, 64)
	mantissa, exponent, found := strings.Cut(scientific, "e-")
	if !found {
		return "$" + decimal.NewFromFloat(price).StringFixed(8)
	}

	zeros, err := strconv.Atoi(exponent)
	if err != nil || zeros < 1 {
		return "$" + decimal.NewFromFloat(price).StringFixed(8)
	}

	return "$0." + strings.Repeat("0", zeros-1) + strings.Replace(mantissa, ".", "", 1)
}

// FormatLargeNumber abbreviates market cap and volume figures with a T/B/M
// suffix and three decimals, falling back to plain currency below a million
func FormatLargeNumber(num float64) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return "$0"
	}

	for _, unit := range largeNumberUnits {
		if num >= unit.threshold {
			return "$" + decimal.NewFromFloat(num/unit.threshold).StringFixed(3) + unit.suffix
		}
	}
	return formatCurrency(num)
}

// FormatChange returns the absolute 24h change with two decimals and whether
// the change is an increase
func FormatChange(percentage float64) (string, bool) {
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return "0.00%", false
	}
	return decimal.NewFromFloat(math.Abs(percentage)).StringFixed(2) + "%", percentage > 0
}

// formatCurrency renders en-US currency with two decimals and thousands separators
func formatCurrency(value float64) string {
	amount := decimal.NewFromFloat(value).Round(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	integer, fraction, _ := strings.Cut(amount.StringFixed(2), ".")
	return sign + "$" + groupThousands(integer) + "." + fraction
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
