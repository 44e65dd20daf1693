package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// percent returns num/den*100, or 0 when den is zero.
func percent(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).Mul(hundred).InexactFloat64()
}

// ratio returns num/den, or 0 when den is zero.
func ratio(num, den decimal.Decimal) float64 {
	if den.IsZero() {
		return 0
	}
	return num.Div(den).InexactFloat64()
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
