package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// INR renders paise as a rupee string with en-IN digit grouping,
// e.g. 2900 -> "₹29.00". Stored values stay plain numeric; this is a
// presentation rule only.
func INR(paise int64) string {
	return inr.Sprintf("₹%v", number.Decimal(float64(paise)/100,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
