package frame

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/janisto/masks-frame/internal/service/masks"
)

// notANumber stands in for values derived from a non-numeric amount.
const notANumber = "N/A"

// FormatNumber renders v with English digit grouping and at most three
// fraction digits: 1234567 → "1,234,567", 0.41244 → "0.412".
func FormatNumber(v float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// formatPrice renders the unit price in full, without grouping or rounding.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatAmount renders a numeric amount with grouping and anything else the
// API sent as is.
func formatAmount(a masks.Amount) string {
	if v, ok := a.Float64(); ok {
		return FormatNumber(v)
	}
	return a.Text()
}
