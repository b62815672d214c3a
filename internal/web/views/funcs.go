package views

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// formatAmount renders pounds with thousands separators, e.g. £1,234.50.
func formatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "£" + b.String() + "." + fraction
}

// formatDate renders an ISO date as 15 March 2024. Anything unparseable is shown as is.
func formatDate(value interface{}) string {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return ""
		}
		s = *v
	default:
		return ""
	}
	if s == "" {
		return ""
	}

	datePart, _, _ := strings.Cut(s, "T")
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return s
	}
	return t.Format("2 January 2006")
}
