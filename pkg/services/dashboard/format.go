package dashboard

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatMoney renders a monetary value with exactly two decimal places.
func FormatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func FormatCurrency(v decimal.Decimal) string {
	return "$" + FormatMoney(v)
}

// FormatCount renders a count as a plain integer, without grouping.
func FormatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}

func ProductLabel(productID int64) string {
	return "Product " + strconv.FormatInt(productID, 10)
}
