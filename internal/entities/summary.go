package entities

import "github.com/shopspring/decimal"

type PaymentSummary struct {
	ID            int64
	FinancialYear string
	Scheme        string
	TotalAmount   decimal.Decimal
}
