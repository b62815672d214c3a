package paymentsapi

import "github.com/shopspring/decimal"

func init() {
	// the backend expects amounts as json numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentDto struct {
	ID                        int64           `json:"id,omitempty"`
	PayeeName                 string          `json:"payee_name"`
	PartPostcode              string          `json:"part_postcode"`
	Town                      string          `json:"town"`
	ParliamentaryConstituency string          `json:"parliamentary_constituency"`
	CountyCouncil             string          `json:"county_council"`
	Scheme                    string          `json:"scheme"`
	Amount                    decimal.Decimal `json:"amount"`
	FinancialYear             string          `json:"financial_year"`
	PaymentDate               *string         `json:"payment_date"`
	SchemeDetail              string          `json:"scheme_detail"`
	ActivityLevel             string          `json:"activity_level"`
}

// PaymentsPageDto is the paginated envelope, the only backend payload not in snake case.
type PaymentsPageDto struct {
	Count      int64        `json:"count"`
	Rows       []PaymentDto `json:"rows"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

type PaymentSummaryDto struct {
	ID            int64           `json:"id,omitempty"`
	FinancialYear string          `json:"financial_year"`
	Scheme        string          `json:"scheme"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

type BulkResultDto struct {
	PaymentCount int64 `json:"paymentCount"`
	Deleted      int64 `json:"deleted"`
	Updated      int64 `json:"updated"`
}

type UploadResultDto struct {
	Imported int64 `json:"imported"`
}

type PublishedDateDto struct {
	PublishedDate string `json:"published_date"`
}
