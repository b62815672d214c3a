package entities

import "github.com/shopspring/decimal"

// Payment is the view-model form of a payment record, named the way the admin forms name their fields.
type Payment struct {
	ID                        int64
	PayeeName                 string
	PartPostcode              string
	Town                      string
	ParliamentaryConstituency string
	CountyCouncil             string
	Scheme                    string
	Amount                    decimal.Decimal
	FinancialYear             string
	// PaymentDate is an ISO date (YYYY-MM-DD) or nil when unknown.
	PaymentDate   *string
	SchemeDetail  string
	ActivityLevel string
}

const PageSize = 20

type PaymentsPage struct {
	Count      int64
	Rows       []Payment
	Page       int
	TotalPages int
}

// EmptyPaymentsPage is what listing degrades to when the backend has nothing to say.
func EmptyPaymentsPage() PaymentsPage {
	return PaymentsPage{
		Count:      0,
		Rows:       []Payment{},
		Page:       1,
		TotalPages: 0,
	}
}

func (p PaymentsPage) HasPrev() bool {
	return p.Page > 1
}

func (p PaymentsPage) HasNext() bool {
	return p.Page < p.TotalPages
}

func (p PaymentsPage) PrevPage() int {
	if p.HasPrev() {
		return p.Page - 1
	}
	return 1
}

func (p PaymentsPage) NextPage() int {
	if p.HasNext() {
		return p.Page + 1
	}
	return p.Page
}

type DateComponents struct {
	Day   int
	Month int
	Year  int
}

func (d DateComponents) IsEmpty() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0
}

// BulkResult describes what a bulk operation did, together with what it was asked to do.
type BulkResult struct {
	FinancialYear string
	PublishedDate string
	PaymentCount  int64
	Deleted       int64
	Updated       int64
}

type UploadResult struct {
	Imported int64
}
