package views

import (
	"net/url"
	"strconv"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

const (
	paymentsPath  = "/admin/payments"
	summariesPath = "/admin/summary"
)

// PaymentList is the data of the manage payments page.
type PaymentList struct {
	Payments     entities.PaymentsPage
	SearchString string
}

// PageURL links to another page of the same search.
func (d PaymentList) PageURL(page int) string {
	q := url.Values{}
	q.Set(validation.FieldPage, strconv.Itoa(page))
	if d.SearchString != "" {
		q.Set(validation.FieldSearchString, d.SearchString)
	}
	return paymentsPath + "?" + q.Encode()
}

// EditTarget names the record an edit form posts back to.
type EditTarget struct {
	ID int64
}

// YearChoices feeds the financial year select.
type YearChoices struct {
	Years []string
}

type ErrorDetails struct {
	Status  int
	Heading string
	Message string
}
