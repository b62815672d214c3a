package views

import (
	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

type ErrorItem struct {
	Text string
	Href string
}

// Page is what every view gets. The renderer fills in the fields that come from the request.
type Page struct {
	Title string

	ServiceName string
	AssetPath   string
	User        *entities.UserSession
	Crumb       string

	ErrorList []ErrorItem
	// Errors maps a form field to its message.
	Errors map[string]string
	// Values holds the form as the user sent it, or as loaded for editing.
	Values map[string]string

	Success string
	Data    interface{}

	assetURL func(asset string) string
}

func (p Page) asset(name string) string {
	if p.assetURL == nil {
		return name
	}
	return p.assetURL(name)
}

func NewPage(title string) Page {
	return Page{
		Title:  title,
		Errors: map[string]string{},
		Values: map[string]string{},
	}
}

// WithFieldErrors lists the errors at the top of the page, each linking to its field.
func (p Page) WithFieldErrors(errs []validation.FieldError) Page {
	if p.Errors == nil {
		p.Errors = map[string]string{}
	}
	for _, e := range errs {
		p.ErrorList = append(p.ErrorList, ErrorItem{Text: e.Message, Href: "#" + e.Field})
		p.Errors[e.Field] = e.Message
	}
	return p
}

// WithError adds a message that does not belong to a single field.
func (p Page) WithError(text string) Page {
	p.ErrorList = append(p.ErrorList, ErrorItem{Text: text})
	return p
}

func (p Page) WithValues(values map[string]string) Page {
	if values != nil {
		p.Values = values
	}
	return p
}

func (p Page) WithData(data interface{}) Page {
	p.Data = data
	return p
}

func (p Page) WithSuccess(message string) Page {
	p.Success = message
	return p
}
