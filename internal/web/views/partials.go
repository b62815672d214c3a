package views

import (
	"github.com/a-h/templ"

	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

func errorSummary(p Page) templ.Component {
	if len(p.ErrorList) == 0 {
		return templ.NopComponent
	}
	return el("div", A{"class", "govuk-error-summary", "data-module", "govuk-error-summary"},
		el("div", A{"role", "alert"},
			el("h2", A{"class", "govuk-error-summary__title"}, text("There is a problem")),
			el("div", A{"class", "govuk-error-summary__body"},
				el("ul", A{"class", "govuk-list govuk-error-summary__list"},
					each(p.ErrorList, func(item ErrorItem) templ.Component {
						if item.Href == "" {
							return el("li", nil, text(item.Text))
						}
						return el("li", nil, el("a", A{"href", item.Href}, text(item.Text)))
					}),
				),
			),
		),
	)
}

func crumbInput(p Page) templ.Component {
	return void("input", A{"type", "hidden", "name", "crumb", "value", p.Crumb})
}

// postForm is a form posting back with the crumb.
func postForm(p Page, action string, children ...templ.Component) templ.Component {
	return el("form", A{"method", "post", "action", action, "novalidate", ""},
		crumbInput(p),
		group(children...),
	)
}

func formGroupClass(message string) string {
	if message != "" {
		return "govuk-form-group govuk-form-group--error"
	}
	return "govuk-form-group"
}

func errorMessage(message string) templ.Component {
	return when(message != "", el("p", A{"class", "govuk-error-message"},
		el("span", A{"class", "govuk-visually-hidden"}, text("Error:")),
		text(" "+message),
	))
}

func textInput(p Page, name string, label string) templ.Component {
	message := p.Errors[name]
	class := "govuk-input"
	if message != "" {
		class += " govuk-input--error"
	}
	return el("div", A{"class", formGroupClass(message)},
		el("label", A{"class", "govuk-label", "for", name}, text(label)),
		errorMessage(message),
		void("input", A{"class", class, "id", name, "name", name, "type", "text", "value", p.Values[name]}),
	)
}

func dateInput(p Page, prefix string, label string) templ.Component {
	day, month, year := prefix+"Day", prefix+"Month", prefix+"Year"

	message := p.Errors[day]
	if message == "" {
		message = p.Errors[month]
	}
	if message == "" {
		message = p.Errors[year]
	}

	item := func(name string, label string, width string) templ.Component {
		return el("div", A{"class", "govuk-date-input__item"},
			el("label", A{"class", "govuk-label govuk-date-input__label", "for", name}, text(label)),
			void("input", A{
				"class", "govuk-input govuk-date-input__input " + width,
				"id", name, "name", name, "type", "text", "inputmode", "numeric", "value", p.Values[name],
			}),
		)
	}

	return el("div", A{"class", formGroupClass(message)},
		el("fieldset", A{"class", "govuk-fieldset", "role", "group"},
			el("legend", A{"class", "govuk-fieldset__legend"}, text(label)),
			errorMessage(message),
			el("div", A{"class", "govuk-date-input"},
				item(day, "Day", "govuk-input--width-2"),
				item(month, "Month", "govuk-input--width-2"),
				item(year, "Year", "govuk-input--width-4"),
			),
		),
	)
}

func yearSelect(p Page, years []string) templ.Component {
	message := p.Errors[validation.FieldFinancialYear]
	chosen := p.Values[validation.FieldFinancialYear]

	return el("div", A{"class", formGroupClass(message)},
		el("label", A{"class", "govuk-label", "for", validation.FieldFinancialYear}, text("Financial year")),
		errorMessage(message),
		el("select", A{"class", "govuk-select", "id", validation.FieldFinancialYear, "name", validation.FieldFinancialYear},
			el("option", A{"value", ""}, text("Select a financial year")),
			each(years, func(year string) templ.Component {
				attrs := A{"value", year}
				if year == chosen {
					attrs = append(attrs, "selected", "")
				}
				return el("option", attrs, text(year))
			}),
		),
	)
}

func confirmBox(p Page) templ.Component {
	message := p.Errors[validation.FieldConfirm]
	return el("div", A{"class", formGroupClass(message)},
		errorMessage(message),
		el("div", A{"class", "govuk-checkboxes govuk-checkboxes--small"},
			el("div", A{"class", "govuk-checkboxes__item"},
				void("input", A{"class", "govuk-checkboxes__input", "id", "confirm", "name", "confirm", "type", "checkbox", "value", "yes"}),
				el("label", A{"class", "govuk-label govuk-checkboxes__label", "for", "confirm"}, text("I understand this cannot be undone")),
			),
		),
	)
}

func paymentFields(p Page) templ.Component {
	return group(
		textInput(p, validation.FieldPayeeName, "Payee name"),
		textInput(p, validation.FieldPartPostcode, "Part postcode"),
		textInput(p, validation.FieldTown, "Town (optional)"),
		textInput(p, validation.FieldParliamentaryConstituency, "Parliamentary constituency (optional)"),
		textInput(p, validation.FieldCountyCouncil, "County council (optional)"),
		textInput(p, validation.FieldScheme, "Scheme (optional)"),
		textInput(p, validation.FieldAmount, "Amount"),
		textInput(p, validation.FieldFinancialYear, "Financial year, for example 23/24"),
		dateInput(p, "paymentDate", "Payment date (optional)"),
		textInput(p, validation.FieldSchemeDetail, "Scheme detail (optional)"),
		textInput(p, validation.FieldActivityLevel, "Activity level (optional)"),
	)
}

func summaryFields(p Page) templ.Component {
	return group(
		textInput(p, validation.FieldFinancialYear, "Financial year, for example 23/24"),
		textInput(p, validation.FieldScheme, "Scheme"),
		textInput(p, validation.FieldTotalAmount, "Total amount"),
	)
}

func backLink(href string) templ.Component {
	return el("a", A{"href", href, "class", "govuk-back-link"}, text("Back"))
}

// twoThirds is the narrow column forms sit in.
func twoThirds(children ...templ.Component) templ.Component {
	return el("div", A{"class", "govuk-grid-row"},
		el("div", A{"class", "govuk-grid-column-two-thirds"}, children...),
	)
}

func summaryRow(key string, value string) templ.Component {
	return el("div", A{"class", "govuk-summary-list__row"},
		el("dt", A{"class", "govuk-summary-list__key"}, text(key)),
		el("dd", A{"class", "govuk-summary-list__value"}, text(value)),
	)
}

func warningText(message string) templ.Component {
	return el("div", A{"class", "govuk-warning-text"},
		el("span", A{"class", "govuk-warning-text__icon", "aria-hidden", "true"}, text("!")),
		el("strong", A{"class", "govuk-warning-text__text"},
			el("span", A{"class", "govuk-visually-hidden"}, text("Warning")),
			text(message),
		),
	)
}

func confirmationPanel(title string, body string) templ.Component {
	return group(
		el("div", A{"class", "govuk-panel govuk-panel--confirmation"},
			el("h1", A{"class", "govuk-panel__title"}, text(title)),
			el("div", A{"class", "govuk-panel__body"}, text(body)),
		),
		el("p", A{"class", "govuk-body"}, el("a", A{"class", "govuk-link", "href", paymentsPath}, text("Back to payments"))),
	)
}
