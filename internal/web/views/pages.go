package views

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/DEFRA/mpdp-admin-frontend/internal/entities"
)

const (
	PageStart = "start"
	PageError = "error"

	PageManagePayments            = "admin/manage-payments"
	PageAddPayment                = "admin/add-payment"
	PageEditPayment               = "admin/edit-payment"
	PageDeletePayment             = "admin/delete-payment"
	PageBulkUpload                = "admin/bulk-upload"
	PageDeleteByYear              = "admin/delete-by-year"
	PageDeleteByYearDone          = "admin/delete-by-year-success"
	PageDeleteByPublishedDate     = "admin/delete-by-published-date"
	PageDeleteByPublishedDateDone = "admin/delete-by-published-date-success"
	PageBulkSetPublishedDate      = "admin/bulk-set-published-date"
	PageBulkSetPublishedDateDone  = "admin/bulk-set-published-date-success"
	PageManageSummaries           = "admin/manage-summaries"
	PageAddSummary                = "admin/add-summary"
	PageEditSummary               = "admin/edit-summary"
	PageDeleteSummary             = "admin/delete-summary"
)

// content builds the main part of a page from what the handler put into it.
type content func(p Page) (templ.Component, error)

var pages = map[string]content{
	PageStart: plain(startPage),
	PageError: withData(errorPage),

	PageManagePayments:            withData(managePaymentsPage),
	PageAddPayment:                plain(addPaymentPage),
	PageEditPayment:               withData(editPaymentPage),
	PageDeletePayment:             withOptionalData(deletePaymentPage),
	PageBulkUpload:                withOptionalData(bulkUploadPage),
	PageDeleteByYear:              withData(deleteByYearPage),
	PageDeleteByYearDone:          withData(deleteByYearDonePage),
	PageDeleteByPublishedDate:     plain(deleteByPublishedDatePage),
	PageDeleteByPublishedDateDone: withData(deleteByPublishedDateDonePage),
	PageBulkSetPublishedDate:      withData(bulkSetPublishedDatePage),
	PageBulkSetPublishedDateDone:  withData(bulkSetPublishedDateDonePage),

	PageManageSummaries: withData(manageSummariesPage),
	PageAddSummary:      plain(addSummaryPage),
	PageEditSummary:     withData(editSummaryPage),
	PageDeleteSummary:   withOptionalData(deleteSummaryPage),
}

func plain(page func(Page) templ.Component) content {
	return func(p Page) (templ.Component, error) {
		return page(p), nil
	}
}

func withData[T any](page func(Page, T) templ.Component) content {
	return func(p Page) (templ.Component, error) {
		data, ok := p.Data.(T)
		if !ok {
			return nil, fmt.Errorf("page needs %T data, got %T", data, p.Data)
		}
		return page(p, data), nil
	}
}

// withOptionalData also accepts a page without data, or with a pointer to it.
func withOptionalData[T any](page func(Page, *T) templ.Component) content {
	return func(p Page) (templ.Component, error) {
		switch data := p.Data.(type) {
		case nil:
			return page(p, nil), nil
		case T:
			return page(p, &data), nil
		case *T:
			return page(p, data), nil
		default:
			var want T
			return nil, fmt.Errorf("page needs %T data, got %T", want, p.Data)
		}
	}
}

func startPage(p Page) templ.Component {
	button := el("a", A{"href", "/auth/sign-in", "role", "button", "draggable", "false", "class", "govuk-button govuk-button--start"}, text("Sign in"))
	if p.User != nil {
		button = el("a", A{"href", paymentsPath, "role", "button", "draggable", "false", "class", "govuk-button govuk-button--start"}, text("Manage payments"))
	}
	return twoThirds(
		el("h1", A{"class", "govuk-heading-xl"}, text("Find farm and land payment data")),
		el("p", A{"class", "govuk-body"}, text("Use this service to manage the payment data published about farm and land payments.")),
		button,
	)
}

func errorPage(_ Page, details ErrorDetails) templ.Component {
	return twoThirds(
		el("h1", A{"class", "govuk-heading-l"}, text(details.Heading)),
		el("p", A{"class", "govuk-body"}, text(details.Message)),
		el("p", A{"class", "govuk-body"}, el("a", A{"class", "govuk-link", "href", "/"}, text("Go to the start page"))),
	)
}

func pagination(list PaymentList) templ.Component {
	payments := list.Payments
	if !payments.HasPrev() && !payments.HasNext() {
		return templ.NopComponent
	}
	return el("nav", A{"class", "govuk-pagination", "aria-label", "Pagination"},
		when(payments.HasPrev(), el("div", A{"class", "govuk-pagination__prev"},
			el("a", A{"class", "govuk-link govuk-pagination__link", "href", list.PageURL(payments.PrevPage()), "rel", "prev"},
				text("Previous"), el("span", A{"class", "govuk-visually-hidden"}, text(" page")),
			),
		)),
		el("p", A{"class", "govuk-body govuk-!-margin-bottom-0"}, textf("Page %d of %d", payments.Page, payments.TotalPages)),
		when(payments.HasNext(), el("div", A{"class", "govuk-pagination__next"},
			el("a", A{"class", "govuk-link govuk-pagination__link", "href", list.PageURL(payments.NextPage()), "rel", "next"},
				text("Next"), el("span", A{"class", "govuk-visually-hidden"}, text(" page")),
			),
		)),
	)
}

func th(label string, numeric bool) templ.Component {
	class := "govuk-table__header"
	if numeric {
		class += " govuk-table__header--numeric"
	}
	return el("th", A{"scope", "col", "class", class}, text(label))
}

func td(value string, numeric bool) templ.Component {
	class := "govuk-table__cell"
	if numeric {
		class += " govuk-table__cell--numeric"
	}
	return el("td", A{"class", class}, text(value))
}

func actionsHeader() templ.Component {
	return el("th", A{"scope", "col", "class", "govuk-table__header"},
		el("span", A{"class", "govuk-visually-hidden"}, text("Actions")),
	)
}

func paymentRow(payment entities.Payment) templ.Component {
	action := func(verb string) templ.Component {
		href := fmt.Sprintf("%s/%d/%s", paymentsPath, payment.ID, verb)
		label := "Edit"
		if verb == "delete" {
			label = "Delete"
		}
		return el("a", A{"class", "govuk-link", "href", href},
			text(label), el("span", A{"class", "govuk-visually-hidden"}, text(" "+payment.PayeeName)),
		)
	}
	return el("tr", A{"class", "govuk-table__row"},
		td(payment.PayeeName, false),
		td(payment.PartPostcode, false),
		td(payment.Town, false),
		td(payment.Scheme, false),
		td(payment.FinancialYear, false),
		td(formatDate(payment.PaymentDate), false),
		td(formatAmount(payment.Amount), true),
		el("td", A{"class", "govuk-table__cell"}, action("edit"), text(" "), action("delete")),
	)
}

func managePaymentsPage(_ Page, list PaymentList) templ.Component {
	table := el("p", A{"class", "govuk-body"}, text("No payments to show."))
	if len(list.Payments.Rows) > 0 {
		table = el("table", A{"class", "govuk-table"},
			el("thead", A{"class", "govuk-table__head"},
				el("tr", A{"class", "govuk-table__row"},
					th("Payee name", false),
					th("Postcode", false),
					th("Town", false),
					th("Scheme", false),
					th("Financial year", false),
					th("Payment date", false),
					th("Amount", true),
					actionsHeader(),
				),
			),
			el("tbody", A{"class", "govuk-table__body"}, each(list.Payments.Rows, paymentRow)),
		)
	}

	button := func(href string, class string, label string) templ.Component {
		return el("a", A{"href", href, "class", class}, text(label))
	}

	return group(
		el("h1", A{"class", "govuk-heading-l"}, text("Manage payments")),
		el("form", A{"method", "get", "action", paymentsPath, "class", "govuk-!-margin-bottom-6"},
			el("div", A{"class", "govuk-form-group"},
				el("label", A{"class", "govuk-label", "for", "searchString"}, text("Search payments")),
				void("input", A{"class", "govuk-input govuk-!-width-one-half", "id", "searchString", "name", "searchString", "type", "search", "value", list.SearchString}),
				el("button", A{"type", "submit", "class", "govuk-button govuk-button--secondary"}, text("Search")),
			),
		),
		el("div", A{"class", "govuk-button-group"},
			button(paymentsPath+"/add", "govuk-button", "Add payment"),
			button(paymentsPath+"/bulk-upload", "govuk-button govuk-button--secondary", "Bulk upload"),
			button(paymentsPath+"/bulk-set-published-date", "govuk-button govuk-button--secondary", "Set published date"),
			button(paymentsPath+"/delete-by-year", "govuk-button govuk-button--warning", "Delete by financial year"),
			button(paymentsPath+"/delete-by-published-date", "govuk-button govuk-button--warning", "Delete by published date"),
		),
		el("p", A{"class", "govuk-body"}, textf("%d payments found", list.Payments.Count)),
		table,
		pagination(list),
	)
}

func submit(label string) templ.Component {
	return el("button", A{"type", "submit", "class", "govuk-button"}, text(label))
}

func warningSubmit(label string) templ.Component {
	return el("button", A{"type", "submit", "class", "govuk-button govuk-button--warning"}, text(label))
}

func heading(title string) templ.Component {
	return el("h1", A{"class", "govuk-heading-l"}, text(title))
}

func addPaymentPage(p Page) templ.Component {
	return twoThirds(
		backLink(paymentsPath),
		heading("Add payment"),
		postForm(p, paymentsPath+"/add", paymentFields(p), submit("Add payment")),
	)
}

func editPaymentPage(p Page, target EditTarget) templ.Component {
	return twoThirds(
		backLink(paymentsPath),
		heading("Edit payment"),
		postForm(p, fmt.Sprintf("%s/%d/edit", paymentsPath, target.ID), paymentFields(p), submit("Save changes")),
	)
}

func cancelGroup(label string, cancelHref string) templ.Component {
	return el("div", A{"class", "govuk-button-group"},
		warningSubmit(label),
		el("a", A{"class", "govuk-link", "href", cancelHref}, text("Cancel")),
	)
}

func deletePaymentPage(p Page, payment *entities.Payment) templ.Component {
	var details templ.Component = templ.NopComponent
	if payment != nil {
		details = group(
			el("dl", A{"class", "govuk-summary-list"},
				summaryRow("Payee name", payment.PayeeName),
				summaryRow("Postcode", payment.PartPostcode),
				summaryRow("Scheme", payment.Scheme),
				summaryRow("Financial year", payment.FinancialYear),
				summaryRow("Amount", formatAmount(payment.Amount)),
			),
			postForm(p, fmt.Sprintf("%s/%d/delete", paymentsPath, payment.ID), cancelGroup("Delete payment", paymentsPath)),
		)
	}
	return twoThirds(
		backLink(paymentsPath),
		heading("Are you sure you want to delete this payment?"),
		details,
	)
}

func bulkUploadPage(p Page, result *entities.UploadResult) templ.Component {
	var imported templ.Component = templ.NopComponent
	if result != nil {
		imported = el("p", A{"class", "govuk-body"}, textf("%d payments were imported.", result.Imported))
	}
	message := p.Errors["file"]

	return twoThirds(
		backLink(paymentsPath),
		heading("Bulk upload payments"),
		imported,
		el("form", A{"method", "post", "action", paymentsPath + "/bulk-upload", "enctype", "multipart/form-data", "novalidate", ""},
			crumbInput(p),
			el("div", A{"class", formGroupClass(message)},
				el("label", A{"class", "govuk-label", "for", "file"}, text("Upload a CSV file")),
				errorMessage(message),
				void("input", A{"class", "govuk-file-upload", "id", "file", "name", "file", "type", "file", "accept", ".csv,text/csv"}),
			),
			submit("Upload"),
		),
	)
}

func deleteByYearPage(p Page, choices YearChoices) templ.Component {
	return twoThirds(
		backLink(paymentsPath),
		heading("Delete payments by financial year"),
		warningText("All payments for the selected financial year will be deleted."),
		postForm(p, paymentsPath+"/delete-by-year",
			yearSelect(p, choices.Years),
			confirmBox(p),
			warningSubmit("Delete payments"),
		),
	)
}

func deleteByYearDonePage(_ Page, result entities.BulkResult) templ.Component {
	return confirmationPanel("Deletion complete",
		fmt.Sprintf("%d payments for %s were deleted", result.Deleted, result.FinancialYear))
}

func deleteByPublishedDatePage(p Page) templ.Component {
	return twoThirds(
		backLink(paymentsPath),
		heading("Delete payments by published date"),
		warningText("All payments published on this date will be deleted."),
		postForm(p, paymentsPath+"/delete-by-published-date",
			dateInput(p, "publishedDate", "Published date"),
			confirmBox(p),
			warningSubmit("Delete payments"),
		),
	)
}

func deleteByPublishedDateDonePage(_ Page, result entities.BulkResult) templ.Component {
	return confirmationPanel("Deletion complete",
		fmt.Sprintf("%d payments published on %s were deleted", result.Deleted, formatDate(result.PublishedDate)))
}

func bulkSetPublishedDatePage(p Page, choices YearChoices) templ.Component {
	return twoThirds(
		backLink(paymentsPath),
		heading("Set published date"),
		el("p", A{"class", "govuk-body"}, text("Every payment in the selected financial year gets this published date.")),
		postForm(p, paymentsPath+"/bulk-set-published-date",
			yearSelect(p, choices.Years),
			dateInput(p, "publishedDate", "Published date"),
			submit("Set published date"),
		),
	)
}

func bulkSetPublishedDateDonePage(_ Page, result entities.BulkResult) templ.Component {
	return confirmationPanel("Published date updated",
		fmt.Sprintf("%d payments for %s now have the published date %s", result.Updated, result.FinancialYear, formatDate(result.PublishedDate)))
}

func manageSummariesPage(_ Page, summaries []entities.PaymentSummary) templ.Component {
	table := el("p", A{"class", "govuk-body"}, text("No payment summaries to show."))
	if len(summaries) > 0 {
		table = el("table", A{"class", "govuk-table"},
			el("thead", A{"class", "govuk-table__head"},
				el("tr", A{"class", "govuk-table__row"},
					th("Financial year", false),
					th("Scheme", false),
					th("Total amount", true),
					actionsHeader(),
				),
			),
			el("tbody", A{"class", "govuk-table__body"}, each(summaries, func(s entities.PaymentSummary) templ.Component {
				return el("tr", A{"class", "govuk-table__row"},
					td(s.FinancialYear, false),
					td(s.Scheme, false),
					td(formatAmount(s.TotalAmount), true),
					el("td", A{"class", "govuk-table__cell"},
						el("a", A{"class", "govuk-link", "href", fmt.Sprintf("%s/edit/%d", summariesPath, s.ID)}, text("Edit")),
						text(" "),
						el("a", A{"class", "govuk-link", "href", fmt.Sprintf("%s/delete/%d", summariesPath, s.ID)}, text("Delete")),
					),
				)
			})),
		)
	}
	return group(
		heading("Manage payment summaries"),
		el("a", A{"href", summariesPath + "/add", "class", "govuk-button"}, text("Add payment summary")),
		table,
	)
}

func addSummaryPage(p Page) templ.Component {
	return twoThirds(
		backLink(summariesPath),
		heading("Add payment summary"),
		postForm(p, summariesPath+"/add", summaryFields(p), submit("Add payment summary")),
	)
}

func editSummaryPage(p Page, target EditTarget) templ.Component {
	return twoThirds(
		backLink(summariesPath),
		heading("Edit payment summary"),
		postForm(p, fmt.Sprintf("%s/edit/%d", summariesPath, target.ID), summaryFields(p), submit("Save changes")),
	)
}

func deleteSummaryPage(p Page, summary *entities.PaymentSummary) templ.Component {
	var details templ.Component = templ.NopComponent
	if summary != nil {
		details = group(
			el("dl", A{"class", "govuk-summary-list"},
				summaryRow("Financial year", summary.FinancialYear),
				summaryRow("Scheme", summary.Scheme),
				summaryRow("Total amount", formatAmount(summary.TotalAmount)),
			),
			postForm(p, fmt.Sprintf("%s/delete/%d", summariesPath, summary.ID), cancelGroup("Delete payment summary", summariesPath)),
		)
	}
	return twoThirds(
		backLink(summariesPath),
		heading("Are you sure you want to delete this payment summary?"),
		details,
	)
}
