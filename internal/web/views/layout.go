package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func pageTitle(p Page) string {
	if p.Title == "" {
		return p.ServiceName + " - GOV.UK"
	}
	return p.Title + " - " + p.ServiceName + " - GOV.UK"
}

func navItem(href string, label string) templ.Component {
	return el("li", A{"class", "govuk-header__navigation-item"},
		el("a", A{"class", "govuk-header__link", "href", href}, text(label)),
	)
}

func header(p Page) templ.Component {
	return el("header", A{"class", "govuk-header", "role", "banner"},
		el("div", A{"class", "govuk-header__container govuk-width-container"},
			el("div", A{"class", "govuk-header__content"},
				el("a", A{"href", "/", "class", "govuk-header__link govuk-header__service-name"}, text(p.ServiceName)),
				el("nav", A{"aria-label", "Menu", "class", "govuk-header__navigation"},
					el("ul", A{"class", "govuk-header__navigation-list"},
						either(p.User != nil,
							group(
								navItem(paymentsPath, "Payments"),
								navItem(summariesPath, "Payment summaries"),
								navItem("/auth/sign-out", "Sign out"),
							),
							navItem("/auth/sign-in", "Sign in"),
						),
					),
				),
			),
		),
	)
}

func successBanner(message string) templ.Component {
	return el("div", A{"class", "govuk-notification-banner govuk-notification-banner--success", "role", "alert"},
		el("div", A{"class", "govuk-notification-banner__content"},
			el("p", A{"class", "govuk-notification-banner__heading"}, text(message)),
		),
	)
}

func footer(p Page) templ.Component {
	var signedInAs templ.Component = templ.NopComponent
	if p.User != nil {
		signedInAs = el("p", A{"class", "govuk-body-s"}, textf("Signed in as %s", p.User.DisplayName))
	}
	return el("footer", A{"class", "govuk-footer", "role", "contentinfo"},
		el("div", A{"class", "govuk-width-container"}, signedInAs),
	)
}

// layout wraps content in the page chrome every screen shares.
func layout(p Page, content templ.Component) templ.Component {
	doctype := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<!DOCTYPE html>\n")
		return err
	})

	return group(
		doctype,
		el("html", A{"lang", "en", "class", "govuk-template"},
			el("head", nil,
				void("meta", A{"charset", "utf-8"}),
				el("title", nil, text(pageTitle(p))),
				void("meta", A{"name", "viewport", "content", "width=device-width, initial-scale=1, viewport-fit=cover"}),
				void("link", A{"rel", "icon", "sizes", "48x48", "href", p.asset("images/favicon.ico")}),
				void("link", A{"rel", "stylesheet", "href", p.asset("stylesheets/application.css")}),
			),
			el("body", A{"class", "govuk-template__body"},
				el("a", A{"href", "#main-content", "class", "govuk-skip-link"}, text("Skip to main content")),
				header(p),
				el("div", A{"class", "govuk-width-container"},
					el("main", A{"class", "govuk-main-wrapper", "id", "main-content", "role", "main"},
						errorSummary(p),
						when(p.Success != "", successBanner(p.Success)),
						content,
					),
				),
				footer(p),
				el("script", A{"type", "module", "src", p.asset("application.js")}),
			),
		),
	)
}
