package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, c.Render(context.Background(), buf))
	return buf.String()
}

func TestElements(t *testing.T) {
	tests := []struct {
		name      string
		component templ.Component
		expected  string
	}{
		{
			name:      "attributes in order",
			component: el("a", A{"class", "govuk-link", "href", "/admin/payments"}, text("Payments")),
			expected:  `<a class="govuk-link" href="/admin/payments">Payments</a>`,
		},
		{
			name:      "boolean attribute",
			component: el("option", A{"value", "23/24", "selected", ""}, text("23/24")),
			expected:  `<option value="23/24" selected>23/24</option>`,
		},
		{
			name:      "empty value stays",
			component: void("input", A{"name", "town", "value", ""}),
			expected:  `<input name="town" value="">`,
		},
		{
			name:      "text is escaped",
			component: el("p", nil, text(`Smith & Sons <Ltd>`)),
			expected:  `<p>Smith &amp; Sons &lt;Ltd&gt;</p>`,
		},
		{
			name:      "attribute is escaped",
			component: void("input", A{"value", `"quoted"`}),
			expected:  `<input value="&#34;quoted&#34;">`,
		},
		{
			name:      "unsafe url is replaced",
			component: el("a", A{"href", "javascript:alert(1)"}, text("x")),
			expected:  `<a href="` + string(templ.FailedSanitizationURL) + `">x</a>`,
		},
		{
			name:      "skipped when false",
			component: group(text("a"), when(false, text("b")), when(true, text("c"))),
			expected:  `ac`,
		},
		{
			name:      "each item",
			component: el("ul", nil, each([]string{"one", "two"}, func(s string) templ.Component { return el("li", nil, text(s)) })),
			expected:  `<ul><li>one</li><li>two</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, render(t, tt.component))
		})
	}
}

func TestTextInputShowsError(t *testing.T) {
	p := NewPage("Add payment")
	p.Errors["payeeName"] = `"payeeName" is required`
	p.Values["payeeName"] = "Farm"

	html := render(t, textInput(p, "payeeName", "Payee name"))

	require.Contains(t, html, `class="govuk-form-group govuk-form-group--error"`)
	require.Contains(t, html, `<span class="govuk-visually-hidden">Error:</span> &#34;payeeName&#34; is required`)
	require.Contains(t, html, `class="govuk-input govuk-input--error" id="payeeName" name="payeeName" type="text" value="Farm"`)
}

func TestDateInputShowsFirstError(t *testing.T) {
	p := NewPage("Delete")
	p.Errors["publishedDateMonth"] = `"publishedDateMonth" must be less than or equal to 12`

	html := render(t, dateInput(p, "publishedDate", "Published date"))

	require.Contains(t, html, "publishedDateMonth&#34; must be less than or equal to 12")
	require.Contains(t, html, `id="publishedDateDay"`)
	require.Contains(t, html, `id="publishedDateYear"`)
}
