package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// A holds attribute name value pairs, rendered in the order given.
type A []string

// boolean attributes with an empty value render as the bare name.
var booleanAttributes = map[string]bool{
	"checked":    true,
	"disabled":   true,
	"novalidate": true,
	"selected":   true,
}

var urlAttributes = map[string]bool{
	"action": true,
	"href":   true,
	"src":    true,
}

func openTag(w io.Writer, name string, attrs A) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	for i := 0; i+1 < len(attrs); i += 2 {
		key, value := attrs[i], attrs[i+1]
		b.WriteString(" ")
		b.WriteString(key)
		if booleanAttributes[key] && value == "" {
			continue
		}
		if urlAttributes[key] {
			value = string(templ.URL(value))
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// el renders an element around its children.
func el(name string, attrs A, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(w, name, attrs); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}

// void renders an element that has no closing tag, like input or link.
func void(name string, attrs A) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return openTag(w, name, attrs)
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func textf(format string, args ...interface{}) templ.Component {
	return text(fmt.Sprintf(format, args...))
}

func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

func when(cond bool, c templ.Component) templ.Component {
	if cond {
		return c
	}
	return templ.NopComponent
}

func either(cond bool, yes templ.Component, no templ.Component) templ.Component {
	if cond {
		return yes
	}
	return no
}

func each[T any](items []T, item func(T) templ.Component) templ.Component {
	children := make([]templ.Component, 0, len(items))
	for _, it := range items {
		children = append(children, item(it))
	}
	return group(children...)
}
