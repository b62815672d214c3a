package interaction

import (
	"github.com/DEFRA/mpdp-admin-frontend/internal/validation"
)

type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindBackendRejected
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBackendRejected:
		return "backend rejected"
	case KindNotFound:
		return "not found"
	}
	return "none"
}

// Result is what every orchestrated operation returns. Turning it into a status code or view is up to the caller.
type Result[T any] struct {
	OK    bool
	Value T

	Kind        Kind
	Detail      string
	FieldErrors []validation.FieldError
	// Submitted echoes the form back for re-rendering.
	Submitted map[string]string
}

func (r Result[T]) ErrorMap() map[string]string {
	return validation.Result{Errors: r.FieldErrors}.ErrorMap()
}

func ok[T any](value T) Result[T] {
	return Result[T]{OK: true, Value: value}
}

func invalid[T any](vr validation.Result) Result[T] {
	return Result[T]{
		Kind:        KindValidation,
		FieldErrors: vr.Errors,
		Submitted:   vr.Submitted,
	}
}

func invalidField[T any](field string, message string, submitted map[string]string) Result[T] {
	return Result[T]{
		Kind:        KindValidation,
		Detail:      message,
		FieldErrors: []validation.FieldError{{Field: field, Message: message}},
		Submitted:   submitted,
	}
}

func rejected[T any](detail string, submitted map[string]string) Result[T] {
	return Result[T]{
		Kind:      KindBackendRejected,
		Detail:    detail,
		Submitted: submitted,
	}
}

func notFound[T any]() Result[T] {
	return Result[T]{Kind: KindNotFound, Detail: "Not found"}
}
