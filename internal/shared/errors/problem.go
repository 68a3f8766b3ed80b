// Package errors provides RFC 7807 Problem Details for the admin HTTP API.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type.
	Type string `json:"type"`
	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`
	// Status is the HTTP status code for this occurrence.
	Status int `json:"status"`
	// Detail is a human-readable explanation specific to this occurrence.
	Detail string `json:"detail,omitempty"`
	// Instance is a URI reference that identifies the specific occurrence.
	Instance string `json:"instance,omitempty"`
	// Extensions holds additional problem-specific properties.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithInstance returns a copy with the given instance URI.
func (p ProblemDetail) WithInstance(instance string) ProblemDetail {
	p.Instance = instance
	return p
}

// WithExtension returns a copy with an additional extension property.
// The extension map is copied so templates stay untouched.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		ext[k] = v
	}
	ext[key] = value
	p.Extensions = ext
	return p
}

// WithToast attaches the message the dashboard shows to the operator.
func (p ProblemDetail) WithToast(toast Toast) ProblemDetail {
	return p.WithExtension("toast", toast)
}

// Problem type URI references.
const (
	TypeValidation           = "/problems/validation-error"
	TypeNotFound             = "/problems/not-found"
	TypeConflict             = "/problems/conflict"
	TypeInternal             = "/problems/internal-error"
	TypeUnauthorized         = "/problems/unauthorized"
	TypeForbidden            = "/problems/forbidden"
	TypeBadRequest           = "/problems/bad-request"
	TypeUpstream             = "/problems/upstream-error"
	TypeConfirmationRequired = "/problems/confirmation-required"
)

var (
	// ErrNotFound is also what page reads answer when the CMS fetch fails.
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Página não encontrada",
		Status: http.StatusNotFound,
	}

	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Dados inválidos",
		Status: http.StatusBadRequest,
	}

	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Requisição inválida",
		Status: http.StatusBadRequest,
	}

	ErrConflict = ProblemDetail{
		Type:   TypeConflict,
		Title:  "Conflito",
		Status: http.StatusConflict,
	}

	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Erro interno",
		Status: http.StatusInternalServerError,
	}

	ErrUnauthorized = ProblemDetail{
		Type:   TypeUnauthorized,
		Title:  "Não autenticado",
		Status: http.StatusUnauthorized,
	}

	ErrForbidden = ProblemDetail{
		Type:   TypeForbidden,
		Title:  "Acesso negado",
		Status: http.StatusForbidden,
	}

	// ErrUpstream marks a failed call to the CMS during a mutation.
	ErrUpstream = ProblemDetail{
		Type:   TypeUpstream,
		Title:  "Falha ao comunicar com o CMS",
		Status: http.StatusBadGateway,
	}

	// ErrConfirmationRequired is returned by destructive endpoints called without confirm=true.
	ErrConfirmationRequired = ProblemDetail{
		Type:   TypeConfirmationRequired,
		Title:  "Confirmação necessária",
		Status: http.StatusPreconditionRequired,
	}
)

// NewValidationProblem creates a validation error with field-level details.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	return ErrValidation.WithExtension("fields", fieldErrors)
}

// NewNotFoundProblem creates a not found error for a specific resource.
func NewNotFoundProblem(resourceType string, identifier any) ProblemDetail {
	return ErrNotFound.
		WithDetail(fmt.Sprintf("%s '%v' não encontrado", resourceType, identifier)).
		WithExtension("resourceType", resourceType).
		WithExtension("identifier", identifier)
}

// NewConfirmationProblem asks the operator to repeat the call with confirm=true.
func NewConfirmationProblem(prompt string) ProblemDetail {
	return ErrConfirmationRequired.
		WithDetail(prompt).
		WithExtension("prompt", prompt)
}

// NewMutationFailedProblem wraps a failed CMS write with the generic toast.
func NewMutationFailedProblem(err error) ProblemDetail {
	p := ErrUpstream.WithToast(GenericFailureToast())
	if err != nil {
		p = p.WithDetail(err.Error())
	}
	return p
}
