// Package apierror provides the error taxonomy of the core and the
// standardized error envelope returned to clients. All errors crossing the
// handler boundary go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for HTTP mapping and caller branching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation: entrada inválida (quantidade não positiva, custo
	// negativo, campo obrigatório vazio).
	KindValidation
	// KindNotFound: OP, título ou cliente referenciado não existe.
	KindNotFound
	// KindInvalidState: operação ilegal no estado atual da entidade.
	KindInvalidState
	// KindPersistence: falha de armazenamento ou de transação, incluindo
	// timeout do SQLite.
	KindPersistence
)

// Error is a typed domain error. Wraps the underlying cause when one exists.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Msg: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }
func InvalidState(msg string) *Error { return &Error{Kind: KindInvalidState, Msg: msg} }

// Persistence wraps a storage failure. The cause is kept for server-side
// logging; only msg reaches the client.
func Persistence(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: cause}
}

// KindOf extracts the Kind from any error in the chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode maps an error to the HTTP status the handlers must return.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
