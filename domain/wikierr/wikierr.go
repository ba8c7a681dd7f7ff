// Package wikierr provides typed errors for the article pipeline.
package wikierr

import "fmt"

// Kind classifies a pipeline error.
type Kind string

// Kind values.
const (
	KindNetwork            Kind = "network"
	KindParse              Kind = "parse"
	KindNoResults          Kind = "no_results"
	KindInvalidLanguage    Kind = "invalid_language"
	KindTimeout            Kind = "timeout"
	KindUnexpectedResponse Kind = "unexpected_response"
	KindCache              Kind = "cache"
	KindConfig             Kind = "config"
	KindInternal           Kind = "internal"
)

// Error is a pipeline error with a classified kind.
type Error struct {
	kind    Kind
	message string
	query   string
	code    string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the error classification.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the error message without the cause.
func (e *Error) Message() string { return e.message }

// Query returns the search query, set on NoResults errors.
func (e *Error) Query() string { return e.query }

// Code returns the language code, set on InvalidLanguage errors.
func (e *Error) Code() string { return e.code }

// UserMessage returns the fixed user-facing text for the error kind.
// The pipeline itself returns structured errors; display strings belong
// to the presentation layer and are looked up here by kind.
func (e *Error) UserMessage() string {
	switch e.kind {
	case KindNetwork:
		return "Connection problems. Please try again later."
	case KindParse:
		return "Failed to process the encyclopedia response."
	case KindNoResults:
		return fmt.Sprintf("Nothing found for %q.", e.query)
	case KindInvalidLanguage:
		return fmt.Sprintf("Language %q is not supported.", e.code)
	case KindTimeout:
		return "The request timed out. Please try again later."
	case KindUnexpectedResponse:
		return "Unexpected response from the encyclopedia API."
	case KindCache:
		return "Data cache problems."
	case KindConfig:
		return "Service configuration error."
	default:
		return "Internal error. Please contact the administrator."
	}
}

// Network creates a transport-level error.
func Network(message string, cause error) *Error {
	return &Error{kind: KindNetwork, message: message, cause: cause}
}

// Parse creates a response-decoding error.
func Parse(message string, cause error) *Error {
	return &Error{kind: KindParse, message: message, cause: cause}
}

// NoResults creates an error for an empty query or zero hits.
func NoResults(query string) *Error {
	return &Error{
		kind:    KindNoResults,
		message: fmt.Sprintf("no results for query %q", query),
		query:   query,
	}
}

// InvalidLanguage creates an error for an unrecognized language code.
func InvalidLanguage(code string) *Error {
	return &Error{
		kind:    KindInvalidLanguage,
		message: fmt.Sprintf("unsupported language code %q", code),
		code:    code,
	}
}

// Timeout creates a request-deadline error.
func Timeout(cause error) *Error {
	return &Error{kind: KindTimeout, message: "request timed out", cause: cause}
}

// UnexpectedResponse creates an error for a structurally valid but
// semantically unusable upstream response.
func UnexpectedResponse(message string) *Error {
	return &Error{kind: KindUnexpectedResponse, message: message}
}

// Cache creates a cache-layer error.
func Cache(message string) *Error {
	return &Error{kind: KindCache, message: message}
}

// Config creates a configuration error.
func Config(message string) *Error {
	return &Error{kind: KindConfig, message: message}
}

// Internal creates an internal error.
func Internal(message string, cause error) *Error {
	return &Error{kind: KindInternal, message: message, cause: cause}
}

// As returns the pipeline error inside err, unwrapping as needed.
func As(err error) (*Error, bool) {
	e := asError(err)
	return e, e != nil
}

// KindOf returns the kind of err, or KindInternal when err is not a
// pipeline error.
func KindOf(err error) Kind {
	if e := asError(err); e != nil {
		return e.kind
	}
	return KindInternal
}

// IsNoResults reports whether err is a NoResults error.
func IsNoResults(err error) bool {
	return KindOf(err) == KindNoResults
}

// IsNetwork reports whether err is a transport-level error.
func IsNetwork(err error) bool {
	return KindOf(err) == KindNetwork
}

func asError(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = u.Unwrap()
	}
	return nil
}
