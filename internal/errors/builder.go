package errors

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder accumulates context on an error before it is marked with
// one of the package sentinels. It deliberately does not implement the
// error interface; a chain is only usable once Mark (or Error) ends it.
type ErrorBuilder struct {
	err error
}

// NewError starts a chain from a fresh root cause
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.New(msg)}
}

// WithError starts a chain that wraps an existing cause
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithMessage adds internal context to the chain.
// Never surfaced to API callers, only logged.
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithHint sets the caller-facing message. The error handler middleware
// picks the first hint on the chain as the response display message.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.err = errors.WithHint(b.err, hint)
	return b
}

// WithHintf is WithHint with formatting
func (b *ErrorBuilder) WithHintf(format string, args ...any) *ErrorBuilder {
	b.err = errors.WithHintf(b.err, format, args...)
	return b
}

// WithReportableDetails attaches structured details that are safe to
// return to the caller. They travel as a tagged JSON payload in the
// safe details of the chain; the error handler unpacks them into the
// details field of the response.
func (b *ErrorBuilder) WithReportableDetails(details map[string]any) *ErrorBuilder {
	marshaled, err := json.Marshal(details)
	if err != nil {
		return b
	}
	b.err = errors.WithSafeDetails(b.err, "__json__:%s", errors.Safe(string(marshaled)))
	return b
}

// Mark marks the chain with a sentinel so the Is* helpers and the HTTP
// status mapping recognize it. Must be the last call in the chain.
func (b *ErrorBuilder) Mark(reference error) error {
	b.err = errors.Mark(b.err, reference)
	return b.err
}

// Error ends the chain without marking it
func (b *ErrorBuilder) Error() error {
	return b.err
}
