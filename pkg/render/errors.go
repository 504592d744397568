package render

import (
	"fmt"

	"github.com/vango-dev/tagkit/internal/errors"
)

// Error kinds. Compare with errors.Is; the returned errors carry the
// specific message and offending names.
var (
	ErrInvalidTag             error = errors.New(errors.CodeInvalidTag)
	ErrTagDoesNotSupportBegin error = errors.New(errors.CodeTagDoesNotSupportBegin)
	ErrUnexpectedEndCall      error = errors.New(errors.CodeUnexpectedEndCall)
	ErrTagClassMismatch       error = errors.New(errors.CodeTagClassMismatch)
	ErrInvalidAttributeValue  error = errors.New(errors.CodeInvalidAttributeValue)
	ErrAbstractInstantiation  error = errors.New(errors.CodeAbstractInstantiation)
)

const msgInlineBeginEnd = "Inline elements cannot be used with begin/end syntax."

func newInvalidTag(tag, msg string) error {
	err := errors.Newf(errors.CodeInvalidTag, "%s", msg)
	if tag != "" {
		err.WithSuggestion(fmt.Sprintf("Check the tag name %q.", tag))
	}
	return err
}

func newNotPairable(tag string, kind Kind) error {
	return errors.Newf(errors.CodeInvalidTag, "%s", msgInlineBeginEnd).
		WithSuggestion(fmt.Sprintf("<%s> is a %s element; render it in one call with Full.", tag, kind))
}
