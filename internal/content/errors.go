package content

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrPostNotFound  = errors.New("content: post not found")
	ErrPostRequired  = errors.New("content: post is required")
	ErrStoreNotReady = errors.New("content: store directory unavailable")
)

const postDecodeFailed = "POST_DECODE_FAILED"

// NotFoundError captures missing post lookups with enough context to log.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrPostNotFound.Error()
	}
	return fmt.Sprintf("%s: %s=%q", ErrPostNotFound.Error(), e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrPostNotFound
}

// wrapDecodeError classifies a malformed stored document. The original
// implementation let these faults propagate unrecovered; here they surface
// as explicit classified errors so callers can tell a bad document apart
// from an I/O failure.
func wrapDecodeError(err error, file string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "post document malformed: "+file).
		WithTextCode(postDecodeFailed)
}
