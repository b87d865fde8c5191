package api

import (
	"errors"
	"fmt"
)

// Sentinel kinds for API errors. The service exposes a single processing
// error taxonomy; kinds exist for logs, not for the wire envelope.
var (
	ErrBadRequest = errors.New("bad request")
	ErrProcessing = errors.New("processing failed")
)

// WrapKind tags an error with both an operation and a sentinel kind.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
