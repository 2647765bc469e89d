package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PersistError wraps a store-level failure, carrying the database
// error code and message through verbatim for diagnosability.
type PersistError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *PersistError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: store rejected (%s): %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

func persistErr(op string, err error) error {
	pe := &PersistError{Op: op, Err: err, Message: err.Error()}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		pe.Code = string(pqErr.Code)
		pe.Message = pqErr.Message
	}
	return pe
}
