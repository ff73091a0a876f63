package entities

import (
	"errors"
	"fmt"
)

// StoreError is the failure shape of the remote bill store.
//
// The views surface the message text verbatim ("Erreur 404", "Erreur 500"),
// so the message format is part of the contract, not just logging.

type StoreError struct {
	Status int
}

func NewStoreError(status int) *StoreError {
	return &StoreError{Status: status}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Status)
}

// AsStoreError unwraps err into a StoreError when possible.
func AsStoreError(err error) (*StoreError, bool) {
	var se *StoreError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
