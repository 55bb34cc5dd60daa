package domain

import "errors"

var (
	ErrForbidden           = errors.New("actor is not permitted to perform this operation")
	ErrInvalidState        = errors.New("current status does not permit this transition")
	ErrConflict            = errors.New("invariant already satisfied by a concurrent writer")
	ErrStorageUnavailable  = errors.New("storage collaborator unavailable")
	ErrValidationFailed    = errors.New("validation failed")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrRecordNotFound      = errors.New("requested record not found")
)
