package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrDeleteNotConfirmed   = errors.New("employee deletion was not confirmed")
	ErrConfirmationMismatch = errors.New("confirmation token does not match")
)
