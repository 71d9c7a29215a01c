package user

import "errors"

var (
	ErrIdentityPending         = errors.New("identity has not been resolved")
	ErrManageAccessRequired    = errors.New("admin access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
