package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role is not permitted to perform the requested action at all.
var ErrForbidden = errors.New("forbidden")

// ErrBadRequest indicates a malformed or unrecognized request parameter.
var ErrBadRequest = errors.New("bad request")

// ErrInvalidTransition indicates the role may perform the action class but the
// claim's current status disallows it.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConflict indicates a concurrent update won the race and the claim's state has moved on.
var ErrConflict = errors.New("conflicting concurrent update")
