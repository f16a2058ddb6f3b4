package domain

import "errors"

var ErrValidation = errors.New("validation failed")
var ErrEmailTaken = errors.New("email already registered")
var ErrHashing = errors.New("password hashing failed")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrListingNotFound = errors.New("listing not found")
var ErrAdminNotFound = errors.New("admin not found")
var ErrAdminExists = errors.New("user already has an admin record")
var ErrForbidden = errors.New("access forbidden")
var ErrAccountLocked = errors.New("account suspended or banned")
var ErrNotClient = errors.New("account is not a client")
