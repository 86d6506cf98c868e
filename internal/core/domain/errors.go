package domain

import "errors"

var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrUsernameTaken = errors.New("username already registered")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrForbidden = errors.New("admin privileges required")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

var ErrSweetNotFound = errors.New("sweet not found")

// ErrSweetUnavailable deliberately collapses "unknown sweet" and "insufficient
// stock" into one purchase failure; callers cannot tell the two apart.
var ErrSweetUnavailable = errors.New("sweet not found or insufficient quantity")
