// Package usecase contains application business logic.
package usecase

import "errors"

// ErrMainWindowNotFound is returned when the host window is not registered.
var ErrMainWindowNotFound = errors.New("main window not found")
