// Package common holds error roots shared by the domain packages.
package common

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is the root of every lookup failure (customers, accounts).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is the root of every uniqueness violation.
	ErrAlreadyExists = errors.New("already exists")
)

// Clock returns the current time. Domain types accept one so tests can pin
// the calendar day.
type Clock func() time.Time
