// Package repository contains one repository per MongoDB collection.
// All repositories share the sentinel errors below; handlers map them to
// HTTP statuses.
package repository

import "errors"

var (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when a unique index rejects an insert
	ErrDuplicate = errors.New("document already exists")
)
