package domain

import "errors"

// Sentinel errors for the record domain. Use errors.Is() to check these.
//
// The record store itself defines no errors: Submit and List are total.
// These cover the read models that surround it.
var (
	// ErrPublisherNotFound indicates no stats exist yet for the requested owner.
	ErrPublisherNotFound = errors.New("publisher not found")
)
