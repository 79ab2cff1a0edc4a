// Package utils provides general-purpose helper utilities used across
// different parts of the application. It currently covers type-safe
// context keys and UUID generation for connection identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the context key under which an authenticated username
// can be stored and read back with [GetUsernameFromContext]. No package in
// the server currently stores a value under it.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the
// context.
//
// Returns the username and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
