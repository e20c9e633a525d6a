// Package demo holds two small demonstrations of handling values that may be
// absent or may fail: comma-ok results for optional values, and
// (value, error) results for lookups that can fail.
package demo

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUserNotFound is returned by FindUser when nothing matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrUnknownKey is returned by FindUser for an unsupported field.
	ErrUnknownKey = errors.New("unknown user key")
)

// Root returns the square root of x. ok is false for negative x.
func Root(x float64) (root float64, ok bool) {
	if x < 0 || math.IsNaN(x) {
		return 0, false
	}
	return math.Sqrt(x), true
}

// Divide returns n/d. ok is false when d is zero.
func Divide(n, d float64) (q float64, ok bool) {
	if d == 0 {
		return 0, false
	}
	return n / d, true
}

// User is a sample record for FindUser.
type User struct {
	ID    string
	First string
	Last  string
}

// SampleUsers returns the fixed users used by the demo command.
func SampleUsers() []User {
	return []User{
		{ID: "1", First: "Jesse", Last: "Moore"},
		{ID: "2", First: "John", Last: "Doe"},
		{ID: "3", First: "Jane", Last: "Doe"},
	}
}

// FindUser returns the first user whose field key ("id", "first" or "last")
// equals value.
func FindUser(users []User, key, value string) (User, error) {
	field, err := fieldFor(key)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if field(u) == value {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("cannot find a user with %s: %s: %w", key, value, ErrUserNotFound)
}

func fieldFor(key string) (func(User) string, error) {
	switch key {
	case "id", "_id":
		return func(u User) string { return u.ID }, nil
	case "first":
		return func(u User) string { return u.First }, nil
	case "last":
		return func(u User) string { return u.Last }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}
