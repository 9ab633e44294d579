// Package registration is a user-registration workflow whose collaborators
// are all called through an fntest Invoker, so tests can record and
// replace them.
package registration

import (
	"errors"
	"fmt"

	"github.com/toejough/fntest"
)

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("error.duplicateEmail")

// Example holds state its method reads through the receiver.
type Example struct {
	Prop1 string
}

// GetProp returns the named property of the receiver.
func (e *Example) GetProp(prop string) string {
	switch prop {
	case "prop1":
		return e.Prop1
	default:
		return ""
	}
}

// Registrar registers users.
type Registrar struct {
	inv   *fntest.Invoker
	users *UserService
}

// CreateUser registers a new user and returns its id.
func (r *Registrar) CreateUser(email, name, password string) (string, error) {
	existing, err := fntest.InvokeAs2[*User, error](r.inv, r.users, "GetUserByEmail", email)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	if existing != nil {
		return "", ErrDuplicateEmail
	}

	hash, err := fntest.InvokeAs2[string, error](r.inv, r.users, "HashPassword", password)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	id, err := fntest.InvokeAs2[string, error](r.inv, r.users, "InsertUser", email, name, hash)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// NewExample returns an Example with Prop1 set to "here".
func NewExample() *Example {
	return &Example{Prop1: "here"}
}

// NewRegistrar creates a Registrar that calls users through inv.
func NewRegistrar(inv *fntest.Invoker, users *UserService) *Registrar {
	return &Registrar{inv: inv, users: users}
}
