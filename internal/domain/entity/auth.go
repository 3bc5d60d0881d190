// Package entity contains the transport objects exchanged with the back office API
// and the view state derived from them.
package entity

import (
	"time"

	"github.com/pkg/errors"
)

// ErrIncompleteTokenPair is returned when only one half of a token pair is supplied.
var ErrIncompleteTokenPair = errors.New("access and refresh tokens must be set together")

// TokenPair holds the credentials minted by the back office API.
// Either both tokens are present or neither is.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Complete reports whether both tokens are present.
func (p TokenPair) Complete() bool {
	return p.Access != "" && p.Refresh != ""
}

// Empty reports whether neither token is present.
func (p TokenPair) Empty() bool {
	return p.Access == "" && p.Refresh == ""
}

// Validate enforces the both-or-neither invariant.
func (p TokenPair) Validate() error {
	if p.Complete() || p.Empty() {
		return nil
	}

	return ErrIncompleteTokenPair
}

// Credentials are submitted on the login screen.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// RegisterInput creates a customer account through the API.
type RegisterInput struct {
	Name     string `json:"name" form:"name" validate:"required,max=120"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,max=32"`
	Address  string `json:"address" form:"address" validate:"omitempty,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

// Session is the console-side record of one browser session: the token
// pair plus the logged-in flag. All three are cleared together.
type Session struct {
	ID        string
	Tokens    TokenPair
	LoggedIn  bool
	UpdatedAt time.Time
}

// Identity is what the topbar shows about the signed-in admin.
type Identity struct {
	UserID    string
	Name      string
	Email     string
	ExpiresAt time.Time
}

// Initials returns up to two upper-case initials, "AD" when nothing is known.
func (i Identity) Initials() string {
	source := i.Name
	if source == "" {
		source = i.Email
	}

	return initials(source, "AD")
}
