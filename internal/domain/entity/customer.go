package entity

import (
	"strings"
	"time"
	"unicode"
)

// Customer mirrors the user details API representation.
type Customer struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	DateJoined time.Time `json:"date_joined"`
}

// Initials is shown in the avatar fallback.
func (c Customer) Initials() string {
	return initials(c.Name, "?")
}

// CustomerQuery is the customers screen search state.
type CustomerQuery struct {
	Search string `query:"q"`
	Page   int    `query:"page"`
}

// Matches searches name and email case-insensitively and phone verbatim.
func (q CustomerQuery) Matches(c Customer) bool {
	search := strings.TrimSpace(q.Search)
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)

	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Email), needle) ||
		strings.Contains(c.Phone, search)
}

func initials(name, fallback string) string {
	var out []rune
	for _, part := range strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '@' || r == '_'
	}) {
		r := []rune(part)
		out = append(out, unicode.ToUpper(r[0]))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return fallback
	}

	return string(out)
}
