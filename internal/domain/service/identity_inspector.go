// Package service defines interfaces for the collaborators the usecases
// depend on: the remote API, session storage, previews and notifications.
package service

import (
	"backoffice/internal/domain/entity"
)

// IdentityInspector reads display claims from an access token. The console
// does not hold the signing key, so no signature check happens here.
type IdentityInspector interface {
	Inspect(accessToken string) (entity.Identity, error)
}
