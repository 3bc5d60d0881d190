package impl

import (
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"
)

// remoteError maps a gateway failure onto the screen taxonomy. Only a 401
// whose refresh failed ends the session; a 401 on the retried call is an
// ordinary failure.
func remoteError(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domainerrors.ErrSessionCleared) {
		return errors.Join(domainerrors.ErrSessionExpired, err)
	}

	return errors.Wrap(err, action)
}
