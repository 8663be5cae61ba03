package finance_mock

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/sandoapp/finance_service/finance_core"
)

type IdentityMock struct {
	ID        uuid.UUID
	Superuser bool
	ErrValue  error
}

func (i *IdentityMock) Err() error {
	return i.ErrValue
}

func (i *IdentityMock) UserID() uuid.UUID {
	return i.ID
}

func (i *IdentityMock) IsSuperuser() bool {
	return i.Superuser
}

// AuthorizationMock hands back the same identity for every request.
// Mutate Identity between calls to act as another user.
type AuthorizationMock struct {
	Identity *IdentityMock
}

func (a *AuthorizationMock) AuthIdentityFromHeader(h http.Header) finance_core.Identity {
	return a.Identity
}
