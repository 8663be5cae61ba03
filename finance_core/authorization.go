package finance_core

import (
	"net/http"

	"github.com/google/uuid"
)

// Identity is the authenticated caller resolved from a request header.
type Identity interface {
	Err() error
	UserID() uuid.UUID
	IsSuperuser() bool
}

type Authorization interface {
	AuthIdentityFromHeader(h http.Header) Identity
}
