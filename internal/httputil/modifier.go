package httputil

import (
	"net/http"
)

// Modifier modifies an outgoing request before it is sent, typically to
// attach credentials.
type Modifier interface {
	Modify(req *http.Request) error
}

// BearerAuthorizer is a Modifier that attaches an opaque bearer token to
// every request. The token is never inspected.
type BearerAuthorizer struct {
	token string
}

// NewBearerAuthorizer returns a bearer token authorizer
func NewBearerAuthorizer(token string) *BearerAuthorizer {
	return &BearerAuthorizer{token: token}
}

func (a *BearerAuthorizer) Modify(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+a.token)
	return nil
}
