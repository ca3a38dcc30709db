package server

import (
	"net/http"
	"strings"

	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
)

// bearerToken extracts the credential from the Authorization header. Both
// "Bearer <token>" and "token <token>" are accepted; the hosting API treats
// them identically. The token is forwarded verbatim and never logged.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", domainErrors.ErrMissingToken
	}

	scheme, token, found := strings.Cut(header, " ")
	if !validScheme(scheme) {
		return "", domainErrors.ErrInvalidAuthScheme
	}
	if !found || strings.TrimSpace(token) == "" {
		return "", domainErrors.ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

func validScheme(scheme string) bool {
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return true
	default:
		return false
	}
}

// optionalBearerToken is bearerToken for endpoints that work anonymously.
// No header at all means no token; a malformed header is still rejected.
func optionalBearerToken(r *http.Request) (string, error) {
	if strings.TrimSpace(r.Header.Get("Authorization")) == "" {
		return "", nil
	}
	return bearerToken(r)
}
