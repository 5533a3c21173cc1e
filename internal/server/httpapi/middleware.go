package httpapi

import (
	"net/http"
	"strings"
)

// extractBearerToken pulls the token out of an Authorization header.
// The second return value is an error message, empty on success.
func extractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// requireToken resolves the bearer token to a user and attaches it to the
// request context. Requests without a resolvable token get 401.
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, errMsg := extractBearerToken(r.Header.Get("Authorization"))
		if errMsg != "" {
			errorJSON(w, http.StatusUnauthorized, errMsg)
			return
		}

		actor, err := s.auth.ResolveToken(r.Context(), token)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
