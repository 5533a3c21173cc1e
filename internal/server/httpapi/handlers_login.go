package httpapi

import (
	"net/http"
)

// handleLogin exchanges basic-auth credentials for a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	user, err := s.auth.AuthenticateByPassword(r.Context(), email, password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	token, err := s.auth.IssueToken(r.Context(), user)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTokenDTO(token))
}

// handleTestToken echoes the user the presented token resolves to.
func (s *Server) handleTestToken(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	writeJSON(w, http.StatusOK, toUserDTO(actor))
}
