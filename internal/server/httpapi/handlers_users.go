package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avasiljevs/itemvault/internal/server/services"
)

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type adminCreateUserRequest struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	IsActive        bool   `json:"isActive"`
	IsSuperuser     bool   `json:"isSuperuser"`
}

type updateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type adminUpdateUserRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	IsActive    bool   `json:"isActive"`
	IsSuperuser bool   `json:"isSuperuser"`
}

type resetPasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var in signupRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterInput{
		FullName: in.FullName,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleAdminCreateUser(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in adminCreateUserRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := s.users.AdminCreate(r.Context(), actor, services.AdminCreateInput{
		FullName:        in.FullName,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		IsActive:        in.IsActive,
		IsSuperuser:     in.IsSuperuser,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())
	writeJSON(w, http.StatusOK, toUserDTO(s.users.GetSelf(r.Context(), actor)))
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in updateProfileRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := s.users.UpdateSelf(r.Context(), actor, services.UpdateProfileInput{
		FullName: in.FullName,
		Email:    in.Email,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleDeleteMe(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	if err := s.users.DeleteSelf(r.Context(), actor); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in resetPasswordRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := s.users.ResetPassword(r.Context(), actor, in.CurrentPassword, in.NewPassword); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	user, err := s.users.GetByID(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in adminUpdateUserRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := s.users.UpdateByID(r.Context(), actor, chi.URLParam(r, "id"), services.AdminUpdateInput{
		FullName:    in.FullName,
		Email:       in.Email,
		IsActive:    in.IsActive,
		IsSuperuser: in.IsSuperuser,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	if err := s.users.DeleteByID(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
