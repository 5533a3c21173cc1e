package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avasiljevs/itemvault/internal/server/services"
)

type itemRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     string  `json:"ownerID"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	items, err := s.items.List(r.Context(), actor)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTOs(items))
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in itemRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	item, err := s.items.Create(r.Context(), actor, in.Title, in.Description)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	item, err := s.items.Get(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	var in itemRequest
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	item, err := s.items.Update(r.Context(), actor, chi.URLParam(r, "id"), services.UpdateItemInput{
		Title:       in.Title,
		Description: in.Description,
		OwnerID:     in.OwnerID,
	})
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(item))
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	actor := ActorFromContext(r.Context())

	if err := s.items.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
