package handler

import (
	"net/http"

	"canonforces/internal/api/middleware"
	"canonforces/internal/common"
	"canonforces/internal/domain/model"
	"canonforces/internal/domain/repository"

	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users repository.UserRecordRepository
}

func NewUserHandler(users repository.UserRecordRepository) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.me)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
		return
	}

	// The session identity is the caller for the store's per-document rule.
	as := &model.Account{SubjectID: userID}
	record, err := h.users.Get(r.Context(), as, userID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, record)
}
