package handler

import (
	"encoding/json"
	"net/http"

	"canonforces/internal/app/service"
	"canonforces/internal/common"
	"canonforces/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type SignupHandler struct {
	signupService *service.SignupService
}

func NewSignupHandler(signupService *service.SignupService) *SignupHandler {
	return &SignupHandler{signupService: signupService}
}

func (h *SignupHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/google", h.googleSignup)
}

func (h *SignupHandler) signup(w http.ResponseWriter, r *http.Request) {
	var candidate model.SignupCandidate
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.signupService.EmailSignup(r.Context(), candidate)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, resp)
}

func (h *SignupHandler) googleSignup(w http.ResponseWriter, r *http.Request) {
	var req service.GoogleSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := h.signupService.GoogleSignup(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
