package handler

import (
	"net/http"
	"time"

	"canonforces/internal/app/service"
	"canonforces/internal/common"
	"canonforces/internal/domain/model"
	"canonforces/internal/feed"

	"github.com/go-chi/chi/v5"
)

type ContestHandler struct {
	contestService *service.ContestService
}

func NewContestHandler(contestService *service.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

func (h *ContestHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listContests)
	r.Get("/sidebar", h.sidebar)
}

func (h *ContestHandler) listContests(w http.ResponseWriter, r *http.Request) {
	contests, err := h.contestService.Upcoming(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	if contests == nil {
		contests = []model.Contest{}
	}
	common.RespondWithJSON(w, http.StatusOK, model.ContestsResponse{Contests: contests})
}

type sidebarResponse struct {
	Entries []feed.Entry `json:"entries"`
}

// sidebar serves pre-built view models for server-side rendered consumers,
// using the same pipeline the client widget runs.
func (h *ContestHandler) sidebar(w http.ResponseWriter, r *http.Request) {
	contests, err := h.contestService.Upcoming(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	entries := feed.BuildEntries(contests, time.Now())
	if entries == nil {
		entries = []feed.Entry{}
	}
	common.RespondWithJSON(w, http.StatusOK, sidebarResponse{Entries: entries})
}
