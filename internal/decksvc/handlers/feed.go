package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi"
	log "github.com/sirupsen/logrus"
)

type likeRequest struct {
	On bool `json:"on"`
}

func (h *Handler) FeedHandler(w http.ResponseWriter, r *http.Request) {
	items, err := h.feedService.GetFeed(r.Context())
	if err != nil {
		log.Errorf("Error [FeedService.GetFeed] %s", err)
		h.CreateResponse(w, Response{Message: "feed fetch failed", Code: http.StatusInternalServerError, Error: "unable to fetch feed"})
		return
	}

	h.CreateResponse(w, Response{Message: "feed", Code: http.StatusOK, Data: items})
}

func (h *Handler) StoriesHandler(w http.ResponseWriter, r *http.Request) {
	stories, err := h.feedService.GetStories(r.Context())
	if err != nil {
		log.Errorf("Error [FeedService.GetStories] %s", err)
		h.CreateResponse(w, Response{Message: "stories fetch failed", Code: http.StatusInternalServerError, Error: "unable to fetch stories"})
		return
	}

	h.CreateResponse(w, Response{Message: "stories", Code: http.StatusOK, Data: stories})
}

func (h *Handler) LikeHandler(w http.ResponseWriter, r *http.Request) {
	feedItemID := chi.URLParam(r, "id")

	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "malformed body"})
		return
	}

	if err := h.feedService.ToggleLike(r.Context(), feedItemID, req.On); err != nil {
		log.Errorf("Error [FeedService.ToggleLike] %s", err)
		h.CreateResponse(w, Response{Message: "like failed", Code: http.StatusNotFound, Error: "feed item not found"})
		return
	}

	h.CreateResponse(w, Response{Message: "like updated", Code: http.StatusOK})
}

func (h *Handler) CommentHandler(w http.ResponseWriter, r *http.Request) {
	feedItemID := chi.URLParam(r, "id")

	if err := h.feedService.AddComment(r.Context(), feedItemID); err != nil {
		log.Errorf("Error [FeedService.AddComment] %s", err)
		h.CreateResponse(w, Response{Message: "comment failed", Code: http.StatusNotFound, Error: "feed item not found"})
		return
	}

	h.CreateResponse(w, Response{Message: "comment added", Code: http.StatusOK})
}
