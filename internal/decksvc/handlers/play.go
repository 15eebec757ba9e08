package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/comm"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/deck"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/service"
)

type playRequest struct {
	CardID string `json:"card_id"`
}

// PlayCardHandler is the call site that gates the daily limit before the
// play transaction starts.
func (h *Handler) PlayCardHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	var req playRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.CardID == "" {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "card_id is required"})
		return
	}

	user, err := h.userService.GetProfile(r.Context(), accountID)
	if err != nil {
		log.Errorf("Error [UserService.GetProfile] %s", err)
		h.CreateResponse(w, Response{Message: "play failed", Code: http.StatusInternalServerError, Error: "unable to fetch profile"})
		return
	}
	if user == nil {
		h.CreateResponse(w, Response{Message: "profile not found", Code: http.StatusNotFound, Error: "profile is still provisioning"})
		return
	}

	if deck.PlayedToday(user.LastPlayedDate, time.Now()) {
		h.CreateResponse(w, Response{Message: "already played", Code: http.StatusConflict, Error: "daily card already played, come back tomorrow"})
		return
	}

	result, err := h.playService.Play(r.Context(), user, req.CardID)
	if err != nil {
		if errors.Is(err, service.ErrCardNotInHand) {
			h.CreateResponse(w, Response{Message: "invalid card", Code: http.StatusConflict, Error: err.Error()})
			return
		}
		log.Errorf("Error [PlayService.Play] %s", err)
		h.CreateResponse(w, Response{Message: "play failed", Code: http.StatusInternalServerError, Error: "unable to play card"})
		return
	}

	h.broker.PublishPlayEvent(comm.PlayEvent{
		CoupleCode: user.CoupleCode,
		FeedItem:   result.FeedItem,
		Story:      result.Story,
	})

	h.CreateResponse(w, Response{Message: "card played", Code: http.StatusOK, Data: result})
}
