package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/decksvc/service"
)

type createProfileRequest struct {
	Mode          string `json:"mode"` // "create" or "join"
	Name          string `json:"name"`
	Email         string `json:"email"`
	Gender        string `json:"gender"`
	PartnerName   string `json:"partner_name"`
	PartnerGender string `json:"partner_gender"`
	Code          string `json:"code"`
}

type renameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) CreateProfileHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	var req createProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "malformed body"})
		return
	}

	user, err := h.userService.CreateProfile(r.Context(), accountID, service.ProfileInput{
		Name:          req.Name,
		Email:         req.Email,
		Gender:        req.Gender,
		PartnerName:   req.PartnerName,
		PartnerGender: req.PartnerGender,
		Join:          req.Mode == "join",
		Code:          req.Code,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingName) || errors.Is(err, service.ErrMissingPartnerName) || errors.Is(err, service.ErrMissingCode) {
			h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: err.Error()})
			return
		}
		log.Errorf("Error [UserService.CreateProfile] %s", err)
		h.CreateResponse(w, Response{Message: "profile creation failed", Code: http.StatusInternalServerError, Error: "unable to create profile"})
		return
	}

	h.CreateResponse(w, Response{Message: "profile created", Code: http.StatusCreated, Data: user})
}

func (h *Handler) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	user, err := h.userService.GetProfile(r.Context(), accountID)
	if err != nil {
		log.Errorf("Error [UserService.GetProfile] %s", err)
		h.CreateResponse(w, Response{Message: "profile fetch failed", Code: http.StatusInternalServerError, Error: "unable to fetch profile"})
		return
	}
	if user == nil {
		// a fresh account whose onboarding has not completed yet
		log.Infof("profile %s not found yet, still provisioning", accountID)
		h.CreateResponse(w, Response{Message: "profile not found", Code: http.StatusNotFound, Error: "profile is still provisioning"})
		return
	}

	h.CreateResponse(w, Response{Message: "profile", Code: http.StatusOK, Data: user})
}

func (h *Handler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "malformed body"})
		return
	}

	user, err := h.userService.Rename(r.Context(), accountID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrMissingName) {
			h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: err.Error()})
			return
		}
		log.Errorf("Error [UserService.Rename] %s", err)
		h.CreateResponse(w, Response{Message: "profile update failed", Code: http.StatusInternalServerError, Error: "unable to update profile"})
		return
	}

	h.CreateResponse(w, Response{Message: "profile updated", Code: http.StatusOK, Data: user})
}

func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	user, err := h.userService.GetProfile(r.Context(), accountID)
	if err != nil {
		log.Errorf("Error [UserService.GetProfile] %s", err)
		h.CreateResponse(w, Response{Message: "stats failed", Code: http.StatusInternalServerError, Error: "unable to fetch profile"})
		return
	}
	if user == nil {
		h.CreateResponse(w, Response{Message: "profile not found", Code: http.StatusNotFound, Error: "profile is still provisioning"})
		return
	}

	stats, err := h.feedService.Stats(r.Context(), user)
	if err != nil {
		log.Errorf("Error [FeedService.Stats] %s", err)
		h.CreateResponse(w, Response{Message: "stats failed", Code: http.StatusInternalServerError, Error: "unable to compute stats"})
		return
	}

	h.CreateResponse(w, Response{Message: "stats", Code: http.StatusOK, Data: stats})
}

func (h *Handler) ReshuffleHandler(w http.ResponseWriter, r *http.Request) {
	accountID, err := h.currentAccountID(r)
	if err != nil {
		h.CreateResponse(w, Response{Message: "unauthorized", Code: http.StatusUnauthorized, Error: err.Error()})
		return
	}

	user, err := h.userService.Reshuffle(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			h.CreateResponse(w, Response{Message: "profile not found", Code: http.StatusNotFound, Error: err.Error()})
			return
		}
		log.Errorf("Error [UserService.Reshuffle] %s", err)
		h.CreateResponse(w, Response{Message: "reshuffle failed", Code: http.StatusInternalServerError, Error: "unable to reshuffle"})
		return
	}

	h.CreateResponse(w, Response{Message: "hand reshuffled", Code: http.StatusOK, Data: user})
}
