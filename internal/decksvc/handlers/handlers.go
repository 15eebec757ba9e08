package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"

	"github.com/lovedeck/lovedeck-services/internal/comm"
	"github.com/lovedeck/lovedeck-services/internal/decksvc/service"
)

const tokenLifetime = 7 * 24 * time.Hour

// PlayEventPublisher fans confirmed plays out to the socket service.
type PlayEventPublisher interface {
	PublishPlayEvent(ev comm.PlayEvent)
}

type Handler struct {
	tokenAuth   *jwtauth.JWTAuth
	authService *service.AuthService
	userService *service.UserService
	playService *service.PlayService
	feedService *service.FeedService
	broker      PlayEventPublisher
}

func NewHandler(authService *service.AuthService, userService *service.UserService,
	playService *service.PlayService, feedService *service.FeedService, b PlayEventPublisher) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
		playService: playService,
		feedService: feedService,
		broker:      b,
	}
}

type Response struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data"`
	Error   string      `json:"error"`
}

func (rs *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	rsp := Response{
		Message: "deck service is running at port " + os.Getenv("DECK_SERVICE_PORT"),
		Code:    200,
		Data:    nil,
	}
	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// issueToken mints the session token a client keeps until logout.
func (h *Handler) issueToken(accountID string) (string, error) {
	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"account_id": accountID,
		"exp":        time.Now().Add(tokenLifetime).Unix(),
	})
	return tokenString, err
}

// currentAccountID pulls the authenticated account out of the verified JWT.
func (h *Handler) currentAccountID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", err
	}
	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return "", fmt.Errorf("token missing account_id claim")
	}
	return accountID, nil
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenData struct {
	Token     string `json:"token"`
	AccountID string `json:"account_id"`
}

func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "email and password are required"})
		return
	}

	account, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.CreateResponse(w, Response{Message: "authentication failed", Code: http.StatusUnauthorized, Error: err.Error()})
			return
		}
		log.Errorf("Error [AuthService.Register] %s", err)
		h.CreateResponse(w, Response{Message: "registration failed", Code: http.StatusInternalServerError, Error: "unable to register"})
		return
	}

	h.respondWithToken(w, account.AccountID)
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		h.CreateResponse(w, Response{Message: "invalid request", Code: http.StatusBadRequest, Error: "email and password are required"})
		return
	}

	account, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.CreateResponse(w, Response{Message: "authentication failed", Code: http.StatusUnauthorized, Error: err.Error()})
			return
		}
		log.Errorf("Error [AuthService.Login] %s", err)
		h.CreateResponse(w, Response{Message: "login failed", Code: http.StatusInternalServerError, Error: "unable to login"})
		return
	}

	h.respondWithToken(w, account.AccountID)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, accountID string) {
	token, err := h.issueToken(accountID)
	if err != nil {
		log.Errorf("Error issuing token %s", err)
		h.CreateResponse(w, Response{Message: "login failed", Code: http.StatusInternalServerError, Error: "unable to issue token"})
		return
	}

	h.CreateResponse(w, Response{
		Message: "authenticated",
		Code:    http.StatusOK,
		Data:    tokenData{Token: token, AccountID: accountID},
	})
}
