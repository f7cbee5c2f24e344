package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/portal"
	"github.com/phoopyae1/OSS/pkg/store"
)

// Handlers contains the HTTP request handlers for the portal.
type Handlers struct {
	logger *logrus.Logger
	store  *store.Store
	portal *portal.Portal
	tokens *auth.Tokens
}

// NewHandlers creates a new Handlers instance with the provided dependencies.
func NewHandlers(logger *logrus.Logger, st *store.Store, p *portal.Portal, tokens *auth.Tokens) *Handlers {
	return &Handlers{
		logger: logger,
		store:  st,
		portal: p,
		tokens: tokens,
	}
}

func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// Health returns the health status of the portal service.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	respondWithJSON(w, http.StatusOK, response)
}

// ServiceStatus returns the public status snapshot: overall status plus the
// active services.
func (h *Handlers) ServiceStatus(w http.ResponseWriter, r *http.Request) {
	payload, err := h.portal.PublicStatus(time.Now().UTC())
	if err != nil {
		h.logger.WithField("error", err).Error("Failed to build status payload")
		respondWithError(w, http.StatusInternalServerError, "Failed to get service status")
		return
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// Notifications returns the public announcement feed, filtered by the active
// flag and an inclusive creation-date range. Malformed date parameters are
// ignored rather than rejected, but logged so client errors stay visible.
func (h *Handlers) Notifications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, badDates := announce.ParseFilter(query.Get("active"), query.Get("from"), query.Get("to"))
	for _, param := range badDates {
		h.logger.WithFields(logrus.Fields{
			"param": param,
			"value": query.Get(param),
		}).Warn("Ignoring unparsable date parameter")
	}

	payload, err := h.portal.PublicAnnouncements(filter, time.Now().UTC())
	if err != nil {
		h.logger.WithField("error", err).Error("Failed to build announcements payload")
		respondWithError(w, http.StatusInternalServerError, "Failed to get announcements")
		return
	}
	respondWithJSON(w, http.StatusOK, payload)
}

// Dashboard returns the staff dashboard view-model.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	model, err := h.portal.DashboardModel(time.Now().UTC())
	if err != nil {
		h.logger.WithField("error", err).Error("Failed to build dashboard model")
		respondWithError(w, http.StatusInternalServerError, "Failed to get dashboard")
		return
	}
	respondWithJSON(w, http.StatusOK, model)
}

// LoginRequest is the credentials payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate returns the list of problems with the login request.
func (lr *LoginRequest) Validate() []string {
	messages := []string{}
	if lr.Username == "" {
		messages = append(messages, "Username is required")
	}
	if lr.Password == "" {
		messages = append(messages, "Password is required")
	}
	return messages
}

// Login checks credentials and issues an access token.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if messages := req.Validate(); len(messages) > 0 {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": messages})
		return
	}

	logger := h.logger.WithField("username", req.Username)

	user, err := h.store.FindUserByUsername(req.Username)
	if err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.WithField("error", err).Error("Failed to query user from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username, user.Role)
	if err != nil {
		logger.WithField("error", err).Error("Failed to sign token")
		respondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	logger.Info("User logged in")
	respondWithJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}
