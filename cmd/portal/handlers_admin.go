package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/phoopyae1/OSS/pkg/announce"
	"github.com/phoopyae1/OSS/pkg/store"
	"github.com/phoopyae1/OSS/pkg/types"
)

// ServiceInput is the admin payload for creating or updating a service.
type ServiceInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	IsActive    bool   `json:"isActive"`
}

// Validate returns the list of problems with the input.
func (in *ServiceInput) Validate() []string {
	messages := []string{}
	if strings.TrimSpace(in.Name) == "" {
		messages = append(messages, "Service name is required")
	}
	if _, err := types.ParseStatus(in.Status); err != nil {
		messages = append(messages, err.Error())
	}
	return messages
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func (in *ServiceInput) apply(service *types.Service) {
	service.Name = in.Name
	service.Description = optional(in.Description)
	service.Category = optional(in.Category)
	service.Status = types.Status(in.Status)
	service.IsActive = in.IsActive
}

// AnnouncementInput is the admin payload for creating or updating an
// announcement. StartsAt and EndsAt accept RFC 3339 or date-only strings;
// empty or unparsable values leave that side of the window unbounded.
type AnnouncementInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
	IsActive bool   `json:"isActive"`
}

// Validate returns the list of problems with the input.
func (in *AnnouncementInput) Validate() []string {
	messages := []string{}
	if strings.TrimSpace(in.Title) == "" {
		messages = append(messages, "Title is required")
	}
	if strings.TrimSpace(in.Body) == "" {
		messages = append(messages, "Body is required")
	}
	return messages
}

func (in *AnnouncementInput) apply(announcement *types.Announcement, log *logrus.Entry) {
	announcement.Title = in.Title
	announcement.Body = in.Body
	announcement.IsActive = in.IsActive

	var ok bool
	if announcement.StartsAt, ok = announce.ParseDate(in.StartsAt); !ok {
		log.WithField("starts_at", in.StartsAt).Warn("Ignoring unparsable startsAt")
	}
	if announcement.EndsAt, ok = announce.ParseDate(in.EndsAt); !ok {
		log.WithField("ends_at", in.EndsAt).Warn("Ignoring unparsable endsAt")
	}
}

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	return id, err == nil
}

// ListServices returns every service, including inactive ones, in board
// order.
func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.store.FindServices(store.ServiceFilter{})
	if err != nil {
		h.logger.WithField("error", err).Error("Failed to query services from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get services")
		return
	}
	respondWithJSON(w, http.StatusOK, services)
}

// GetService returns one service by id.
func (h *Handlers) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	service, err := h.store.GetService(id)
	if err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		h.logger.WithFields(logrus.Fields{"service_id": id, "error": err}).Error("Failed to query service from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get service")
		return
	}
	respondWithJSON(w, http.StatusOK, service)
}

// CreateService creates a new monitored service.
func (h *Handlers) CreateService(w http.ResponseWriter, r *http.Request) {
	var input ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if messages := input.Validate(); len(messages) > 0 {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": messages})
		return
	}

	var service types.Service
	input.apply(&service)

	logger := h.logger.WithFields(logrus.Fields{
		"name":   service.Name,
		"status": service.Status,
	})

	if err := h.store.CreateService(&service); err != nil {
		logger.WithField("error", err).Error("Failed to create service in database")
		respondWithError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}

	logger.Infof("Successfully created service: %s", service.ID)
	respondWithJSON(w, http.StatusCreated, service)
}

// UpdateService replaces the editable fields of an existing service.
func (h *Handlers) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var input ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if messages := input.Validate(); len(messages) > 0 {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": messages})
		return
	}

	logger := h.logger.WithField("service_id", id)

	service, err := h.store.GetService(id)
	if err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		logger.WithField("error", err).Error("Failed to query service from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get service")
		return
	}

	input.apply(service)

	if err := h.store.UpdateService(service); err != nil {
		logger.WithField("error", err).Error("Failed to update service in database")
		respondWithError(w, http.StatusInternalServerError, "Failed to update service")
		return
	}

	logger.Info("Successfully updated service")
	respondWithJSON(w, http.StatusOK, service)
}

// DeleteService removes a service by id.
func (h *Handlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid service ID")
		return
	}

	logger := h.logger.WithField("service_id", id)

	if err := h.store.DeleteService(id); err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		logger.WithField("error", err).Error("Failed to delete service from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	logger.Info("Successfully deleted service")
	w.WriteHeader(http.StatusNoContent)
}

// ListAnnouncements returns every announcement, newest first.
func (h *Handlers) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.store.FindAnnouncements(announce.Filter{})
	if err != nil {
		h.logger.WithField("error", err).Error("Failed to query announcements from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get announcements")
		return
	}
	respondWithJSON(w, http.StatusOK, announcements)
}

// GetAnnouncement returns one announcement by id.
func (h *Handlers) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	announcement, err := h.store.GetAnnouncement(id)
	if err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		h.logger.WithFields(logrus.Fields{"announcement_id": id, "error": err}).Error("Failed to query announcement from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get announcement")
		return
	}
	respondWithJSON(w, http.StatusOK, announcement)
}

// CreateAnnouncement creates a new announcement.
func (h *Handlers) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var input AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if messages := input.Validate(); len(messages) > 0 {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": messages})
		return
	}

	logger := h.logger.WithField("title", input.Title)

	var announcement types.Announcement
	input.apply(&announcement, logger)

	if err := h.store.CreateAnnouncement(&announcement); err != nil {
		logger.WithField("error", err).Error("Failed to create announcement in database")
		respondWithError(w, http.StatusInternalServerError, "Failed to create announcement")
		return
	}

	logger.Infof("Successfully created announcement: %s", announcement.ID)
	respondWithJSON(w, http.StatusCreated, announcement)
}

// UpdateAnnouncement replaces the editable fields of an existing
// announcement.
func (h *Handlers) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	var input AnnouncementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if messages := input.Validate(); len(messages) > 0 {
		respondWithJSON(w, http.StatusBadRequest, map[string]interface{}{"errors": messages})
		return
	}

	logger := h.logger.WithField("announcement_id", id)

	announcement, err := h.store.GetAnnouncement(id)
	if err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		logger.WithField("error", err).Error("Failed to query announcement from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to get announcement")
		return
	}

	input.apply(announcement, logger)

	if err := h.store.UpdateAnnouncement(announcement); err != nil {
		logger.WithField("error", err).Error("Failed to update announcement in database")
		respondWithError(w, http.StatusInternalServerError, "Failed to update announcement")
		return
	}

	logger.Info("Successfully updated announcement")
	respondWithJSON(w, http.StatusOK, announcement)
}

// DeleteAnnouncement removes an announcement by id.
func (h *Handlers) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid announcement ID")
		return
	}

	logger := h.logger.WithField("announcement_id", id)

	if err := h.store.DeleteAnnouncement(id); err != nil {
		if err == store.ErrNotFound {
			respondWithError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		logger.WithField("error", err).Error("Failed to delete announcement from database")
		respondWithError(w, http.StatusInternalServerError, "Failed to delete announcement")
		return
	}

	logger.Info("Successfully deleted announcement")
	w.WriteHeader(http.StatusNoContent)
}

// OpenAPI serves the API description document.
func (h *Handlers) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(openAPISpec))
}
