package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/service"
	"github.com/MKhiriev/go-zkeb/internal/store"
	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	device, err := h.services.AuthService.RegisterDevice(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeviceAlreadyRegistered):
			log.Err(err).Msg("device already registered")
			http.Error(w, "device already registered", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("device_id", device.DeviceID).Msg("device successfully registered")

	utils.WriteJSON(w, device, http.StatusCreated)
}

func (h *Handler) challenge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	challenge, err := h.services.AuthService.IssueChallenge(ctx, req.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeviceNotFound):
			log.Err(err).Msg("device is not registered")
			http.Error(w, "device is not registered", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during challenge issue")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, challenge, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrChallengeNotFound),
			errors.Is(err, service.ErrChallengeExpired),
			errors.Is(err, service.ErrChallengeMismatch),
			errors.Is(err, service.ErrSignatureVerification),
			errors.Is(err, store.ErrDeviceNotFound):
			log.Err(err).Msg("challenge-response verification failed")
			http.Error(w, "challenge-response verification failed", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during device login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("device_id", token.DeviceID).Msg("device successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
