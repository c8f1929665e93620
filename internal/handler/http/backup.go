package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-zkeb/internal/logger"
	"github.com/MKhiriev/go-zkeb/internal/utils"
	"github.com/MKhiriev/go-zkeb/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, err := utils.DeviceIDFromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("no device ID in request context")
		http.Error(w, "no device ID in request context", http.StatusUnauthorized)
		return
	}

	var req models.UploadBackupRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.BackupService.UploadBackup(ctx, deviceID, req.Backup)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error uploading backup")
		http.Error(w, "error uploading backup", statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusCreated)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, err := utils.DeviceIDFromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("no device ID in request context")
		http.Error(w, "no device ID in request context", http.StatusUnauthorized)
		return
	}

	backupID := chi.URLParam(r, "id")
	if backupID == "" {
		log.Error().Str("func", "*Handler.download").Msg("no backup ID was given")
		http.Error(w, "no backup ID was given", http.StatusBadRequest)
		return
	}

	backup, err := h.services.BackupService.DownloadBackup(ctx, deviceID, backupID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error downloading backup")
		http.Error(w, "error downloading backup", statusFromError(err))
		return
	}

	utils.WriteJSON(w, backup, http.StatusOK)
}

// list returns the device's backup records. The optional `ids` query
// parameter narrows the result to a comma-separated set of backup IDs.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, err := utils.DeviceIDFromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("no device ID in request context")
		http.Error(w, "no device ID in request context", http.StatusUnauthorized)
		return
	}

	var backupIDs []string
	if ids := r.URL.Query().Get("ids"); ids != "" {
		backupIDs = strings.Split(ids, ",")
	}

	backups, err := h.services.BackupService.DownloadBackups(ctx, deviceID, backupIDs)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error downloading backups")
		http.Error(w, "error downloading backups", statusFromError(err))
		return
	}

	utils.WriteJSON(w, backups, http.StatusOK)
}

func (h *Handler) syncStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, err := utils.DeviceIDFromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStates").Msg("no device ID in request context")
		http.Error(w, "no device ID in request context", http.StatusUnauthorized)
		return
	}

	response, err := h.services.BackupService.SyncStates(ctx, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.syncStates").Msg("error getting backup states")
		http.Error(w, "error getting backup states", statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, err := utils.DeviceIDFromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.remove").Msg("no device ID in request context")
		http.Error(w, "no device ID in request context", http.StatusUnauthorized)
		return
	}

	backupID := chi.URLParam(r, "id")
	if backupID == "" {
		log.Error().Str("func", "*Handler.remove").Msg("no backup ID was given")
		http.Error(w, "no backup ID was given", http.StatusBadRequest)
		return
	}

	if err = h.services.BackupService.DeleteBackup(ctx, deviceID, backupID); err != nil {
		log.Err(err).Str("func", "*Handler.remove").Msg("error deleting backup")
		http.Error(w, "error deleting backup", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
