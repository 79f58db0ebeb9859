package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/pkg/common"
	pkgerrors "socialnet-backend/pkg/errors"
)

// NetworkHandler handles whole-network HTTP requests: load, save, stats
type NetworkHandler struct {
	service  *services.NetworkService
	dataFile string
	logger   *zap.Logger
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(service *services.NetworkService, dataFile string, logger *zap.Logger) *NetworkHandler {
	return &NetworkHandler{
		service:  service,
		dataFile: dataFile,
		logger:   logger,
	}
}

// NetworkFileRequest optionally overrides the configured data file
type NetworkFileRequest struct {
	Path string `json:"path"`
}

// GetStats handles GET /network
func (h *NetworkHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	people := h.service.People()
	friendships := h.service.Friendships()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"people":      len(people),
		"friendships": len(friendships),
	})
}

// Load handles POST /network/load
//
// Replaces the live network with the contents of the file. On failure the
// current network is left untouched.
func (h *NetworkHandler) Load(w http.ResponseWriter, r *http.Request) {
	path, ok := h.resolvePath(w, r)
	if !ok {
		return
	}

	if err := h.service.LoadFromFile(path); err != nil {
		h.logger.Error("Failed to load network",
			zap.String("path", path),
			zap.Error(err),
		)
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"path":   path,
		"loaded": true,
	})
}

// Save handles POST /network/save
func (h *NetworkHandler) Save(w http.ResponseWriter, r *http.Request) {
	path, ok := h.resolvePath(w, r)
	if !ok {
		return
	}

	if err := h.service.SaveToFile(path); err != nil {
		h.logger.Error("Failed to save network",
			zap.String("path", path),
			zap.Error(err),
		)
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"path":  path,
		"saved": true,
	})
}

func (h *NetworkHandler) resolvePath(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := h.dataFile
	if r.Body != nil && r.ContentLength != 0 {
		var req NetworkFileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, pkgerrors.NewValidationError("invalid request body"))
			return "", false
		}
		if req.Path != "" {
			path = req.Path
		}
	}
	return path, true
}
