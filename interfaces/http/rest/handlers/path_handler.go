package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/pkg/common"
	pkgerrors "socialnet-backend/pkg/errors"
)

// PathHandler handles shortest-path HTTP requests
type PathHandler struct {
	service *services.NetworkService
	logger  *zap.Logger
}

// NewPathHandler creates a new path handler
func NewPathHandler(service *services.NetworkService, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		service: service,
		logger:  logger,
	}
}

// GetShortestPath handles GET /paths
//
// Query parameters: from, to, and zero or more avoid entries naming people
// excluded from the search.
func (h *PathHandler) GetShortestPath(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		common.RespondError(w, pkgerrors.NewValidationError("query parameters 'from' and 'to' are required"))
		return
	}
	avoid := query["avoid"]

	path, err := h.service.ShortestPath(from, to, avoid)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	found := len(path) > 0
	response := map[string]interface{}{
		"from":  from,
		"to":    to,
		"found": found,
		"path":  path,
	}
	if found {
		response["hops"] = len(path) - 1
	}
	common.RespondJSON(w, http.StatusOK, response)
}
