package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/pkg/common"
	pkgerrors "socialnet-backend/pkg/errors"
)

// FriendshipHandler handles friendship-related HTTP requests
type FriendshipHandler struct {
	service *services.NetworkService
	logger  *zap.Logger
}

// NewFriendshipHandler creates a new friendship handler
func NewFriendshipHandler(service *services.NetworkService, logger *zap.Logger) *FriendshipHandler {
	return &FriendshipHandler{
		service: service,
		logger:  logger,
	}
}

// FriendshipRequest is the request body for creating or removing a friendship
type FriendshipRequest struct {
	First  string `json:"first" validate:"required"`
	Second string `json:"second" validate:"required"`
}

// CreateFriendship handles POST /friendships
func (h *FriendshipHandler) CreateFriendship(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFriendship(w, r)
	if !ok {
		return
	}

	created, err := h.service.AddFriend(req.First, req.Second)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	common.RespondJSON(w, status, map[string]interface{}{
		"first":   req.First,
		"second":  req.Second,
		"created": created,
	})
}

// DeleteFriendship handles DELETE /friendships
func (h *FriendshipHandler) DeleteFriendship(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeFriendship(w, r)
	if !ok {
		return
	}

	removed, err := h.service.RemoveFriend(req.First, req.Second)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"first":   req.First,
		"second":  req.Second,
		"removed": removed,
	})
}

// ListFriendships handles GET /friendships
func (h *FriendshipHandler) ListFriendships(w http.ResponseWriter, r *http.Request) {
	friendships := h.service.Friendships()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"friendships": friendships,
		"count":       len(friendships),
	})
}

// CheckConnection handles GET /connections
func (h *FriendshipHandler) CheckConnection(w http.ResponseWriter, r *http.Request) {
	first := r.URL.Query().Get("first")
	second := r.URL.Query().Get("second")
	if first == "" || second == "" {
		common.RespondError(w, pkgerrors.NewValidationError("query parameters 'first' and 'second' are required"))
		return
	}

	connected, err := h.service.AreConnected(first, second)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"first":     first,
		"second":    second,
		"connected": connected,
	})
}

func (h *FriendshipHandler) decodeFriendship(w http.ResponseWriter, r *http.Request) (FriendshipRequest, bool) {
	var req FriendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, pkgerrors.NewValidationError("invalid request body"))
		return req, false
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, pkgerrors.NewValidationError(err.Error()))
		return req, false
	}
	return req, true
}
