package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"socialnet-backend/application/services"
	"socialnet-backend/pkg/common"
	pkgerrors "socialnet-backend/pkg/errors"
)

var validate = validator.New()

// defaultRecommendationLimit caps recommendation responses when no limit
// is given.
const defaultRecommendationLimit = 5

// PersonHandler handles person-related HTTP requests
type PersonHandler struct {
	service *services.NetworkService
	logger  *zap.Logger
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(service *services.NetworkService, logger *zap.Logger) *PersonHandler {
	return &PersonHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePersonRequest is the request body for adding a person
type CreatePersonRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreatePerson handles POST /people
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, pkgerrors.NewValidationError("invalid request body"))
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	created, err := h.service.AddPerson(req.Name)
	if err != nil {
		common.RespondError(w, err)
		return
	}

	status := http.StatusCreated
	if !created {
		// Idempotent add: the person was already there
		status = http.StatusOK
	}
	common.RespondJSON(w, status, map[string]interface{}{
		"name":    req.Name,
		"created": created,
	})
}

// ListPeople handles GET /people
func (h *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people := h.service.People()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"people": people,
		"count":  len(people),
	})
}

// DeletePerson handles DELETE /people/{name}
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.service.RemovePerson(name); err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondMessage(w, http.StatusOK, "person removed")
}

// GetFriends handles GET /people/{name}/friends
func (h *PersonHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	friends, err := h.service.Friends(name)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"name":    name,
		"friends": friends,
		"count":   len(friends),
	})
}

// GetRecommendations handles GET /people/{name}/recommendations
func (h *PersonHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	limit := defaultRecommendationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			common.RespondError(w, pkgerrors.NewValidationError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	recommendations, err := h.service.Recommendations(name, limit)
	if err != nil {
		common.RespondError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"name":            name,
		"recommendations": recommendations,
	})
}
