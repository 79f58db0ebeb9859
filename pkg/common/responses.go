package common

import (
	"encoding/json"
	"errors"
	"net/http"

	pkgerrors "socialnet-backend/pkg/errors"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RespondJSON sends a JSON response
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	response := APIResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondError sends an error response, mapping AppError types to HTTP status
func RespondError(w http.ResponseWriter, err error) {
	status := pkgerrors.StatusCode(err)
	info := &ErrorInfo{
		Code:    string(pkgerrors.ErrorTypeInternal),
		Message: "internal error",
	}

	var appErr *pkgerrors.AppError
	if errors.As(err, &appErr) {
		info.Code = string(appErr.Type)
		info.Message = appErr.Message
		info.Details = appErr.Details
	}

	response := APIResponse{
		Success: false,
		Error:   info,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// RespondMessage sends a simple message response
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"message": message})
}
