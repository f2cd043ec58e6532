package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/vikramsomai/portfolio-skills-manager/internal/apperror"
)

type Payload struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Count   *int                  `json:"count,omitempty"`
	Data    any                   `json:"data,omitempty"`
	Errors  []apperror.FieldError `json:"errors,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps err to its HTTP status and writes the failure envelope.
// Anything that is not an apperror becomes a generic internal error; the
// underlying cause is logged, never sent to the client.
func WriteError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternal("Something went wrong!", err)
	}
	if appErr.Kind == apperror.Internal {
		log.Printf("internal error: %v", err)
	}

	JSONResponse(w, appErr.StatusCode(), Payload{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}
