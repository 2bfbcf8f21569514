package interfaces

import (
	"log"
	"net/http"

	financeErrors "github.com/Pateriya27/Paisa-Ai/internal/finance/errors"
)

type respondJSONFunc func(w http.ResponseWriter, status int, payload interface{})
type respondErrorFunc func(w http.ResponseWriter, status int, message string)

// handleServiceError maps domain failures to the HTTP surface. Unauthorized
// deliberately maps to 404 so callers cannot tell "doesn't exist" apart
// from "exists but not yours".
func handleServiceError(respondError respondErrorFunc, w http.ResponseWriter, err error) {
	switch {
	case financeErrors.IsValidationError(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case financeErrors.IsNotFoundError(err):
		respondError(w, http.StatusNotFound, err.Error())
	case financeErrors.IsUnauthorizedError(err):
		respondError(w, http.StatusNotFound, "Not found")
	default:
		log.Printf("Unexpected service error: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func requestUserID(r *http.Request) (string, bool) {
	userID, ok := r.Context().Value("userID").(string)
	return userID, ok
}
