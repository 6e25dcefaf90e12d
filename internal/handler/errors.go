package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// slotRejectedMessage is the notice shown for an invalid appointment slot.
const slotRejectedMessage = "Invalid appointment time. Check operational hours."

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was being
// looked up.
func notFoundBody(message string) ErrorResponse {
	return errorBody("not_found", message)
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (malformed JSON, bad path parameter).
func requestBody(message string) ErrorResponse {
	return errorBody("bad_request", message)
}

// writeServiceError maps a service error onto a status code and body.
// Unknown errors are logged and answered with 500 and a generic message.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotRejected):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("slot_rejected", slotRejectedMessage))
	case errors.Is(err, domain.ErrInvalidAmount):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("invalid_amount", unwrapMessage(err)))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", unwrapMessage(err)))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody("registration not found"))
	case errors.Is(err, domain.ErrLogWrite):
		writeJSON(w, http.StatusInternalServerError, errorBody("log_write_failed", "the appointment could not be recorded; nothing was registered"))
	default:
		s.logger.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
	}
}

// writeDecodeError answers a body that could not be decoded: 413 when the
// size limit tripped, 400 otherwise.
func writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("body_too_large", "request body too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON object"))
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "service.DonationService.RecordDonation: validation error: item description is required"
// → "item description is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 && i+len(marker) < len(msg) {
		return msg[i+len(marker):]
	}
	return msg
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // the status line is already sent; nothing useful to do on failure.
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
