package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	domainErrors "github.com/thomas-vilte/mateforge/internal/errors"
	"github.com/thomas-vilte/mateforge/internal/logger"
	"github.com/thomas-vilte/mateforge/internal/metrics"
)

// errorPayload is the wire shape of every failure response. Step and Branch
// report how far a multi-call pipeline got; UpstreamStatus and Message carry
// the hosting API's own status and text untouched; Suggestion preserves
// generated text when posting it failed.
type errorPayload struct {
	Type           string `json:"type"`
	Message        string `json:"message"`
	Step           string `json:"step,omitempty"`
	Branch         string `json:"branch,omitempty"`
	UpstreamStatus int    `json:"upstream_status,omitempty"`
	Suggestion     string `json:"suggestion,omitempty"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	errType := domainErrors.TypeOf(err)
	payload := errorPayload{
		Type:    string(errType),
		Message: errorMessage(err),
	}

	var stepErr *domainErrors.StepError
	if errors.As(err, &stepErr) {
		payload.Step = stepErr.Step
		payload.Branch = stepErr.Branch
		payload.Suggestion = stepErr.Suggestion
		metrics.RecordStepFailure(routePattern(r), stepErr.Step)
	}

	var remoteErr *domainErrors.RemoteError
	if errors.As(err, &remoteErr) {
		payload.UpstreamStatus = remoteErr.StatusCode
	}

	respondJSON(w, r, statusForType(errType), map[string]errorPayload{"error": payload})
}

// errorMessage prefers the rawest text available: the hosting API's own
// message when a RemoteError is in the chain, then the AppError message,
// then whatever Error() renders.
func errorMessage(err error) string {
	var remoteErr *domainErrors.RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func statusForType(t domainErrors.ErrorType) int {
	switch t {
	case domainErrors.TypeValidation:
		return http.StatusBadRequest
	case domainErrors.TypeAuth:
		return http.StatusUnauthorized
	case domainErrors.TypeRemoteNotFound:
		return http.StatusNotFound
	case domainErrors.TypeRemoteConflict:
		return http.StatusUnprocessableEntity
	case domainErrors.TypeRemoteUnavailable:
		return http.StatusBadGateway
	case domainErrors.TypeRemoteTimeout:
		return http.StatusGatewayTimeout
	case domainErrors.TypeGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func routePattern(r *http.Request) string {
	if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
		if pattern := routeCtx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
