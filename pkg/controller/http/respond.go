package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/usecase"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/utils/errutil"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// respondError maps use case sentinel errors onto HTTP status codes and
// writes the JSON error payload through errutil.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, usecase.ErrAuditNotFound),
		errors.Is(err, usecase.ErrPhaseNotFound),
		errors.Is(err, usecase.ErrTaskNotFound),
		errors.Is(err, usecase.ErrRiskNotFound),
		errors.Is(err, usecase.ErrCriterionNotFound),
		errors.Is(err, usecase.ErrEntryNotFound),
		errors.Is(err, usecase.ErrPersonNotFound):
		status = http.StatusNotFound
	}

	errutil.HandleHTTP(ctx, w, err, status)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(usecase.ErrInvalidInput, "invalid JSON body", goerr.V("cause", err.Error()))
	}
	return nil
}
