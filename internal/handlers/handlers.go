// Package handlers provides the generic glue between chi routes and
// service methods: request-scoped loggers, query-param plumbing and
// uniform JSON/error encoding.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "api/internal/errors"
	m "api/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// GetHandler adapts a parameterless service read.
func GetHandler[R any](fn func(logger *zap.Logger) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)
		response, err := fn(logger)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// GetOneHandler adapts a service read addressing a named resource (the
// chi URL parameter).
func GetOneHandler[R any](
	urlParam string,
	fn func(logger *zap.Logger, id string) (R, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)
		response, err := fn(logger, chi.URLParam(r, urlParam))
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// GetWithQueryHandler adapts a service read taking validated query params.
// Must be mounted behind m.ValidateQuery for the same Q.
func GetWithQueryHandler[Q any, R any](fn func(logger *zap.Logger, queryParams Q) (R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)
		queryParams := m.GetQueryParams[Q](r.Context())
		response, err := fn(logger, queryParams)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// GetOneWithQueryHandler adapts a service read addressing a named resource
// (the chi URL parameter) with validated query params.
func GetOneWithQueryHandler[Q any, R any](
	urlParam string,
	fn func(logger *zap.Logger, id string, queryParams Q) (R, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := requestLogger(r)
		queryParams := m.GetQueryParams[Q](r.Context())
		response, err := fn(logger, chi.URLParam(r, urlParam), queryParams)
		if err != nil {
			writeError(w, logger, err)
			return
		}
		writeJSON(w, http.StatusOK, response)
	}
}

func requestLogger(r *http.Request) *zap.Logger {
	return zap.L().With(zap.String("request_id", middleware.GetReqID(r.Context())))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, apiErr)
		return
	}

	logger.Error("Unhandled service error", zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, apierrors.NewAPIError(
		http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
	))
}
