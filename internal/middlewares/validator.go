package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	apierrors "api/internal/errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type contextKey string

// QueryParamsKey carries the decoded query parameter struct.
const QueryParamsKey contextKey = "query_params"

var validate *validator.Validate

// InitValidator prepares the shared request validator. Must be called once
// before the router starts serving.
func InitValidator() {
	validate = validator.New()
}

// ValidateQuery decodes the request's query string into T (matching json
// tags), validates it, and stores it in the request context. Unknown
// parameters are ignored; failed validation ends the request with a 400.
// Coercion is directed by T's field types, not by value shape, so a
// digit-only value bound for a string field stays a string.
func ValidateQuery[T any](next http.Handler) http.Handler {
	var zero T
	kinds := queryFieldKinds(reflect.TypeOf(zero))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		values := map[string]interface{}{}
		for key, vals := range r.URL.Query() {
			if len(vals) == 0 {
				continue
			}
			values[key] = coerceQueryValue(vals[0], kinds[key])
		}

		var params T
		encoded, err := json.Marshal(values)
		if err == nil {
			err = json.Unmarshal(encoded, &params)
		}
		if err != nil {
			writeValidationError(w)
			return
		}

		if err := validate.Struct(params); err != nil {
			zap.L().Debug("Query validation failed", zap.Error(err))
			writeValidationError(w)
			return
		}

		ctx := context.WithValue(r.Context(), QueryParamsKey, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func queryFieldKinds(t reflect.Type) map[string]reflect.Kind {
	kinds := make(map[string]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		kinds[name] = field.Type.Kind()
	}
	return kinds
}

// coerceQueryValue parses a raw query value into the shape its target
// field expects. Unparseable values pass through as strings and fail in
// the JSON round-trip, which ends the request with a 400.
func coerceQueryValue(raw string, kind reflect.Kind) interface{} {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}

// GetQueryParams retrieves the struct stored by ValidateQuery.
func GetQueryParams[T any](ctx context.Context) T {
	params, _ := ctx.Value(QueryParamsKey).(T)
	return params
}

func writeValidationError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(apierrors.NewAPIError(http.StatusBadRequest, apierrors.ErrInvalidQueryParams))
}
