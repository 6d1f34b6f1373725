// Package respond writes the uniform JSON envelope used by every API
// handler: {"success":true, ...} on the happy path and
// {"success":false,"error":"<message>"} otherwise, with the status code
// taken from the apperr taxonomy.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"go.uber.org/zap"
)

// JSON writes v with the given status. v should already include a
// "success" field (see OK).
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a 200 envelope. Extra fields are merged beside "success".
func OK(w http.ResponseWriter, extra map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Err maps err through apperr and writes the failure envelope. Internal
// errors are logged with their cause; client-class errors (400/404/409/401)
// are expected traffic and logged at debug.
func Err(w http.ResponseWriter, log *zap.Logger, err error) {
	status := apperr.Status(err)
	if log != nil {
		if status >= 500 {
			log.Error("request failed", zap.Error(err))
		} else {
			log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
		}
	}
	JSON(w, status, map[string]any{
		"success": false,
		"error":   apperr.UserMessage(err),
	})
}

// DecodeJSON parses the request body into dst, returning a Validation
// error on malformed JSON. Unknown fields are rejected so typos in client
// payloads surface instead of silently dropping data.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}
