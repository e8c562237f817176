// Package respond writes JSON responses, including the {"detail": ...} error
// body returned by every endpoint.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the JSON error shape: {"detail": "<message>"}.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; logging is all that is left.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Detail writes {"detail": msg} where msg is err's message with credentials
// masked. The message is otherwise passed through so clients see the cause.
func Detail(w http.ResponseWriter, code int, err error) {
	msg := SanitizeError(err)
	if msg == "" {
		msg = http.StatusText(code)
	}
	JSON(w, code, ErrorBody{Detail: msg})
}
