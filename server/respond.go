package server

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writeError emits the error envelope clients key on: success false, a
// short error title, and the underlying message.
func writeError(w http.ResponseWriter, code int, title string, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, code, map[string]any{
		"success": false,
		"error":   title,
		"message": msg,
	})
}
