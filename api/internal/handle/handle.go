package handle

import (
	"encoding/json"
	"net/http"

	"car-damage-analyzer/api/internal/vision"
)

type Handle struct {
	engs *vision.Engines
}

func New(engs *vision.Engines) *Handle {
	return &Handle{
		engs: engs,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
