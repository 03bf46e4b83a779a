package httpserver

import (
	"encoding/json"
	"net/http"
)

// Healthcheck returns a handler reporting process liveness. Dependency
// checks (mail relay, Redis) are deliberately not probed here; the endpoint
// answers "is the process serving requests".
func Healthcheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
