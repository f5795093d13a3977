package handler

import "net/http"

// Health reports service liveness.
type Health struct{}

// NewHealth creates a new Health handler instance.
func NewHealth() *Health {
	return &Health{}
}

// Check returns a static liveness payload.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"health": "ok"})
}
