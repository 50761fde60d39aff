package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отвечает на HEAD /healthcheck. Во время graceful shutdown
// отдаёт 503, чтобы балансировщик перестал направлять новые запросы.
type Handler struct {
	isShuttingDown *atomic.Bool
}

func New(isShuttingDown *atomic.Bool) *Handler {
	return &Handler{isShuttingDown: isShuttingDown}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
