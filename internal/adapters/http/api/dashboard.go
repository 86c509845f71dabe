package api

import (
	"bytes"
	"io/fs"
	"net/http"
	"time"
)

// dashboardHandler serves the embedded dashboard page.
type dashboardHandler struct{}

func newDashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

// HandleDashboard handles GET /dashboard requests with the embedded
// auto-refreshing HTML page.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	// Equivalent of http.ServeFileFS, which needs Go 1.22+.
	data, err := fs.ReadFile(dashboardFS, "dashboard.html")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, "dashboard.html", time.Time{}, bytes.NewReader(data))
}
