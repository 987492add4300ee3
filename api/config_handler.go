package api

import (
	"net/http"

	"github.com/seenimoa/multibagger/internal/config"
)

// ConfigResponse is the payload returned by GET /api/v1/config.
type ConfigResponse struct {
	Config     *config.Config `json:"config"`
	ConfigFile string         `json:"config_file"` // empty when running on defaults
}

// handleGetConfig returns the running configuration. The config holds no
// secrets, so it is returned whole.
func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: ConfigResponse{
			Config:     s.cfg,
			ConfigFile: s.cfg.File,
		},
	})
}
