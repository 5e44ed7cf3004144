package api

import (
	"net/http"
)

// handleHealth responds with 200 OK to indicate the service is running
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"coins_list":  "unknown",
		"crypto_data": "unknown",
	}

	if s.coinsListService.Healthy() {
		services["coins_list"] = "up"
	}

	if s.cryptoDataService.Healthy() {
		services["crypto_data"] = "up"
	}

	sendJSONResponse(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"services": services,
	})
}
