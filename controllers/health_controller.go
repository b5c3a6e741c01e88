package controllers

import "net/http"

// HealthCheck reports liveness.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// Root returns the service banner and endpoint map the web client probes on
// startup.
func Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Notes API is running",
		"version": "2.0.0",
		"health":  "/health",
		"endpoints": map[string][]string{
			"auth":   {"/auth/signup", "/auth/login", "/auth/guest"},
			"notes":  {"/notes/", "/notes/{id}", "/notes/{id}/share"},
			"shared": {"/shared/{token}"},
		},
	})
}
