package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// Apply CORS middleware
	r.Use(s.corsMiddleware)

	r.HandleFunc("/", s.Health).Methods(http.MethodGet)

	r.HandleFunc("/room/create", s.CreateRoom).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/room/join", s.JoinRoom).Methods(http.MethodPost, http.MethodOptions)

	r.HandleFunc("/game/action", s.HandleAction).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/game/{roomId}", s.GetGame).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/matches", s.ListMatches).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/validate-word", s.ValidateWord).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/ws/{roomId}", s.HandleWebSocket)

	return r
}

// CORS middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Credentials", "false")

		// If it's a websocket upgrade, skip further CORS checks
		if strings.ToLower(r.Header.Get("Upgrade")) == "websocket" {
			next.ServeHTTP(w, r)
			return
		}

		// Handle preflight OPTIONS requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
