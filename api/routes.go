package api

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"ClasificadorBancario/internal/logger"
)

// NewRouter builds the gateway router. Classification endpoints are proxied
// to the clasif service; everything else is health plumbing.
func NewRouter(clasifTarget string) *mux.Router {
	router := mux.NewRouter()

	router.PathPrefix("/clasif/").Handler(createReverseProxy(clasifTarget))

	router.HandleFunc("/api/heartbeat", HeartbeatHandler).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("API Gateway is healthy"))
	}).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logr := logger.GlobalLogger
		msg := "[Gateway] [Error] " + r.URL.Path + " from " + r.RemoteAddr + " (route not found)"
		if logr != nil {
			logr.LogAudit(msg)
		} else {
			log.Println(msg)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("404 - Route not found"))
	})

	return router
}

func HeartbeatHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
