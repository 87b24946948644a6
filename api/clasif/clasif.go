package clasif

import (
	"fmt"
	"log"
	"net/http"

	"ClasificadorBancario/internal/keywords"
)

// StartClasifService starts the statement classification HTTP service.
func StartClasifService(port int, kw *keywords.Store) {
	mux := http.NewServeMux()
	mux.HandleFunc("/clasif/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello from Clasif Service"))
	})
	mux.HandleFunc("/clasif/upload", UploadStatement(kw))
	mux.HandleFunc("/clasif/preview", PreviewStatement(kw))
	mux.HandleFunc("/clasif/keywords", KeywordsHandler(kw))
	addr := fmt.Sprintf(":%d", port)
	log.Println("Clasif Service started on", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Clasif Service failed: %v", err)
	}
}
