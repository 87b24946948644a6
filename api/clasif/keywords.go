package clasif

import (
	"encoding/json"
	"net/http"
	"strings"

	"ClasificadorBancario/internal/keywords"
)

// KeywordsHandler serves the process-wide keyword sets: GET returns the
// current configuration, POST replaces it. Runs already in flight keep the
// snapshot they started with.
func KeywordsHandler(kw *keywords.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg := kw.Snapshot()
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":       true,
				"kw_comisiones": strings.Join(cfg.Fee, ","),
				"kw_impuestos":  strings.Join(cfg.Tax, ","),
			})
		case http.MethodPost:
			var req struct {
				Comisiones string `json:"kw_comisiones"`
				Impuestos  string `json:"kw_impuestos"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			cfg := kw.Snapshot()
			if req.Comisiones != "" {
				cfg.Fee = keywords.ParseList(req.Comisiones)
			}
			if req.Impuestos != "" {
				cfg.Tax = keywords.ParseList(req.Impuestos)
			}
			kw.Update(cfg)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	}
}
