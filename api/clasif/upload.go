package clasif

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"ClasificadorBancario/internal/config"
	"ClasificadorBancario/internal/keywords"
	"ClasificadorBancario/internal/pipeline"
	"ClasificadorBancario/internal/sheets"
)

// readStatementUpload pulls the statement file and the per-run keyword
// overrides out of a multipart form. Form overrides apply to this run only;
// the process-wide store is untouched.
func readStatementUpload(r *http.Request, kw *keywords.Store) ([]byte, string, keywords.Config, error) {
	if err := r.ParseMultipartForm(config.UploadMaxBytes); err != nil {
		return nil, "", keywords.Config{}, fmt.Errorf("failed to parse multipart form: %w", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", keywords.Config{}, fmt.Errorf("no file uploaded: %w", err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", keywords.Config{}, fmt.Errorf("failed to read file: %w", err)
	}
	cfg := kw.Snapshot()
	if v := r.FormValue("kw_comisiones"); v != "" {
		cfg.Fee = keywords.ParseList(v)
	}
	if v := r.FormValue("kw_impuestos"); v != "" {
		cfg.Tax = keywords.ParseList(v)
	}
	return data, header.Filename, cfg, nil
}

// UploadStatement classifies an uploaded statement and responds with the
// finished workbook as a download.
func UploadStatement(kw *keywords.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		data, filename, cfg, err := readStatementUpload(r, kw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := pipeline.Run(data, filename, cfg)
		if err != nil {
			http.Error(w, "Could not read statement: "+err.Error(), http.StatusBadRequest)
			return
		}
		out, err := res.Excel()
		if err != nil {
			http.Error(w, "Failed to build report: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", config.ReportMIME)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", config.ReportFilename))
		w.Header().Set("Content-Length", fmt.Sprint(len(out)))
		w.Write(out)
	}
}

type sheetPreview struct {
	Name    string          `json:"name"`
	Headers []string        `json:"headers"`
	Count   int             `json:"count"`
	Rows    [][]interface{} `json:"rows"`
}

// PreviewStatement runs the same classification but responds with a JSON
// preview of the five sheets instead of the workbook.
func PreviewStatement(kw *keywords.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		data, filename, cfg, err := readStatementUpload(r, kw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := pipeline.Run(data, filename, cfg)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": err.Error()})
			return
		}
		previews := make([]sheetPreview, 0, len(res.Sheets))
		for _, sh := range res.Sheets {
			previews = append(previews, previewSheet(sh))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"run_id":  uuid.New().String(),
			"rows":    res.RowCount,
			"sheets":  previews,
		})
	}
}

func previewSheet(sh sheets.Sheet) sheetPreview {
	p := sheetPreview{Name: sh.Name, Headers: sh.Headers, Count: len(sh.Rows)}
	rows := sh.Rows
	if len(rows) > config.PreviewRows {
		rows = rows[:config.PreviewRows]
	}
	for _, row := range rows {
		var date interface{}
		if row.HasDate {
			date = row.Date.Format("02/01/2006")
		}
		amount, _ := row.Amount.Float64()
		if sh.HasParties {
			p.Rows = append(p.Rows, []interface{}{date, row.Reference, row.Name, row.TaxID, amount})
		} else {
			p.Rows = append(p.Rows, []interface{}{date, row.Reference, row.Detail, amount})
		}
	}
	return p
}
