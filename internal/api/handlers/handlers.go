// Package handlers implements the HTTP endpoints: statement upload,
// analysis and the health probe.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dvloznov/statement-analyzer/internal/analyze"
	"github.com/dvloznov/statement-analyzer/internal/api/middleware"
	"github.com/dvloznov/statement-analyzer/internal/excel"
	"github.com/dvloznov/statement-analyzer/internal/pdf"
	"github.com/dvloznov/statement-analyzer/internal/statement"
)

// previewLimit caps the transaction preview in upload responses; the full
// set rides along separately.
const previewLimit = 20

// maxUploadBytes bounds statement uploads.
const maxUploadBytes = 32 << 20

// StatementsHandler serves the statement endpoints.
type StatementsHandler struct {
	excel     *excel.Processor
	pdf       *pdf.Processor
	advisor   *analyze.Advisor
	aiEnabled bool
	log       zerolog.Logger
}

// NewStatementsHandler creates the handler over the two processing
// pipelines and the advisor.
func NewStatementsHandler(ex *excel.Processor, pd *pdf.Processor, advisor *analyze.Advisor, aiEnabled bool, log zerolog.Logger) *StatementsHandler {
	return &StatementsHandler{
		excel:     ex,
		pdf:       pd,
		advisor:   advisor,
		aiEnabled: aiEnabled,
		log:       log,
	}
}

// Health handles GET /api/health
func (h *StatementsHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":               "healthy",
		"message":              "Universal Finance Analytics API",
		"excel_processing":     true,
		"pdf_processing":       true,
		"ai_integration":       h.aiEnabled,
		"supported_currencies": []string{"AED", "USD", "EUR", "GBP", "INR"},
		"supported_banks":      "Global banks supported",
	})
}

// Upload handles POST /api/upload
func (h *StatementsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		middleware.WriteError(w, http.StatusBadRequest, "No file selected")
		return
	}

	var result *statement.Result
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".xlsx", ".xls":
		result, err = h.excel.Process(ctx, file)
	case ".pdf":
		var data []byte
		data, err = io.ReadAll(file)
		if err == nil {
			result, err = h.pdf.Process(ctx, data)
		}
	default:
		middleware.WriteError(w, http.StatusBadRequest, "Please upload an Excel file (.xlsx, .xls) or PDF (.pdf)")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to process statement")
		middleware.WriteError(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
		return
	}

	preview := result.Transactions
	if len(preview) > previewLimit {
		preview = preview[:previewLimit]
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":         "File processed successfully!",
		"data":            preview,
		"columns":         []string{"Date", "Amount", "Description", "Category"},
		"total_rows":      result.TotalRows,
		"full_data":       result.Transactions,
		"bank_info":       result.BankInfo,
		"processing_mode": result.ProcessingMode,
	})
}

// analyzeRequest is the POST /api/analyze body: the transactions returned
// by upload plus their bank metadata.
type analyzeRequest struct {
	Data     []statement.Transaction `json:"data"`
	BankInfo statement.BankInfo      `json:"bank_info"`
}

// Analyze handles POST /api/analyze
func (h *StatementsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Data) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "No data provided for analysis")
		return
	}

	info := req.BankInfo
	if info.Currency == "" {
		info.Currency = "USD"
	}
	if info.BankName == "" {
		info.BankName = "Unknown Bank"
	}
	if info.Country == "" {
		info.Country = "Unknown"
	}

	summary := analyze.Summarize(req.Data)
	narrative := h.advisor.Advise(ctx, summary, info, req.Data)
	report := analyze.BuildReport(summary, narrative, info, req.Data)

	h.log.Info().
		Int("transactions", summary.TransactionCount).
		Float64("savings_rate", summary.SavingsRate).
		Msg("Analysis complete")

	middleware.WriteJSON(w, http.StatusOK, report)
}
