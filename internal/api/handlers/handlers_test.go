package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/dvloznov/statement-analyzer/internal/analyze"
	"github.com/dvloznov/statement-analyzer/internal/categorize"
	"github.com/dvloznov/statement-analyzer/internal/excel"
	"github.com/dvloznov/statement-analyzer/internal/pdf"
)

func newTestHandler() *StatementsHandler {
	rules := categorize.NewRules()
	batcher := categorize.NewBatcher(nil, zerolog.Nop())
	return NewStatementsHandler(
		excel.NewProcessor(rules, batcher, zerolog.Nop()),
		pdf.NewProcessor(pdf.TextExtractor{}, pdf.NewAIExtractor(nil), rules, batcher, zerolog.Nop()),
		analyze.NewAdvisor(nil, zerolog.Nop()),
		false,
		zerolog.Nop(),
	)
}

func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func statementWorkbook(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Emirates NBD"},
		{"Date", "Description", "Type", "Debit", "Credit"},
		{"01/02/2024", "Carrefour Mall", "POS", 50, ""},
		{"02/02/2024", "Salary", "CR", "", 5000},
	}
	for i, row := range rows {
		for j, cell := range row {
			axis, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", axis, cell); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("status field = %v", resp["status"])
	}
	if resp["ai_integration"] != false {
		t.Errorf("ai_integration = %v, want false", resp["ai_integration"])
	}
}

func TestUploadSpreadsheet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Upload(rec, multipartUpload(t, "statement.xlsx", statementWorkbook(t)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		Data      []map[string]interface{} `json:"data"`
		FullData  []map[string]interface{} `json:"full_data"`
		TotalRows int                      `json:"total_rows"`
		BankInfo  map[string]interface{}   `json:"bank_info"`
		Mode      string                   `json:"processing_mode"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.TotalRows != 2 || len(resp.FullData) != 2 {
		t.Errorf("total_rows = %d, full_data = %d", resp.TotalRows, len(resp.FullData))
	}
	if resp.BankInfo["bank_name"] != "Emirates NBD" {
		t.Errorf("bank_name = %v", resp.BankInfo["bank_name"])
	}
	if resp.BankInfo["currency"] != "AED" {
		t.Errorf("currency = %v", resp.BankInfo["currency"])
	}
	if !strings.Contains(resp.Mode, "Excel") {
		t.Errorf("processing_mode = %q", resp.Mode)
	}

	amount, ok := resp.FullData[0]["Amount"].(float64)
	if !ok || amount != -50 {
		t.Errorf("first amount = %v, want -50 as JSON number", resp.FullData[0]["Amount"])
	}
}

func TestUploadNoFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("plain body"))
	rec := httptest.NewRecorder()

	newTestHandler().Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadUnsupportedExtension(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Upload(rec, multipartUpload(t, "statement.csv", []byte("a,b,c")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUploadCorruptSpreadsheet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().Upload(rec, multipartUpload(t, "statement.xlsx", []byte("not a workbook")))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAnalyze(t *testing.T) {
	body := `{
		"data": [
			{"Date": "2024-01-05", "Amount": 10000, "Description": "Salary", "Category": "Other Expenses"},
			{"Date": "2024-01-10", "Amount": -500, "Description": "Carrefour", "Category": "Food & Dining"}
		],
		"bank_info": {"bank_name": "Emirates NBD", "currency": "AED", "country": "UAE"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestHandler().Analyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp struct {
		AIAnalysis struct {
			IncomeVsExpenses struct {
				TotalIncome   float64 `json:"total_income"`
				TotalExpenses float64 `json:"total_expenses"`
				SavingsRate   float64 `json:"savings_rate"`
			} `json:"income_vs_expenses"`
			Summary string `json:"summary"`
		} `json:"ai_analysis"`
		DataOverview struct {
			TotalRecords int `json:"total_records"`
		} `json:"data_overview"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.AIAnalysis.IncomeVsExpenses.TotalIncome != 10000 {
		t.Errorf("income = %f", resp.AIAnalysis.IncomeVsExpenses.TotalIncome)
	}
	if resp.AIAnalysis.IncomeVsExpenses.SavingsRate != 95 {
		t.Errorf("savings rate = %f, want 95", resp.AIAnalysis.IncomeVsExpenses.SavingsRate)
	}
	if resp.AIAnalysis.Summary == "" {
		t.Error("expected a narrative summary")
	}
	if resp.DataOverview.TotalRecords != 2 {
		t.Errorf("total records = %d, want 2", resp.DataOverview.TotalRecords)
	}
}

func TestAnalyzeEmptyData(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"data": []}`))
	rec := httptest.NewRecorder()

	newTestHandler().Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeBadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	newTestHandler().Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
