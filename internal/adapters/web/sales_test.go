package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webAdapter "quitacao-report/internal/adapters/web"
	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
)

type stubService struct {
	header    *app.SaleHeaderResult
	headerErr error
	statement *app.PayoffStatementResult
	stmtErr   error
}

func (s *stubService) ListCompanies() []app.CompanyOption {
	return []app.CompanyOption{
		{Label: "ML - 999 - 70100 - 604", CompanyID: 999, SiteCode: "70100"},
		{Label: "VALLE - 6 - 70400 - 605", CompanyID: 6, SiteCode: "70400"},
	}
}

func (s *stubService) GetSaleHeader(ctx context.Context, companyID int, siteCode string, saleNumber int) (*app.SaleHeaderResult, error) {
	if s.headerErr != nil {
		return nil, s.headerErr
	}
	return s.header, nil
}

func (s *stubService) GetPayoffStatement(ctx context.Context, companyID int, siteCode string, saleNumber int) (*app.PayoffStatementResult, error) {
	if s.stmtErr != nil {
		return nil, s.stmtErr
	}
	return s.statement, nil
}

func doRequest(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPISaleHeader_Validation(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{}, "")

	tests := []struct {
		name string
		path string
	}{
		{"non-numeric sale number", "/api/sales/abc/header?company=999&site=70100"},
		{"zero sale number", "/api/sales/0/header?company=999&site=70100"},
		{"negative sale number", "/api/sales/-3/header?company=999&site=70100"},
		{"non-numeric company", "/api/sales/10/header?company=ml&site=70100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: want 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "VALIDATION_ERROR") {
				t.Errorf("body missing code: %s", rec.Body.String())
			}
		})
	}
}

func TestAPISaleHeader_NotFound(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{headerErr: core.ErrSaleNotFound}, "")
	rec := doRequest(t, h, "/api/sales/123/header?company=999&site=70100")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status: want 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "NOT_FOUND") {
		t.Errorf("body missing code: %s", rec.Body.String())
	}
}

func TestAPISaleHeader_OK(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{header: &app.SaleHeaderResult{
		SaleNumber:   123,
		CustomerName: "Maria da Silva",
		Document:     "123.456.789-01",
		StatusLabel:  "0 - Normal",
	}}, "")

	rec := doRequest(t, h, "/api/sales/123/header?company=999&site=70100")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}
	var got app.SaleHeaderResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Document != "123.456.789-01" {
		t.Errorf("document: got %q", got.Document)
	}
}

func TestAPIPayoff_EmptyIs200(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{statement: &app.PayoffStatementResult{
		SaleNumber:     55,
		Empty:          true,
		Message:        "Nenhuma parcela paga encontrada para este lote, ou número da venda de outra Obra",
		TotalPaid:      "R$0,00",
		TotalConfirmed: "R$0,00",
		TotalUsable:    "R$0,00",
	}}, "")

	rec := doRequest(t, h, "/api/sales/55/payoff?company=999&site=70100")
	if rec.Code != http.StatusOK {
		t.Fatalf("empty statement must be 200, got %d", rec.Code)
	}
	var got app.PayoffStatementResult
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if !got.Empty || got.TotalUsable != "R$0,00" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestAPIPayoff_DataAccessError(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{stmtErr: context.DeadlineExceeded}, "")
	rec := doRequest(t, h, "/api/sales/55/payoff?company=999&site=70100")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: want 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "DATA_ACCESS_ERROR") {
		t.Errorf("body missing code: %s", rec.Body.String())
	}
}

func TestAPIListCompanies(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{}, "")
	rec := doRequest(t, h, "/api/companies")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ML - 999 - 70100 - 604") {
		t.Errorf("companies payload missing ML option: %s", rec.Body.String())
	}
}

func TestIndexPage_RendersFormAndReport(t *testing.T) {
	h := webAdapter.NewHandler(&stubService{
		header: &app.SaleHeaderResult{
			SaleNumber:   77,
			CustomerName: "Maria da Silva",
			Document:     "123.456.789-01",
			StatusLabel:  "0 - Normal",
		},
		statement: &app.PayoffStatementResult{
			SaleNumber: 77,
			Lines: []app.PayoffLineView{{
				TypeLabel: "Entrada", Number: "001", ReceivedDate: "2022-01-10",
				Paid: "R$100,00", Confirmed: "R$90,00", Usable: "R$90,00", Delta: "R$10,00",
			}},
			TotalPaid:      "R$100,00",
			TotalConfirmed: "R$90,00",
			TotalUsable:    "R$90,00",
		},
	}, "")

	t.Run("bare form", func(t *testing.T) {
		rec := doRequest(t, h, "/")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: want 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Número da Venda") {
			t.Error("form label missing")
		}
	})

	t.Run("with query", func(t *testing.T) {
		rec := doRequest(t, h, "/?company=999%7C70100&venda=77")
		body := rec.Body.String()
		if !strings.Contains(body, "Maria da Silva") {
			t.Error("header block missing")
		}
		if !strings.Contains(body, "R$90,00") {
			t.Error("payoff totals missing")
		}
	})

	t.Run("invalid sale number", func(t *testing.T) {
		rec := doRequest(t, h, "/?company=999%7C70100&venda=abc")
		if !strings.Contains(rec.Body.String(), "número positivo") {
			t.Error("validation message missing")
		}
	})
}
