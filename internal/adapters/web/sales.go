package web

import (
	"fmt"
	"net/http"
	"strconv"

	"quitacao-report/internal/app"

	"github.com/go-chi/chi/v5"
)

// saleParams extracts and validates the sale key from the request: the sale
// number path segment plus the company/site query pair. Rejection happens
// here, before any service call, so bad input never reaches the store.
func saleParams(r *http.Request) (companyID int, siteCode string, saleNumber int, err error) {
	num := chi.URLParam(r, "number")
	saleNumber, convErr := strconv.Atoi(num)
	if convErr != nil || saleNumber <= 0 {
		return 0, "", 0, fmt.Errorf("%w: número da venda deve ser um número positivo", app.ErrValidation)
	}

	companyID, convErr = strconv.Atoi(r.URL.Query().Get("company"))
	if convErr != nil {
		return 0, "", 0, fmt.Errorf("%w: empresa selecionada inválida", app.ErrValidation)
	}
	siteCode = r.URL.Query().Get("site")

	return companyID, siteCode, saleNumber, nil
}

// apiListCompanies handles GET /api/companies.
func (h *Handler) apiListCompanies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"companies": h.svc.ListCompanies()})
}

// apiSaleHeader handles GET /api/sales/{number}/header?company=&site=.
func (h *Handler) apiSaleHeader(w http.ResponseWriter, r *http.Request) {
	companyID, siteCode, saleNumber, err := saleParams(r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	header, err := h.svc.GetSaleHeader(r.Context(), companyID, siteCode, saleNumber)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, header)
}

// apiPayoffStatement handles GET /api/sales/{number}/payoff?company=&site=.
// An empty statement is a 200 with empty=true, not an error.
func (h *Handler) apiPayoffStatement(w http.ResponseWriter, r *http.Request) {
	companyID, siteCode, saleNumber, err := saleParams(r)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	st, err := h.svc.GetPayoffStatement(r.Context(), companyID, siteCode, saleNumber)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, st)
}
