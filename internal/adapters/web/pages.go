package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"quitacao-report/internal/app"
	"quitacao-report/internal/core"
	webui "quitacao-report/web"
)

var indexTmpl = template.Must(template.ParseFS(webui.Templates, "templates/index.html"))

// companyOptionView is one <option> of the page's company selector. Value
// carries the pair as "companyID|siteCode".
type companyOptionView struct {
	Value    string
	Label    string
	Selected bool
}

// indexData feeds the single report page template.
type indexData struct {
	Companies  []companyOptionView
	SaleNumber string // echoed raw input
	Queried    bool

	ValidationError string

	Header        *app.SaleHeaderResult
	HeaderWarning string
	HeaderError   string

	Statement      *app.PayoffStatementResult
	StatementError string
}

// indexPage handles GET /. Without a "venda" parameter it renders the bare
// form; with one it runs both lookups. The two stages fail independently: a
// header error never suppresses the payoff table and vice versa.
func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selected := q.Get("company")
	saleInput := strings.TrimSpace(q.Get("venda"))

	d := indexData{SaleNumber: saleInput}
	for i, c := range h.svc.ListCompanies() {
		value := strconv.Itoa(c.CompanyID) + "|" + c.SiteCode
		d.Companies = append(d.Companies, companyOptionView{
			Value:    value,
			Label:    c.Label,
			Selected: value == selected || (selected == "" && i == 0),
		})
	}

	if saleInput != "" {
		d.Queried = true
		h.runReport(r, &d, selected, saleInput)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, d); err != nil {
		log.Printf("render index: %v", err)
	}
}

func (h *Handler) runReport(r *http.Request, d *indexData, selected, saleInput string) {
	saleNumber, err := strconv.Atoi(saleInput)
	if err != nil || saleNumber <= 0 {
		d.ValidationError = "Número da Venda deve ser um número positivo."
		return
	}

	idPart, sitePart, ok := strings.Cut(selected, "|")
	companyID, convErr := strconv.Atoi(idPart)
	if !ok || convErr != nil {
		d.ValidationError = "Empresa selecionada inválida."
		return
	}
	if _, found := core.FindCompany(companyID, sitePart); !found {
		d.ValidationError = "Empresa selecionada inválida."
		return
	}

	header, err := h.svc.GetSaleHeader(r.Context(), companyID, sitePart, saleNumber)
	switch {
	case err == nil:
		d.Header = header
	case errors.Is(err, core.ErrSaleNotFound):
		d.HeaderWarning = "Nenhum detalhe de venda encontrado."
	default:
		d.HeaderError = "Erro no banco de dados: " + err.Error()
	}

	st, err := h.svc.GetPayoffStatement(r.Context(), companyID, sitePart, saleNumber)
	if err != nil {
		d.StatementError = "Erro no banco de dados: " + err.Error()
		return
	}
	d.Statement = st
}
