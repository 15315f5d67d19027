package app

import (
	"context"
	"fmt"

	"quitacao-report/internal/core"
)

// emptyStatementMessage matches the original report wording for a sale with
// no received installments under the selected site.
const emptyStatementMessage = "Nenhuma parcela paga encontrada para este lote, ou número da venda de outra Obra"

type appService struct {
	sales  core.SaleService
	payoff core.PayoffService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(sales core.SaleService, payoff core.PayoffService) ApplicationService {
	return &appService{sales: sales, payoff: payoff}
}

func (s *appService) ListCompanies() []CompanyOption {
	cs := core.Companies()
	out := make([]CompanyOption, len(cs))
	for i, c := range cs {
		out[i] = CompanyOption{Label: c.Label, CompanyID: c.CompanyID, SiteCode: c.SiteCode}
	}
	return out
}

// validateKey enforces the input contract before any I/O: a positive sale
// number and a company/site pair from the fixed set.
func validateKey(companyID int, siteCode string, saleNumber int) (core.SaleKey, error) {
	if saleNumber <= 0 {
		return core.SaleKey{}, fmt.Errorf("%w: número da venda deve ser um número positivo", ErrValidation)
	}
	if _, ok := core.FindCompany(companyID, siteCode); !ok {
		return core.SaleKey{}, fmt.Errorf("%w: empresa selecionada inválida", ErrValidation)
	}
	return core.SaleKey{CompanyID: companyID, SiteCode: siteCode, SaleNumber: saleNumber}, nil
}

func (s *appService) GetSaleHeader(ctx context.Context, companyID int, siteCode string, saleNumber int) (*SaleHeaderResult, error) {
	key, err := validateKey(companyID, siteCode, saleNumber)
	if err != nil {
		return nil, err
	}

	sale, err := s.sales.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	return &SaleHeaderResult{
		SaleNumber:     key.SaleNumber,
		CustomerName:   sale.CustomerName,
		Document:       core.FormatDocument(sale.CustomerDocument),
		StatusLabel:    core.StatusLabel(sale.Status),
		CompanyName:    sale.CompanyName,
		SiteName:       sale.SiteName,
		ContractDate:   core.FormatDate(sale.ContractStartDate),
		UnitIdentifier: sale.UnitIdentifier,
	}, nil
}

func (s *appService) GetPayoffStatement(ctx context.Context, companyID int, siteCode string, saleNumber int) (*PayoffStatementResult, error) {
	key, err := validateKey(companyID, siteCode, saleNumber)
	if err != nil {
		return nil, err
	}

	st, err := s.payoff.Statement(ctx, key)
	if err != nil {
		return nil, err
	}

	result := &PayoffStatementResult{
		SaleNumber:     key.SaleNumber,
		TotalPaid:      core.FormatBRL(st.Totals.Paid),
		TotalConfirmed: core.FormatBRL(st.Totals.Confirmed),
		TotalUsable:    core.FormatBRL(st.Totals.Usable),
	}

	if st.Empty() {
		result.Empty = true
		result.Message = emptyStatementMessage
		return result, nil
	}

	result.Lines = make([]PayoffLineView, len(st.Lines))
	for i, l := range st.Lines {
		result.Lines[i] = PayoffLineView{
			TypeLabel:    l.TypeLabel,
			Number:       l.Number,
			ReceivedDate: core.FormatReceivedDate(l.ReceivedDate),
			Paid:         core.FormatBRL(l.Paid),
			Confirmed:    core.FormatBRL(l.Confirmed),
			Usable:       core.FormatBRL(l.Usable),
			Delta:        core.FormatBRL(l.Delta),
		}
	}
	return result, nil
}
