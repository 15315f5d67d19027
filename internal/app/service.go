package app

import (
	"context"
	"errors"
)

// ErrValidation wraps user-input rejections. Validation runs before any data
// access; a request that fails it never touches the store.
var ErrValidation = errors.New("validation error")

// ApplicationService is the single interface all adapters (CLI, Web) call.
// It decouples presentation from business logic: results carry the exact
// formatted strings the report contract requires, and adapters only lay
// them out.
type ApplicationService interface {
	// ListCompanies returns the fixed company/site selector options.
	ListCompanies() []CompanyOption

	// GetSaleHeader validates the input, resolves the sale header and
	// returns it with the document, status and dates already formatted.
	// Returns core.ErrSaleNotFound (wrapped) when no sale matches.
	GetSaleHeader(ctx context.Context, companyID int, siteCode string, saleNumber int) (*SaleHeaderResult, error)

	// GetPayoffStatement validates the input and returns the payoff table
	// and totals with all monetary values formatted as BRL. An empty
	// statement is a normal result, flagged via Empty.
	GetPayoffStatement(ctx context.Context, companyID int, siteCode string, saleNumber int) (*PayoffStatementResult, error)
}
