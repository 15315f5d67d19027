package app

// CompanyOption is one entry of the fixed company/site selector.
type CompanyOption struct {
	Label     string `json:"label"`
	CompanyID int    `json:"company_id"`
	SiteCode  string `json:"site_code"`
}

// SaleHeaderResult is the formatted sale header block.
type SaleHeaderResult struct {
	SaleNumber     int    `json:"sale_number"`
	CustomerName   string `json:"customer_name"`
	Document       string `json:"document"` // CPF/CNPJ, formatted
	StatusLabel    string `json:"status"`
	CompanyName    string `json:"company_name"`
	SiteName       string `json:"site_name"`
	ContractDate   string `json:"contract_date"` // dd/mm/yyyy, empty when NULL
	UnitIdentifier string `json:"unit_identifier"`
}

// PayoffLineView is one row of the rendered payoff table. All monetary
// fields are BRL-formatted strings; downstream consumers match on them
// exactly.
type PayoffLineView struct {
	TypeLabel    string `json:"type"`
	Number       string `json:"number"`
	ReceivedDate string `json:"received_date"` // yyyy-mm-dd
	Paid         string `json:"paid"`
	Confirmed    string `json:"confirmed"`
	Usable       string `json:"usable"`
	Delta        string `json:"delta"`
}

// PayoffStatementResult is the rendered payoff statement. When Empty is
// true the totals are the formatted zero value and Message explains why
// nothing was found.
type PayoffStatementResult struct {
	SaleNumber     int              `json:"sale_number"`
	Lines          []PayoffLineView `json:"lines"`
	TotalPaid      string           `json:"total_paid"`
	TotalConfirmed string           `json:"total_confirmed"`
	TotalUsable    string           `json:"total_usable"`
	Empty          bool             `json:"empty"`
	Message        string           `json:"message,omitempty"`
}
