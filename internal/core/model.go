package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleKey identifies one sale in the UAU store: company, site (obra) and
// sale number. Every query in this package is scoped by the full key.
type SaleKey struct {
	CompanyID  int
	SiteCode   string
	SaleNumber int
}

// Company is one of the fixed (company, site) pairs the tool may query.
type Company struct {
	Label       string `json:"label"`
	CompanyID   int    `json:"company_id"`
	SiteCode    string `json:"site_code"`
	CompanyCode int    `json:"company_code"`
}

// companies is the closed selector set. The tool is scoped to these two
// pairs; anything else is rejected before touching the database.
var companies = []Company{
	{Label: "ML - 999 - 70100 - 604", CompanyID: 999, SiteCode: "70100", CompanyCode: 604},
	{Label: "VALLE - 6 - 70400 - 605", CompanyID: 6, SiteCode: "70400", CompanyCode: 605},
}

// Companies returns the fixed set of company/site pairs available to queries.
func Companies() []Company {
	out := make([]Company, len(companies))
	copy(out, companies)
	return out
}

// FindCompany returns the Company matching the given pair, or false when the
// pair is not in the allowed set.
func FindCompany(companyID int, siteCode string) (Company, bool) {
	for _, c := range companies {
		if c.CompanyID == companyID && c.SiteCode == siteCode {
			return c, true
		}
	}
	return Company{}, false
}

// Sale is the header snapshot for one sale, read-only.
type Sale struct {
	Key               SaleKey
	CustomerName      string
	CustomerDocument  string // raw digits; see FormatDocument
	Status            int
	ContractStartDate *time.Time
	CompanyName       string
	SiteName          string
	UnitIdentifier    string // "N/A" when no unit assignment matched
}

// UnitUnresolved is the sentinel for a sale with no matching unit assignment.
const UnitUnresolved = "N/A"

var statusLabels = map[int]string{
	0: "0 - Normal",
	1: "1 - Cancelada",
	2: "2 - Alterada",
	3: "3 - Quitado",
	4: "4 - Em acerto",
	5: "5 - Aluguel quitado adiantado",
}

// StatusLabel maps a sale status code to its description. Unrecognized codes
// get a generic label rather than an error.
func StatusLabel(status int) string {
	if s, ok := statusLabels[status]; ok {
		return s
	}
	return "Status desconhecido"
}

// Installment type codes as stored in Recebidas.Tipo_Rec.
const (
	TypeInsurance         = "0"
	TypeLegalCosts        = "1"
	TypeFinalSettlement   = "2"
	TypeResidualGrouped   = "A"
	TypeBalloon           = "B"
	TypeKey               = "C"
	TypeEntry             = "E"
	TypeEntryRenegotiated = "ER"
	TypeIntermediation    = "I"
	TypeInterim           = "IN"
	TypeInstallment       = "P"
	TypeResidual          = "R"
	TypeBrokerage         = "S"
)

var typeLabels = map[string]string{
	TypeInsurance:         "Seguro",
	TypeLegalCosts:        "Custas",
	TypeFinalSettlement:   "Acerto final",
	TypeResidualGrouped:   "Resíduo Agrup.",
	TypeBalloon:           "Balão",
	TypeKey:               "Chave",
	TypeEntry:             "Entrada",
	TypeEntryRenegotiated: "Entrada Renegoc",
	TypeIntermediation:    "Intermediação",
	TypeInterim:           "Intermediárias",
	TypeInstallment:       "Parcela",
	TypeResidual:          "Resíduo",
	TypeBrokerage:         "C. CORRETAGEM",
}

// TypeLabel translates an installment type code. Unknown codes pass through
// unchanged so a new code in the store never breaks the report.
func TypeLabel(code string) string {
	if l, ok := typeLabels[code]; ok {
		return l
	}
	return code
}

// payoffTypes are the installment types that count toward the payoff value.
// Everything else in the raw feed is excluded from the totals.
var payoffTypes = map[string]bool{
	TypeEntry:       true,
	TypeInstallment: true,
	TypeBrokerage:   true,
}

// CountsTowardPayoff reports whether an installment type is in the accepted
// set {E, P, S}.
func CountsTowardPayoff(code string) bool {
	return payoffTypes[code]
}

// Installment is one received payment record (a "Recebida"), mapped field by
// field from the store columns. Each monetary component exists in a raw and a
// confirmed variant; all of them are signed currency values.
type Installment struct {
	Number       string // NumParc_Rec — may carry letter suffixes
	Type         string // Tipo_Rec
	ReceivedDate time.Time

	// AniversarioContr_VRec comes from the VendasRecebidas linkage row, not
	// from the installment itself.
	AnniversaryFlag int

	Principal               decimal.Decimal // Valor_Rec
	PrincipalConf           decimal.Decimal
	InstallmentInterest     decimal.Decimal // VlJurosParc_Rec
	InstallmentInterestConf decimal.Decimal
	Correction              decimal.Decimal // VlCorrecao_Rec
	CorrectionConf          decimal.Decimal
	Surcharge               decimal.Decimal // VlAcres_Rec
	SurchargeConf           decimal.Decimal
	SlipFee                 decimal.Decimal // VlTaxaBol_Rec
	SlipFeeConf             decimal.Decimal
	Penalty                 decimal.Decimal // VlMulta_Rec
	PenaltyConf             decimal.Decimal
	LateInterest            decimal.Decimal // VlJuros_Rec
	LateInterestConf        decimal.Decimal
	LateCorrection          decimal.Decimal // VlCorrecaoAtr_Rec
	LateCorrectionConf      decimal.Decimal

	Discount                decimal.Decimal // VlDesconto_Rec
	DiscountConf            decimal.Decimal
	CostDiscount            decimal.Decimal // ValDescontoCusta_Rec
	CostDiscountConf        decimal.Decimal
	TaxDiscount             decimal.Decimal // ValDescontoImposto_Rec
	TaxDiscountConf         decimal.Decimal
	ConditionalDiscount     decimal.Decimal // ValDescontoCondicional_rec
	ConditionalDiscountConf decimal.Decimal

	EmbeddedInterest       decimal.Decimal // VlJurosParcEmb_Rec
	EmbeddedInterestConf   decimal.Decimal
	EmbeddedCorrection     decimal.Decimal // VlCorrecaoEmb_Rec
	EmbeddedCorrectionConf decimal.Decimal
}

// PayoffLine is one accepted installment in the payoff statement.
type PayoffLine struct {
	Type         string
	TypeLabel    string
	Number       string
	ReceivedDate time.Time
	Paid         decimal.Decimal
	Confirmed    decimal.Decimal
	Usable       decimal.Decimal // min(Paid, Confirmed)
	Delta        decimal.Decimal // Paid - Confirmed
}

// PayoffTotals accumulates the three headline figures over accepted rows.
type PayoffTotals struct {
	Paid      decimal.Decimal
	Confirmed decimal.Decimal
	Usable    decimal.Decimal
}

// PayoffStatement is the full derived report for one sale. A sale with no
// installment rows yields an empty statement, not an error.
type PayoffStatement struct {
	Key    SaleKey
	Lines  []PayoffLine
	Totals PayoffTotals

	// RowCount is the number of raw rows fetched before type filtering. A
	// sale whose rows are all of excluded types still renders a (zeroed)
	// table rather than the not-found warning.
	RowCount int
}

// Empty reports whether no installment rows matched the sale key at all.
func (s *PayoffStatement) Empty() bool {
	return s.RowCount == 0
}
