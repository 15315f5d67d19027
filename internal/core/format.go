package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatBRL renders a monetary value in the Brazilian convention the report
// contract requires: "R$" prefix, '.' thousands separator, ',' decimal
// separator, two places. Negative values keep the sign between the prefix
// and the digits, e.g. "R$-1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString("R$")
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// FormatBRLString parses a raw numeric string and formats it as BRL. A value
// that does not parse passes through unchanged — a single malformed field
// must not abort the row or the report.
func FormatBRLString(raw string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return FormatBRL(d)
}

// FormatDocument formats a raw CPF (11 digits) or CNPJ (14 digits) code.
// Any other length passes through unchanged; that is the rendering contract,
// not a validation gap.
func FormatDocument(doc string) string {
	switch len(doc) {
	case 11:
		return doc[:3] + "." + doc[3:6] + "." + doc[6:9] + "-" + doc[9:]
	case 14:
		return doc[:2] + "." + doc[2:5] + "." + doc[5:8] + "/" + doc[8:12] + "-" + doc[12:]
	default:
		return doc
	}
}

// FormatDate renders a header date as dd/mm/yyyy. Nil (a NULL contract date)
// renders empty.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatReceivedDate renders an installment received date in the ISO form
// the statement table uses.
func FormatReceivedDate(t time.Time) string {
	return t.Format("2006-01-02")
}
