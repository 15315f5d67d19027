package core

import "github.com/shopspring/decimal"

// PaidAmount is the Val_Parc_Paga figure for one installment: the sum of all
// positive components minus all discounts, over both the raw and the
// confirmed column sets. Plain signed currency arithmetic, no conditionals.
func (i *Installment) PaidAmount() decimal.Decimal {
	gross := i.Principal.
		Add(i.InstallmentInterest).
		Add(i.Correction).
		Add(i.Surcharge).
		Add(i.SlipFee).
		Add(i.Penalty).
		Add(i.LateInterest).
		Add(i.LateCorrection)
	discounts := i.Discount.
		Add(i.CostDiscount).
		Add(i.TaxDiscount).
		Add(i.ConditionalDiscount)
	grossConf := i.PrincipalConf.
		Add(i.InstallmentInterestConf).
		Add(i.CorrectionConf).
		Add(i.SurchargeConf).
		Add(i.SlipFeeConf).
		Add(i.PenaltyConf).
		Add(i.LateInterestConf).
		Add(i.LateCorrectionConf)
	discountsConf := i.DiscountConf.
		Add(i.CostDiscountConf).
		Add(i.TaxDiscountConf).
		Add(i.ConditionalDiscountConf)

	return gross.Sub(discounts).Add(grossConf).Sub(discountsConf)
}

// ConfirmedAmount is the Vl_Confirm figure for one installment: the
// correction terms plus a conditional bonus.
//
// The branch order is load-bearing: residual types zero the bonus even when
// the anniversary flag is set, so the type check must run first.
func (i *Installment) ConfirmedAmount() decimal.Decimal {
	base := i.Correction.Add(i.CorrectionConf)

	if i.Type == TypeResidual || i.Type == TypeResidualGrouped {
		return base
	}

	bonus := i.Principal.Add(i.PrincipalConf)
	if i.AnniversaryFlag != 0 {
		bonus = bonus.
			Add(i.EmbeddedInterest).
			Add(i.EmbeddedInterestConf).
			Add(i.EmbeddedCorrection).
			Add(i.EmbeddedCorrectionConf)
	}
	return base.Add(bonus)
}

// BuildPayoff turns the raw installment rows for one sale into the payoff
// statement: rows of excluded types are dropped, each accepted row yields a
// line with usable = min(paid, confirmed) and delta = paid - confirmed, and
// the three totals accumulate over accepted rows only.
//
// Rows must already be ordered by received date; BuildPayoff preserves the
// order it is given.
func BuildPayoff(key SaleKey, rows []Installment) *PayoffStatement {
	st := &PayoffStatement{Key: key, RowCount: len(rows)}

	for idx := range rows {
		row := &rows[idx]
		if !CountsTowardPayoff(row.Type) {
			continue
		}

		paid := row.PaidAmount()
		confirmed := row.ConfirmedAmount()
		usable := decimal.Min(paid, confirmed)

		st.Lines = append(st.Lines, PayoffLine{
			Type:         row.Type,
			TypeLabel:    TypeLabel(row.Type),
			Number:       row.Number,
			ReceivedDate: row.ReceivedDate,
			Paid:         paid,
			Confirmed:    confirmed,
			Usable:       usable,
			Delta:        paid.Sub(confirmed),
		})

		st.Totals.Paid = st.Totals.Paid.Add(paid)
		st.Totals.Confirmed = st.Totals.Confirmed.Add(confirmed)
		st.Totals.Usable = st.Totals.Usable.Add(usable)
	}

	return st
}
