package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PayoffService builds the payoff statement for a sale.
type PayoffService interface {
	// Statement fetches the sale's installment rows in received-date order
	// and reduces them to the payoff lines and totals. A sale with no rows
	// returns an empty statement, not an error.
	Statement(ctx context.Context, key SaleKey) (*PayoffStatement, error)
}

type payoffService struct {
	pool  *pgxpool.Pool
	cache *statementCache
}

// NewPayoffService constructs a PayoffService backed by the given pool, with
// a bounded TTL result cache in front of the query.
func NewPayoffService(pool *pgxpool.Pool) PayoffService {
	return &payoffService{
		pool:  pool,
		cache: newStatementCache(defaultCacheCapacity, defaultCacheTTL),
	}
}

// installmentQuery joins the sale linkage to the received-payment rows and
// returns every raw currency column the formulas consume, plus the linkage's
// anniversary flag. Ordered by received date (installment number breaks
// ties) so the statement is reproducible.
const installmentQuery = `
	SELECT r.numparc_rec,
	       r.tipo_rec,
	       r.data_rec,
	       vr.aniversariocontr_vrec,
	       r.valor_rec,                     r.valorconf_rec,
	       r.vljurosparc_rec,              r.vljurosparcconf_rec,
	       r.vlcorrecao_rec,               r.vlcorrecaoconf_rec,
	       r.vlacres_rec,                  r.vlacresconf_rec,
	       r.vltaxabol_rec,                r.vltaxabolconf_rec,
	       r.vlmulta_rec,                  r.vlmultaconf_rec,
	       r.vljuros_rec,                  r.vljurosconf_rec,
	       r.vlcorrecaoatr_rec,            r.vlcorrecaoatrconf_rec,
	       r.vldesconto_rec,               r.vldescontoconf_rec,
	       r.valdescontocusta_rec,         r.valdescontocustaconf_rec,
	       r.valdescontoimposto_rec,       r.valdescontoimpostoconf_rec,
	       r.valdescontocondicional_rec,   r.valdescontocondicionalconf_rec,
	       r.vljurosparcemb_rec,           r.vljurosparcembconf_rec,
	       r.vlcorrecaoemb_rec,            r.vlcorrecaoembconf_rec
	FROM vendasrecebidas vr
	JOIN recebidas r
	  ON r.empresa_rec = vr.empresa_vrec
	 AND r.obra_rec    = vr.obra_vrec
	 AND r.numvend_rec = vr.num_vrec
	WHERE r.obra_rec    = $1
	  AND r.numvend_rec = $2
	  AND r.empresa_rec = $3
	ORDER BY r.data_rec, r.numparc_rec`

func (s *payoffService) Statement(ctx context.Context, key SaleKey) (*PayoffStatement, error) {
	if st, ok := s.cache.get(key); ok {
		return st, nil
	}

	rows, err := s.pool.Query(ctx, installmentQuery,
		key.SiteCode, key.SaleNumber, key.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	var installments []Installment
	for rows.Next() {
		var ins Installment
		if err := rows.Scan(
			&ins.Number,
			&ins.Type,
			&ins.ReceivedDate,
			&ins.AnniversaryFlag,
			&ins.Principal, &ins.PrincipalConf,
			&ins.InstallmentInterest, &ins.InstallmentInterestConf,
			&ins.Correction, &ins.CorrectionConf,
			&ins.Surcharge, &ins.SurchargeConf,
			&ins.SlipFee, &ins.SlipFeeConf,
			&ins.Penalty, &ins.PenaltyConf,
			&ins.LateInterest, &ins.LateInterestConf,
			&ins.LateCorrection, &ins.LateCorrectionConf,
			&ins.Discount, &ins.DiscountConf,
			&ins.CostDiscount, &ins.CostDiscountConf,
			&ins.TaxDiscount, &ins.TaxDiscountConf,
			&ins.ConditionalDiscount, &ins.ConditionalDiscountConf,
			&ins.EmbeddedInterest, &ins.EmbeddedInterestConf,
			&ins.EmbeddedCorrection, &ins.EmbeddedCorrectionConf,
		); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		// char columns in the store pad with spaces
		ins.Number = strings.TrimSpace(ins.Number)
		ins.Type = strings.TrimSpace(ins.Type)
		installments = append(installments, ins)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("installment row iteration error: %w", err)
	}

	st := BuildPayoff(key, installments)
	s.cache.put(key, st)
	return st, nil
}
