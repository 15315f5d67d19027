package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSaleNotFound signals that no sale row matched the key. Rendered as a
// warning, not an error — a wrong sale number is a normal outcome.
var ErrSaleNotFound = errors.New("sale not found")

// SaleService resolves a sale key to its header snapshot.
type SaleService interface {
	// Lookup returns the sale header for the key, or ErrSaleNotFound.
	// The underlying union of the two sale lifecycles can produce more than
	// one row for a key; the first row by stable order wins.
	Lookup(ctx context.Context, key SaleKey) (*Sale, error)
}

type saleService struct {
	pool *pgxpool.Pool
}

// NewSaleService constructs a SaleService backed by the given pool.
func NewSaleService(pool *pgxpool.Pool) SaleService {
	return &saleService{pool: pool}
}

// headerQuery normalizes the two sale lifecycles (Vendas and VendasRecebidas)
// to one shape and joins customer and descriptive relations. Filter values
// are always bound as parameters, never interpolated.
const headerQuery = `
	SELECT p.nome_pes,
	       p.cpf_pes,
	       v.status_ven,
	       v.dataInicontrato_ven,
	       e.desc_emp,
	       o.descr_obr
	FROM (
	    SELECT empresa_ven, obra_ven, num_ven, cliente_ven,
	           status_ven, dataInicontrato_ven
	    FROM vendas
	    UNION
	    SELECT empresa_vrec, obra_vrec, num_vrec, cliente_vrec,
	           status_vrec, dataInicontrato_vrec
	    FROM vendasrecebidas
	) v
	JOIN pessoas  p ON p.cod_pes = v.cliente_ven
	JOIN obras    o ON o.cod_obr = v.obra_ven AND o.empresa_obr = v.empresa_ven
	JOIN empresas e ON e.codigo_emp = v.empresa_ven
	WHERE v.num_ven = $1
	  AND v.empresa_ven = $2
	  AND v.obra_ven = $3
	ORDER BY v.status_ven
	LIMIT 1`

// unitQuery resolves the block/lot identifier through the items union and the
// unit-assignment relation. The LEFT JOIN means absence is expected; the
// caller maps no-row and NULL alike to the N/A sentinel.
const unitQuery = `
	SELECT u.identificador_unid
	FROM (
	    SELECT empresa_itv, obra_itv, numvend_itv, produto_itv, codperson_itv
	    FROM itensvenda
	    UNION
	    SELECT empresa_itv, obra_itv, numvend_itv, produto_itv, codperson_itv
	    FROM itensrecebidas
	) iv
	JOIN prdsrv ps ON ps.numprod_psc = iv.produto_itv
	LEFT JOIN unidadeper u
	       ON u.empresa_unid = iv.empresa_itv
	      AND u.prod_unid    = iv.produto_itv
	      AND u.numper_unid  = iv.codperson_itv
	WHERE iv.empresa_itv = $1
	  AND iv.numvend_itv = $2
	  AND iv.obra_itv    = $3
	ORDER BY u.identificador_unid NULLS LAST
	LIMIT 1`

func (s *saleService) Lookup(ctx context.Context, key SaleKey) (*Sale, error) {
	sale := &Sale{Key: key}
	var document string

	err := s.pool.QueryRow(ctx, headerQuery,
		key.SaleNumber, key.CompanyID, key.SiteCode,
	).Scan(
		&sale.CustomerName,
		&document,
		&sale.Status,
		&sale.ContractStartDate,
		&sale.CompanyName,
		&sale.SiteName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to query sale header: %w", err)
	}
	sale.CustomerDocument = strings.TrimSpace(document)

	unit, err := s.lookupUnit(ctx, key)
	if err != nil {
		return nil, err
	}
	sale.UnitIdentifier = unit

	return sale, nil
}

func (s *saleService) lookupUnit(ctx context.Context, key SaleKey) (string, error) {
	var unit *string
	err := s.pool.QueryRow(ctx, unitQuery,
		key.CompanyID, key.SaleNumber, key.SiteCode,
	).Scan(&unit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return UnitUnresolved, nil
		}
		return "", fmt.Errorf("failed to query unit identifier: %w", err)
	}
	if unit == nil || strings.TrimSpace(*unit) == "" {
		return UnitUnresolved, nil
	}
	return strings.TrimSpace(*unit), nil
}
