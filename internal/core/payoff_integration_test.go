package core_test

import (
	"context"
	"testing"

	"quitacao-report/internal/core"

	"github.com/shopspring/decimal"
)

func TestPayoffService_Statement(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	ctx := context.Background()

	// Sale 200 (anniversary flag 1): an entry, a regular installment with
	// embedded terms, a residual and an insurance row. Dates force the order
	// entry → installment → residual → insurance.
	_, err := pool.Exec(ctx, `
		INSERT INTO recebidas (empresa_rec, obra_rec, numvend_rec, numparc_rec, tipo_rec, data_rec,
			valor_rec, vlacres_rec, vljurosparcemb_rec, vlcorrecaoemb_rec, vldesconto_rec) VALUES
			(999, '70100', 200, '001',  'E', '2022-01-10', 90, 10, 0, 0, 0),
			(999, '70100', 200, '002',  'P', '2022-02-10', 200, 0, 8, 2, 0),
			(999, '70100', 200, '003',  'R', '2022-03-10', 9999, 0, 0, 0, 0),
			(999, '70100', 200, '004',  '0', '2022-04-10', 500, 0, 0, 0, 0);
	`)
	if err != nil {
		t.Fatalf("Failed to seed installments: %v", err)
	}

	svc := core.NewPayoffService(pool)

	t.Run("statement with mixed types", func(t *testing.T) {
		st, err := svc.Statement(ctx, core.SaleKey{CompanyID: 999, SiteCode: "70100", SaleNumber: 200})
		if err != nil {
			t.Fatalf("Statement failed: %v", err)
		}
		if st.Empty() {
			t.Fatal("statement should not be empty")
		}
		if st.RowCount != 4 {
			t.Errorf("row count: want 4, got %d", st.RowCount)
		}
		if len(st.Lines) != 2 {
			t.Fatalf("accepted lines: want 2, got %d", len(st.Lines))
		}

		// Line 1 — entry: paid 90+10; confirmed 90 (bonus is the principal,
		// the row's embedded terms are zero so the anniversary flag is moot).
		e := st.Lines[0]
		if e.Number != "001" || e.Type != core.TypeEntry {
			t.Fatalf("line 1: got %s/%s", e.Number, e.Type)
		}
		if !e.Paid.Equal(decimal.NewFromInt(100)) {
			t.Errorf("entry paid: want 100, got %s", e.Paid)
		}
		if !e.Confirmed.Equal(decimal.NewFromInt(90)) {
			t.Errorf("entry confirmed: want 90, got %s", e.Confirmed)
		}
		if !e.Usable.Equal(decimal.NewFromInt(90)) {
			t.Errorf("entry usable: want 90, got %s", e.Usable)
		}

		// Line 2 — installment: paid = 200+8+2 = 210; confirmed includes the
		// embedded terms because aniversariocontr_vrec = 1: 200+8+2 = 210.
		p := st.Lines[1]
		if p.Number != "002" || p.Type != core.TypeInstallment {
			t.Fatalf("line 2: got %s/%s", p.Number, p.Type)
		}
		if !p.Paid.Equal(decimal.NewFromInt(210)) {
			t.Errorf("installment paid: want 210, got %s", p.Paid)
		}
		if !p.Confirmed.Equal(decimal.NewFromInt(210)) {
			t.Errorf("installment confirmed: want 210, got %s", p.Confirmed)
		}
		if !p.Delta.IsZero() {
			t.Errorf("installment delta: want 0, got %s", p.Delta)
		}

		// Totals over accepted rows only.
		if !st.Totals.Paid.Equal(decimal.NewFromInt(310)) {
			t.Errorf("total paid: want 310, got %s", st.Totals.Paid)
		}
		if !st.Totals.Confirmed.Equal(decimal.NewFromInt(300)) {
			t.Errorf("total confirmed: want 300, got %s", st.Totals.Confirmed)
		}
		if !st.Totals.Usable.Equal(decimal.NewFromInt(300)) {
			t.Errorf("total usable: want 300, got %s", st.Totals.Usable)
		}
	})

	t.Run("sale with no installments is empty", func(t *testing.T) {
		st, err := svc.Statement(ctx, core.SaleKey{CompanyID: 999, SiteCode: "70100", SaleNumber: 100})
		if err != nil {
			t.Fatalf("Statement failed: %v", err)
		}
		if !st.Empty() {
			t.Error("sale 100 has no installments; statement should be empty")
		}
		if !st.Totals.Usable.IsZero() {
			t.Errorf("empty statement totals must be zero, got %s", st.Totals.Usable)
		}
	})

	t.Run("repeat query is served consistently", func(t *testing.T) {
		key := core.SaleKey{CompanyID: 999, SiteCode: "70100", SaleNumber: 200}
		first, err := svc.Statement(ctx, key)
		if err != nil {
			t.Fatalf("Statement failed: %v", err)
		}
		second, err := svc.Statement(ctx, key)
		if err != nil {
			t.Fatalf("repeat Statement failed: %v", err)
		}
		if !first.Totals.Usable.Equal(second.Totals.Usable) {
			t.Errorf("repeat totals diverge: %s vs %s",
				first.Totals.Usable, second.Totals.Usable)
		}
	})
}
