// restore-seed builds a local development database: applies the dev schema
// and loads a small sample sale with a mixed set of installments. Point
// DATABASE_URL at a scratch Postgres before running; never at the live store.
//
// Usage: go run ./cmd/restore-seed
package main

import (
	"context"
	"log"
	"os"

	"quitacao-report/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile("migrations/001_dev_schema.sql")
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}

	log.Println("Applying dev schema...")
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	log.Println("Clearing sample data...")
	_, err = tx.Exec(ctx, `
		TRUNCATE TABLE empresas, obras, pessoas, vendas, vendasrecebidas,
			recebidas, itensvenda, itensrecebidas, prdsrv, unidadeper;
	`)
	if err != nil {
		log.Fatalf("Failed to clear tables: %v", err)
	}

	log.Println("Seeding companies, sites and customers...")
	_, err = tx.Exec(ctx, `
		INSERT INTO empresas (codigo_emp, desc_emp) VALUES
			(999, 'ML Empreendimentos'),
			(6, 'Valle Incorporadora');

		INSERT INTO obras (cod_obr, empresa_obr, descr_obr) VALUES
			('70100', 999, 'Loteamento ML'),
			('70400', 6, 'Residencial Valle');

		INSERT INTO pessoas (cod_pes, nome_pes, cpf_pes) VALUES
			(1, 'Maria da Silva', '12345678901'),
			(2, 'Construtora Alfa Ltda', '12345678901234');
	`)
	if err != nil {
		log.Fatalf("Failed to seed base data: %v", err)
	}

	log.Println("Seeding sample sales and installments...")
	_, err = tx.Exec(ctx, `
		INSERT INTO vendas (empresa_ven, obra_ven, num_ven, cliente_ven, status_ven, datainicontrato_ven) VALUES
			(999, '70100', 1001, 1, 0, '2021-05-10');

		INSERT INTO vendasrecebidas (empresa_vrec, obra_vrec, num_vrec, cliente_vrec, status_vrec, datainicontrato_vrec, aniversariocontr_vrec) VALUES
			(999, '70100', 1001, 1, 0, '2021-05-10', 1),
			(6, '70400', 2001, 2, 3, '2020-08-01', 0);

		INSERT INTO itensvenda (empresa_itv, obra_itv, numvend_itv, produto_itv, codperson_itv) VALUES
			(999, '70100', 1001, 10, 55);
		INSERT INTO prdsrv (numprod_psc, desc_psc) VALUES (10, 'Lote');
		INSERT INTO unidadeper (empresa_unid, prod_unid, numper_unid, identificador_unid) VALUES
			(999, 10, 55, 'QD05-LT12');

		INSERT INTO recebidas (empresa_rec, obra_rec, numvend_rec, numparc_rec, tipo_rec, data_rec,
			valor_rec, vljurosparc_rec, vlcorrecao_rec, vlmulta_rec, vldesconto_rec,
			vljurosparcemb_rec, vlcorrecaoemb_rec) VALUES
			(999, '70100', 1001, '001',  'E', '2021-05-10', 5000.00, 0, 0, 0, 0, 0, 0),
			(999, '70100', 1001, '002',  'P', '2021-06-10', 1200.00, 35.50, 18.20, 0, 0, 12.00, 4.80),
			(999, '70100', 1001, '003',  'P', '2021-07-10', 1200.00, 33.10, 20.45, 60.00, 0, 11.40, 5.10),
			(999, '70100', 1001, '003A', 'P', '2021-07-22', 150.00, 0, 0, 0, 25.00, 0, 0),
			(999, '70100', 1001, '004',  'S', '2021-08-10', 800.00, 0, 0, 0, 0, 0, 0),
			(999, '70100', 1001, '005',  'R', '2021-09-10', 310.75, 0, 2.15, 0, 0, 0, 0),
			(999, '70100', 1001, '006',  '0', '2021-09-10', 90.00, 0, 0, 0, 0, 0, 0),
			(6, '70400', 2001, '001',  'E', '2020-08-01', 10000.00, 0, 0, 0, 0, 0, 0),
			(6, '70400', 2001, '002',  'P', '2020-09-01', 950.00, 28.00, 15.30, 0, 0, 0, 0);
	`)
	if err != nil {
		log.Fatalf("Failed to seed sales data: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("Failed to commit: %v", err)
	}

	log.Println("Seed data restored. Try: go run ./cmd/report -empresa 999 -obra 70100 -venda 1001")
}
