package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"ppr-analyser/models"
	"ppr-analyser/utils"
)

var salesColumns = []string{
	"date_of_sale", "address", "postal_code", "region", "price",
	"full_market_price", "vat_exclusive", "description",
}

// PostgresWriter persists parsed sales and run summaries to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, retrying the ping
// with retry, runs schema migrations, and returns a ready-to-use writer.
func NewPostgresWriter(dsn string, retry *utils.RetryConfig) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if err := retry.Do("postgres ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS sales (
			id                SERIAL PRIMARY KEY,
			date_of_sale      DATE          NOT NULL,
			address           TEXT          NOT NULL,
			postal_code       TEXT          NOT NULL DEFAULT '',
			region            TEXT          NOT NULL DEFAULT '',
			price             NUMERIC(14,2) NOT NULL DEFAULT 0,
			full_market_price TEXT          NOT NULL DEFAULT '',
			vat_exclusive     TEXT          NOT NULL DEFAULT '',
			description       TEXT          NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_sales_date   ON sales(date_of_sale);
		CREATE INDEX IF NOT EXISTS idx_sales_region ON sales(region);
		CREATE INDEX IF NOT EXISTS idx_sales_price  ON sales(price);

		CREATE TABLE IF NOT EXISTS run_summaries (
			id             SERIAL PRIMARY KEY,
			rows_processed INTEGER       NOT NULL,
			total          NUMERIC(18,2) NOT NULL,
			max_price      NUMERIC(14,2) NOT NULL,
			min_price      NUMERIC(14,2) NOT NULL,
			mean_per_sale  DOUBLE PRECISION NOT NULL,
			mode_price     NUMERIC(14,2) NOT NULL,
			mode_frequency INTEGER       NOT NULL,
			std_dev        DOUBLE PRECISION,
			created_at     TIMESTAMPTZ   NOT NULL DEFAULT NOW()
		);
	`)
	return err
}

// Write replaces the sales table with the rows of ds. The delete and every
// insert batch run in one transaction, so a failure leaves the table as it was.
func (pw *PostgresWriter) Write(ds *models.Dataset) error {
	if ds.Len() == 0 {
		return nil
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM sales"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	const batchSize = 500
	for start := 0; start < ds.Len(); start += batchSize {
		end := min(start+batchSize, ds.Len())
		if err := insertBatch(tx, ds, start, end); err != nil {
			return fmt.Errorf("postgres: insert rows %d-%d: %w", start+1, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertBatch(tx *sql.Tx, ds *models.Dataset, start, end int) error {
	args := make([]interface{}, 0, (end-start)*len(salesColumns))
	for i := start; i < end; i++ {
		r := ds.Record(i)
		args = append(args,
			r.DateOfSale, r.Address, r.PostalCode, r.Region, r.Price.StringFixed(2),
			r.FullMarketPrice, r.VATExclusive, r.Description)
	}

	_, err := tx.Exec(buildInsert("sales", salesColumns, end-start), args...)
	return err
}

// AppendSummary records one run summary.
func (pw *PostgresWriter) AppendSummary(s models.Summary) error {
	var stdDev sql.NullFloat64
	if s.StdDev.Defined {
		stdDev = sql.NullFloat64{Float64: s.StdDev.Value, Valid: true}
	}

	_, err := pw.db.Exec(`
		INSERT INTO run_summaries
			(rows_processed, total, max_price, min_price, mean_per_sale, mode_price, mode_frequency, std_dev, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.RowsProcessed, s.Total.StringFixed(2), s.Max.StringFixed(2), s.Min.StringFixed(2),
		s.MeanPerSale, s.Mode.StringFixed(2), s.ModeFrequency, stdDev, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: append summary: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// buildInsert returns a multi-row INSERT with numbered placeholders.
func buildInsert(table string, columns []string, rows int) string {
	groups := make([]string, 0, rows)
	placeholders := make([]string, len(columns))
	for r := 0; r < rows; r++ {
		for c := range columns {
			placeholders[c] = fmt.Sprintf("$%d", r*len(columns)+c+1)
		}
		groups = append(groups, "("+strings.Join(placeholders, ",")+")")
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), strings.Join(groups, ","))
}
