// internal/dataset/sql.go
package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

// Drivers understood by OpenSQL.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DefaultTable holds one row per sequence with the Columns layout.
const DefaultTable = "sequences"

var (
	ErrBadTable = errors.New("invalid table name")

	tableRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	sqlOpen = sql.Open
)

// ParseDSN maps an input location onto a driver and DSN.
// sqlite://path and postgres:// (or postgresql://) URLs are recognized.
func ParseDSN(input string) (driver, dsn string, ok bool) {
	switch {
	case strings.HasPrefix(input, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(input, "sqlite://"), true
	case strings.HasPrefix(input, "postgres://"), strings.HasPrefix(input, "postgresql://"):
		return DriverPostgres, input, true
	}
	return "", "", false
}

// OpenSQL opens and pings a database.
func OpenSQL(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}

func checkTable(table string) error {
	if !tableRE.MatchString(table) {
		return fmt.Errorf("%w %q", ErrBadTable, table)
	}
	return nil
}

// QueryRows reads every row of table.
func QueryRows(ctx context.Context, db *sql.DB, table string) ([]Row, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}
	q := fmt.Sprintf(`SELECT patient_id, gene_type, sequence, is_mutated, mutation_count, health_status FROM %s`, table)
	rs, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer func() { _ = rs.Close() }()

	var rows []Row
	for rs.Next() {
		var (
			r             Row
			gene, health  sql.NullString
			sequence      sql.NullString
			mutated       sql.NullBool
			mutationCount sql.NullInt64
		)
		if err := rs.Scan(&r.PatientID, &gene, &sequence, &mutated, &mutationCount, &health); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		r.GeneType, r.HealthStatus = gene.String, health.String
		r.IsMutated, r.MutationCount = mutated.Bool, int(mutationCount.Int64)
		if sequence.String != "" {
			if r.Sequence, err = Normalize(sequence.String); err != nil {
				return nil, fmt.Errorf("row %s: %w", r.PatientID, err)
			}
		}
		rows = append(rows, r)
	}
	return rows, rs.Err()
}

// LoadSQL opens driver/dsn and reads table.
func LoadSQL(ctx context.Context, driver, dsn, table string) ([]Row, error) {
	db, err := OpenSQL(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	return QueryRows(ctx, db, table)
}

// SaveRows creates table when needed and inserts rows in one transaction.
func SaveRows(ctx context.Context, db *sql.DB, driver, table string, rows []Row) (retErr error) {
	if err := checkTable(table); err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		patient_id TEXT NOT NULL,
		gene_type TEXT,
		sequence TEXT,
		is_mutated BOOLEAN NOT NULL DEFAULT FALSE,
		mutation_count INTEGER NOT NULL DEFAULT 0,
		health_status TEXT
	)`, table)
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create %s: %w", table, err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	ins := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, table, strings.Join(Columns, ","), placeholders(driver, len(Columns)))
	stmt, err := tx.PrepareContext(ctx, ins)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, r.PatientID, r.GeneType, r.Sequence, r.IsMutated, r.MutationCount, r.HealthStatus); err != nil {
			return fmt.Errorf("insert %s: %w", r.PatientID, err)
		}
	}
	return tx.Commit()
}

func placeholders(driver string, n int) string {
	ps := make([]string, n)
	for i := range ps {
		if driver == DriverPostgres {
			ps[i] = "$" + strconv.Itoa(i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ",")
}
