// Package migrate contains the database schema and data seeding support.
package migrate

import (
	"context"
	_ "embed" // Calls init function.
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studygate/studygate/business/sdk/sqldb"
)

//go:embed sql/schema.sql
var schemaDoc string

//go:embed sql/seed.sql
var seedDoc string

// Migrate attempts to bring the database up to date with the schema defined
// in this package. Statements are written to be idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := sqldb.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schemaDoc); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}

// Seed runs the seed document against the database. The queries are run in a
// transaction and rolled back if any fail.
func Seed(ctx context.Context, db *sqlx.DB) (err error) {
	if err := sqldb.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("status check database: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return err
	}

	defer func() {
		if errTx := tx.Rollback(); errTx != nil {
			if errTx.Error() == "sql: transaction has already been committed or rolled back" {
				return
			}
			err = fmt.Errorf("rollback: %w", errTx)
		}
	}()

	if _, err := tx.ExecContext(ctx, seedDoc); err != nil {
		return fmt.Errorf("exec seed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	return nil
}
