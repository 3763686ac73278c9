package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-games-backend/internal/domain"
	"github.com/tbourn/go-games-backend/internal/repo"
)

const batchSize = 100

// Run migrates the schema, then replaces every row in the store with ds in a
// single transaction. Tables are cleared children-first and filled
// parents-first so foreign keys hold throughout.
func Run(ctx context.Context, db *gorm.DB, ds Dataset) error {
	if err := repo.AutoMigrate(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		for _, m := range []any{&domain.Comment{}, &domain.Review{}, &domain.User{}, &domain.Category{}} {
			if err := wipe.Delete(m).Error; err != nil {
				return fmt.Errorf("clear %T: %w", m, err)
			}
		}

		ins := tx.Omit(clause.Associations)
		if len(ds.Categories) > 0 {
			if err := ins.CreateInBatches(ds.Categories, batchSize).Error; err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
		}
		if len(ds.Users) > 0 {
			if err := ins.CreateInBatches(ds.Users, batchSize).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		if len(ds.Reviews) > 0 {
			if err := ins.CreateInBatches(ds.Reviews, batchSize).Error; err != nil {
				return fmt.Errorf("insert reviews: %w", err)
			}
		}
		if len(ds.Comments) > 0 {
			if err := ins.CreateInBatches(ds.Comments, batchSize).Error; err != nil {
				return fmt.Errorf("insert comments: %w", err)
			}
		}
		return resetSequences(tx)
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("categories", len(ds.Categories)).
		Int("users", len(ds.Users)).
		Int("reviews", len(ds.Reviews)).
		Int("comments", len(ds.Comments)).
		Msg("seed complete")
	return nil
}

// resetSequences moves Postgres serial counters past the explicit ids the
// dataset inserted. SQLite derives AUTOINCREMENT from MAX(rowid) already.
func resetSequences(tx *gorm.DB) error {
	if tx.Dialector.Name() != "postgres" {
		return nil
	}
	for _, s := range []struct{ table, col string }{
		{"reviews", "review_id"},
		{"comments", "comment_id"},
	} {
		q := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE((SELECT MAX(%s) FROM %s), 0) + 1, false)",
			s.table, s.col, s.col, s.table,
		)
		if err := tx.Exec(q).Error; err != nil {
			return fmt.Errorf("reset %s sequence: %w", s.table, err)
		}
	}
	return nil
}
