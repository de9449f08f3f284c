// Package repository wraps every database access the service makes.
//
// V8 tables are read and written through GORM models. Business operations
// that live in the V8 schema are called as set returning stored functions.
// Repositories return gorm/pgx errors untouched; the global error handler
// maps them through sqlerr.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/loan-backoffice/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// callFunction runs SELECT * FROM "name"(args...) and returns its rows.
func callFunction(ctx context.Context, db *gorm.DB, name string, args ...any) ([]model.Row, error) {
	var rows []model.Row
	if err := scanFunction(ctx, db, &rows, name, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// scanFunction is callFunction for typed destinations.
func scanFunction(ctx context.Context, db *gorm.DB, dest any, name string, args ...any) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	query := fmt.Sprintf(`SELECT * FROM "%s"(%s)`, name, placeholders)

	if err := db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("calling %s: %w", name, err)
	}
	return nil
}

// column qualifies name with the statement's main table, so conditions
// stay unambiguous once associations are joined.
func column(name string) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: name}
}

func eq(name string, value any) clause.Eq {
	return clause.Eq{Column: column(name), Value: value}
}
