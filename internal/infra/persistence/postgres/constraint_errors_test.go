package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_products_slug"})
	fk := &pgconn.PgError{Code: "23503"}
	notNull := &pgconn.PgError{Code: "23502"}
	check := &pgconn.PgError{Code: "23514"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.Equal(t, "idx_products_slug", pgConstraintName(unique))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isCheckConstraintViolation(check))

	assert.False(t, isUniqueConstraintViolation(fk))
	assert.False(t, isNotNullConstraintViolation(fmt.Errorf("field is required")))
	assert.Empty(t, pgConstraintName(gorm.ErrRecordNotFound))
}
