package activities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestStoreErr(t *testing.T) {
	checkErr := fmt.Errorf("insert log: %w", &pgconn.PgError{Code: "23514"})
	rangeErr := fmt.Errorf("insert log: %w", &pgconn.PgError{Code: "22003"})
	uniqueErr := &pgconn.PgError{Code: "23505"}
	otherErr := errors.New("connection reset")

	assert.ErrorIs(t, storeErr(checkErr), ErrInvalidInput)
	assert.ErrorIs(t, storeErr(rangeErr), ErrInvalidInput)
	assert.NotErrorIs(t, storeErr(uniqueErr), ErrInvalidInput)
	assert.Equal(t, otherErr, storeErr(otherErr))
}
