package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("%w: contest not found", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: invalid credentials", ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: not registered", ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: already solved", ErrBadRequest), http.StatusBadRequest},
		{fmt.Errorf("%w: bad date", ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: already registered", ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: timed out", ErrOracleUnavailable), http.StatusServiceUnavailable},
		{errors.New("driver exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatusFromError(tc.err), "error: %v", tc.err)
	}
}

func TestUniqueViolationMapsToConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	assert.True(t, IsUniqueViolation(pgErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("create failed: %w", pgErr)))
	assert.Equal(t, http.StatusConflict, HTTPStatusFromError(pgErr))

	other := &pgconn.PgError{Code: "23503"}
	assert.False(t, IsUniqueViolation(other))
}
