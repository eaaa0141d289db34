package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpdate = errors.New("falha no update")

func TestRunInTransaction(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(*sql.Tx) error
		setup     func(mock sqlmock.Sqlmock)
		expectErr bool
	}{
		{
			name: "commit quando a função tem sucesso",
			fn: func(tx *sql.Tx) error {
				_, err := tx.Exec("UPDATE organizations SET name = 'x'")
				return err
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE organizations").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "falha ao iniciar",
			fn:   func(tx *sql.Tx) error { return nil },
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("pool esgotado"))
			},
			expectErr: true,
		},
		{
			name: "rollback quando a função falha",
			fn: func(tx *sql.Tx) error {
				return errors.New("falhou")
			},
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			err = Wrap(db).RunInTransaction(context.Background(), tt.fn)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransaction_KeepsCause(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(errors.New("conexão perdida"))

	err = Wrap(db).RunInTransaction(context.Background(), func(*sql.Tx) error { return errUpdate })

	assert.ErrorIs(t, err, errUpdate)
	assert.Contains(t, err.Error(), "conexão perdida")
}

func TestRegisterMetrics(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reg := prometheus.NewRegistry()
	conn := Wrap(db)

	require.NoError(t, conn.RegisterMetrics(reg))
	// registrar de novo não é erro
	require.NoError(t, conn.RegisterMetrics(reg))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
