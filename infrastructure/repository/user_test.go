package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func TestUserRepository_CreateOrganization(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "cria organização e administrador",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("INSERT INTO organizations").
					WithArgs("Acme", "acme-x1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orgID, now, now))
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(orgID, "ana@acme.com", "hash", "Ana", "", domain.RoleAdmin, true).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("u1", now, now))
				mock.ExpectCommit()
			},
		},
		{
			name: "email duplicado desfaz a organização",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("INSERT INTO organizations").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(orgID, now, now))
				mock.ExpectQuery("INSERT INTO users").
					WillReturnError(&pq.Error{Code: pqUniqueViolation, Constraint: "users_email_key"})
				mock.ExpectRollback()
			},
			wantErr: domain.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			org := &domain.Organization{Name: "Acme", Slug: "acme-x1"}
			admin := &domain.User{Email: "ana@acme.com", PasswordHash: "hash", FirstName: "Ana", RoleID: domain.RoleAdmin, Active: true}

			createdOrg, createdUser, err := NewUserRepository(conn).CreateOrganization(context.Background(), org, admin)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, orgID, createdOrg.ID)
				assert.Equal(t, orgID, createdUser.OrganizationID)
				assert.Equal(t, "u1", createdUser.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE deleted_at IS NULL AND email = \$1`).
		WithArgs("ghost@acme.com").
		WillReturnError(sql.ErrNoRows)

	user, err := NewUserRepository(conn).GetUserByEmail(context.Background(), "ghost@acme.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListUser_HidesPasswordHash(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery("FROM users WHERE deleted_at IS NULL AND organization_id = \\$1 ORDER BY first_name ASC").
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("u1", orgID, "ana@acme.com", "hash", "Ana", "Souza", 1, true, nil, now, now))

	users, err := NewUserRepository(conn).ListUser(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
	assert.Equal(t, "Ana Souza", users[0].FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}
