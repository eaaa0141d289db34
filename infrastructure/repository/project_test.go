package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

const projectID = "7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "organization_id", "owner_id", "project_manager_id", "company_id", "deal_id",
		"name", "description", "project_status", "priority", "start_date", "due_date",
		"completion_date", "estimated_hours", "actual_hours", "tags", "created_at", "updated_at",
	})
}

func TestProjectRepository_GetByID(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		validate func(t *testing.T, project *domain.Project, err error)
	}{
		{
			name: "projeto encontrado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT pj.id, (.+) FROM crm_projects pj WHERE pj.deleted_at IS NULL AND pj.organization_id = \$1 AND pj.id = \$2`).
					WithArgs(orgID, projectID).
					WillReturnRows(projectRows().AddRow(
						projectID, orgID, nil, nil, companyID, nil,
						"Implantação", nil, "active", "high", now, nil,
						nil, "120.5", nil, "{onboarding}", now, now,
					))
			},
			validate: func(t *testing.T, project *domain.Project, err error) {
				require.NoError(t, err)
				require.NotNil(t, project)
				assert.Equal(t, domain.ProjectStatusActive, project.Status)
				assert.Equal(t, domain.PriorityHigh, project.Priority)
				assert.Equal(t, companyID, *project.CompanyID)
				assert.True(t, project.EstimatedHours.Valid)
				assert.Equal(t, "120.5", project.EstimatedHours.Decimal.String())
				assert.False(t, project.ActualHours.Valid)
				assert.Equal(t, []string{"onboarding"}, project.Tags)
			},
		},
		{
			name: "projeto inexistente retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM crm_projects pj WHERE").
					WithArgs(orgID, projectID).
					WillReturnError(sql.ErrNoRows)
			},
			validate: func(t *testing.T, project *domain.Project, err error) {
				assert.NoError(t, err)
				assert.Nil(t, project)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			project, err := NewProjectRepository(conn).GetByID(context.Background(), orgID, projectID)
			tt.validate(t, project, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRepository_List(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	filter := domain.ProjectFilter{
		PageParams: domain.PageParams{Page: 1, Limit: 10, SortBy: "due_date", SortOrder: "asc"}.Normalize(),
		Search:     "implant",
		Status:     "active",
		CompanyID:  companyID,
		Tags:       []string{"onboarding"},
	}
	args := []driver.Value{orgID, "%implant%", "%implant%", "active", companyID, sqlmock.AnyArg()}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM crm_projects pj WHERE (.+) pj.tags && \$6`).
		WithArgs(args...).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT pj.id, (.+) ORDER BY pj.due_date ASC LIMIT 10 OFFSET 0`).
		WithArgs(args...).
		WillReturnRows(projectRows().AddRow(
			projectID, orgID, nil, nil, companyID, nil,
			"Implantação", nil, "active", "medium", nil, nil,
			nil, nil, nil, "{}", now, now,
		))

	projects, total, err := NewProjectRepository(conn).List(context.Background(), orgID, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, projects, 1)
	assert.NotNil(t, projects[0].Tags)
	assert.Empty(t, projects[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO crm_projects \(organization_id,(.+)\) VALUES (.+) RETURNING id, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(projectID, now, now))

	project, err := NewProjectRepository(conn).Create(context.Background(), &domain.Project{
		OrganizationID: orgID,
		Name:           "Implantação",
		Status:         domain.ProjectStatusPlanning,
		Priority:       domain.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, projectID, project.ID)
	assert.NotNil(t, project.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create_InvalidReference(t *testing.T) {
	conn, mock := newMockConn(t)
	mock.ExpectQuery("INSERT INTO crm_projects").
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Constraint: "crm_projects_deal_id_fkey"})

	_, err := NewProjectRepository(conn).Create(context.Background(), &domain.Project{OrganizationID: orgID, Name: "X"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidReference))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantNil bool
	}{
		{
			name: "projeto atualizado",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE crm_projects SET (.+) WHERE deleted_at IS NULL AND id = \$15 AND organization_id = \$16 RETURNING updated_at`).
					WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))
			},
		},
		{
			name: "projeto removido retorna nil",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("UPDATE crm_projects SET").
					WillReturnError(sql.ErrNoRows)
			},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			project, err := NewProjectRepository(conn).Update(context.Background(), &domain.Project{
				ID:             projectID,
				OrganizationID: orgID,
				Name:           "Implantação",
				Status:         domain.ProjectStatusCompleted,
				Priority:       domain.PriorityLow,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantNil, project == nil)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestProjectRepository_SoftDelete(t *testing.T) {
	conn, mock := newMockConn(t)
	mock.ExpectExec(`UPDATE crm_projects SET deleted_at = NOW\(\), updated_at = NOW\(\) WHERE`).
		WithArgs(projectID, orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := NewProjectRepository(conn).SoftDelete(context.Background(), orgID, projectID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
