package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

const activityID = "3d2e1f0a-9b8c-4d7e-8f6a-5b4c3d2e1f0a"

func activityRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "organization_id", "owner_id", "type", "title", "description", "due_date",
		"completed", "completed_at", "contact_id", "company_id", "deal_id", "campaign_id",
		"assigned_to_id", "priority", "is_pinned", "tags", "created_at", "updated_at",
	})
}

func TestActivityRepository_GetByID(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM crm_activities a WHERE a.deleted_at IS NULL AND a.organization_id = \$1 AND a.id = \$2`).
		WithArgs(orgID, activityID).
		WillReturnRows(activityRows().AddRow(
			activityID, orgID, nil, "call", "Ligar para Ana", nil, now,
			true, now, nil, companyID, nil, nil,
			nil, "high", false, nil, now, now,
		))

	activity, err := NewActivityRepository(conn).GetByID(context.Background(), orgID, activityID)
	require.NoError(t, err)
	require.NotNil(t, activity)
	assert.Equal(t, domain.ActivityType("call"), activity.Type)
	assert.Equal(t, domain.PriorityHigh, activity.Priority)
	assert.True(t, activity.Completed)
	require.NotNil(t, activity.CompanyID)
	assert.Equal(t, companyID, *activity.CompanyID)
	assert.Equal(t, []string{}, activity.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_List_Filters(t *testing.T) {
	conn, mock := newMockConn(t)
	completed := false
	dueBefore := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM crm_activities a WHERE a.deleted_at IS NULL AND a.organization_id = \$1 AND a.type = \$2 AND a.completed = \$3 AND a.deal_id = \$4 AND a.due_date <= \$5`).
		WithArgs(orgID, "task", false, activityID, dueBefore).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT a.id, (.+) ORDER BY a.is_pinned DESC, a.created_at DESC LIMIT 20 OFFSET 0`).
		WillReturnRows(activityRows().AddRow(
			"a1", orgID, nil, "task", "Enviar proposta", nil, nil,
			false, nil, nil, nil, activityID, nil,
			nil, "medium", false, "{urgente}", time.Now(), time.Now(),
		))

	activities, total, err := NewActivityRepository(conn).List(context.Background(), orgID, domain.ActivityFilter{
		PageParams: domain.PageParams{}.Normalize(),
		Type:       "task",
		Completed:  &completed,
		DealID:     activityID,
		DueBefore:  &dueBefore,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, activities, 1)
	assert.Equal(t, []string{"urgente"}, activities[0].Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Create_InvalidReference(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`INSERT INTO crm_activities`).
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Constraint: "crm_activities_deal_id_fkey"})

	_, err := NewActivityRepository(conn).Create(context.Background(), &domain.Activity{
		OrganizationID: orgID,
		Type:           domain.ActivityType("note"),
		Title:          "Nota",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Update_Missing(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`UPDATE crm_activities SET (.+) RETURNING updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	activity, err := NewActivityRepository(conn).Update(context.Background(), &domain.Activity{ID: activityID, OrganizationID: orgID})
	require.NoError(t, err)
	assert.Nil(t, activity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_List_TaskFilters(t *testing.T) {
	conn, mock := newMockConn(t)
	pinned := true
	assignee := "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM crm_activities a WHERE a.deleted_at IS NULL AND a.organization_id = \$1 AND a.assigned_to_id = \$2 AND a.priority = \$3 AND a.is_pinned = \$4 AND a.completed = FALSE AND a.due_date < NOW\(\)`).
		WithArgs(orgID, assignee, "urgent", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT a.id, (.+) ORDER BY a.is_pinned DESC, a.priority ASC LIMIT 20 OFFSET 0`).
		WillReturnRows(activityRows())

	activities, total, err := NewActivityRepository(conn).List(context.Background(), orgID, domain.ActivityFilter{
		PageParams:   domain.PageParams{SortBy: "priority", SortOrder: domain.SortAsc}.Normalize(),
		AssignedToID: assignee,
		Priority:     "urgent",
		Pinned:       &pinned,
		Overdue:      true,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, activities)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Create_DefaultsPriority(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO crm_activities \((.+)assigned_to_id,priority,is_pinned,tags\)`).
		WithArgs(orgID, nil, domain.ActivityTypeNote, "Resumo da reunião", nil, nil, false, nil,
			nil, nil, nil, nil, nil, domain.PriorityMedium, true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(activityID, now, now))

	activity, err := NewActivityRepository(conn).Create(context.Background(), &domain.Activity{
		OrganizationID: orgID,
		Type:           domain.ActivityTypeNote,
		Title:          "Resumo da reunião",
		IsPinned:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, activity.Priority)
	assert.Equal(t, activityID, activity.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
