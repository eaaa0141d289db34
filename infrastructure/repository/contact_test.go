package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

const contactID = "9a4e1d1e-8b9c-4a57-8f0e-7c5b2a1d3e44"

func contactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "organization_id", "owner_id", "company_id", "name", "first_name", "last_name",
		"email", "phone", "title", "status", "lead_source", "lead_score", "lead_scored_at",
		"tags", "notes", "created_at", "updated_at",
	})
}

func TestContactRepository_GetByID_FillsDerivedFields(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM crm_contacts ct LEFT JOIN crm_companies co").
		WithArgs(orgID, contactID).
		WillReturnRows(contactRows().AddRow(
			contactID, orgID, nil, companyID, "Acme", "Ana", "Souza",
			"ana@acme.com", nil, nil, "active", "website", 72, nil,
			"{vip}", nil, now, now,
		))

	contact, err := NewContactRepository(conn).GetByID(context.Background(), orgID, contactID)
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "Ana Souza", contact.Name)
	assert.Equal(t, "B", contact.LeadGrade)
	require.NotNil(t, contact.CompanyName)
	assert.Equal(t, "Acme", *contact.CompanyName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_List_Filters(t *testing.T) {
	minScore := 40

	tests := []struct {
		name      string
		filter    domain.ContactFilter
		countSQL  string
		countArgs int
	}{
		{
			name:      "sem filtros",
			filter:    domain.ContactFilter{PageParams: domain.PageParams{}.Normalize()},
			countSQL:  `SELECT COUNT\(\*\) FROM crm_contacts ct LEFT JOIN crm_companies co (.+) WHERE ct.deleted_at IS NULL AND ct.organization_id = \$1$`,
			countArgs: 1,
		},
		{
			name: "nota e score mínimo",
			filter: domain.ContactFilter{
				PageParams:   domain.PageParams{}.Normalize(),
				MinLeadScore: &minScore,
				LeadGrades:   []string{"A", "B", "X"},
			},
			countSQL:  `ct.lead_score >= \$2 AND \(ct.lead_score BETWEEN \$3 AND \$4 OR ct.lead_score BETWEEN \$5 AND \$6\)`,
			countArgs: 6,
		},
		{
			name: "busca pelo nome completo",
			filter: domain.ContactFilter{
				PageParams: domain.PageParams{}.Normalize(),
				Search:     "ana souza",
			},
			countSQL:  `\(ct.first_name \|\| ' ' \|\| ct.last_name\) ILIKE \$5`,
			countArgs: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)

			args := make([]driver.Value, tt.countArgs)
			for i := range args {
				args[i] = sqlmock.AnyArg()
			}
			mock.ExpectQuery(tt.countSQL).
				WithArgs(args...).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			mock.ExpectQuery("SELECT ct.id").
				WillReturnRows(contactRows())

			contacts, total, err := NewContactRepository(conn).List(context.Background(), orgID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(0), total)
			assert.Empty(t, contacts)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestContactRepository_ListForScoring(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()
	staleBefore := now.AddDate(0, 0, -7)

	mock.ExpectQuery(`WHERE ct.deleted_at IS NULL AND ct.status = \$1 AND \(ct.lead_scored_at IS NULL OR ct.lead_scored_at < \$2\) ORDER BY ct.lead_scored_at ASC NULLS FIRST, ct.created_at ASC LIMIT 50`).
		WithArgs("active", staleBefore).
		WillReturnRows(contactRows().AddRow(
			contactID, orgID, nil, nil, nil, "Ana", "", nil, nil, nil, "active", nil, 0, nil,
			"{}", nil, now, now,
		))

	contacts, err := NewContactRepository(conn).ListForScoring(context.Background(), staleBefore, 50)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "F", contacts[0].LeadGrade)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_UpdateLeadScore(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectExec(`UPDATE crm_contacts SET lead_score = \$1, lead_scored_at = NOW\(\), updated_at = NOW\(\)`).
		WithArgs(85, contactID, orgID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := NewContactRepository(conn).UpdateLeadScore(context.Background(), orgID, contactID, 85)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
