package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

const campaignID = "5e6f7a8b-1c2d-4e3f-8a9b-0c1d2e3f4a55"

func TestCampaignRepository_AddContacts(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectExec(`INSERT INTO crm_campaign_contacts \(campaign_id,contact_id\) SELECT \$1::uuid, ct.id FROM crm_contacts ct WHERE ct.deleted_at IS NULL AND ct.organization_id = \$2 AND ct.id = ANY\(\$3::uuid\[\]\) ON CONFLICT \(campaign_id, contact_id\) DO NOTHING`).
		WithArgs(campaignID, orgID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	added, err := NewCampaignRepository(conn).AddContacts(context.Background(), orgID, campaignID, []string{contactID, companyID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_AddContactsBySegment(t *testing.T) {
	conn, mock := newMockConn(t)
	min := 60
	company := "acme"

	segment := domain.ContactSegment{
		Tags:      []string{"vip"},
		LeadScore: &domain.LeadScoreRange{Min: &min},
		LeadGrade: []string{"A"},
		Company:   &company,
	}

	mock.ExpectExec(`SELECT \$1::uuid, ct.id FROM crm_contacts ct LEFT JOIN crm_companies co (.+) WHERE ct.deleted_at IS NULL AND ct.organization_id = \$2 AND ct.tags && \$3 AND ct.lead_score >= \$4 AND \(ct.lead_score BETWEEN \$5 AND \$6\) AND co.name ILIKE \$7`).
		WithArgs(campaignID, orgID, sqlmock.AnyArg(), 60, 80, 100, "%acme%").
		WillReturnResult(sqlmock.NewResult(0, 3))

	added, err := NewCampaignRepository(conn).AddContactsBySegment(context.Background(), orgID, campaignID, segment)
	require.NoError(t, err)
	assert.Equal(t, int64(3), added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_RefreshProgress(t *testing.T) {
	goal := func(g domain.CampaignGoalType) *domain.CampaignGoalType { return &g }

	tests := []struct {
		name     string
		goalType *domain.CampaignGoalType
		setup    func(mock sqlmock.Sqlmock)
		want     decimal.Decimal
	}{
		{
			name:     "receita soma negócios ganhos dos contatos da campanha",
			goalType: goal(domain.GoalTypeRevenue),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE crm_campaigns SET current_progress = \(SELECT COALESCE\(SUM\(d.value\), 0\) FROM crm_deals d JOIN crm_campaign_contacts cc (.+) d.stage = \$3\)`).
					WithArgs(campaignID, orgID, "closed_won", campaignID, orgID).
					WillReturnRows(sqlmock.NewRows([]string{"current_progress"}).AddRow("42000.00"))
			},
			want: decimal.NewFromInt(42000),
		},
		{
			name:     "atividades vinculadas à campanha",
			goalType: goal(domain.GoalTypeActivities),
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SET current_progress = \(SELECT COUNT\(\*\) FROM crm_activities a`).
					WillReturnRows(sqlmock.NewRows([]string{"current_progress"}).AddRow(7))
			},
			want: decimal.NewFromInt(7),
		},
		{
			name:  "sem meta mantém o progresso atual",
			setup: func(mock sqlmock.Sqlmock) {},
			want:  decimal.NewFromInt(5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)
			tt.setup(mock)

			campaign := &domain.Campaign{
				ID:              campaignID,
				OrganizationID:  orgID,
				GoalType:        tt.goalType,
				CurrentProgress: decimal.NewFromInt(5),
			}

			progress, err := NewCampaignRepository(conn).RefreshProgress(context.Background(), campaign)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(progress), "progresso %s", progress)
			assert.True(t, tt.want.Equal(campaign.CurrentProgress))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCampaignRepository_ListContacts(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery("FROM crm_campaign_contacts cc JOIN crm_contacts ct").
		WithArgs(campaignID).
		WillReturnRows(campaignContactRows().
			AddRow(campaignID, contactID, "Ana", "Souza", "ana@acme.com", 80, "pending", nil, nil, nil, now))

	contacts, err := NewCampaignRepository(conn).ListContacts(context.Background(), campaignID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Ana Souza", contacts[0].Name)
	assert.Equal(t, domain.CampaignContactPending, contacts[0].Status)
	assert.Nil(t, contacts[0].SentAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func campaignContactRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"campaign_id", "contact_id", "first_name", "last_name", "email", "lead_score",
		"status", "sent_at", "opened_at", "clicked_at", "added_at",
	})
}

func TestCampaignRepository_GetContact(t *testing.T) {
	conn, mock := newMockConn(t)
	now := time.Now()

	mock.ExpectQuery(`FROM crm_campaign_contacts cc JOIN crm_contacts ct (.+) WHERE cc.campaign_id = \$1 AND cc.contact_id = \$2`).
		WithArgs(campaignID, contactID).
		WillReturnRows(campaignContactRows().
			AddRow(campaignID, contactID, "Ana", "Souza", nil, 55, "opened", now, now, nil, now))
	mock.ExpectQuery(`FROM crm_campaign_contacts cc`).
		WithArgs(campaignID, companyID).
		WillReturnRows(campaignContactRows())

	repo := NewCampaignRepository(conn)

	cc, err := repo.GetContact(context.Background(), campaignID, contactID)
	require.NoError(t, err)
	require.NotNil(t, cc)
	assert.Equal(t, domain.CampaignContactOpened, cc.Status)
	assert.NotNil(t, cc.OpenedAt)
	assert.Nil(t, cc.ClickedAt)

	missing, err := repo.GetContact(context.Background(), campaignID, companyID)
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignRepository_UpdateContactTracking(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "vínculo atualizado", affected: 1, want: true},
		{name: "vínculo removido", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newMockConn(t)

			mock.ExpectExec(`UPDATE crm_campaign_contacts SET clicked_at = \$1, opened_at = \$2, sent_at = \$3, status = \$4 WHERE campaign_id = \$5 AND contact_id = \$6`).
				WithArgs(nil, now, now, "opened", campaignID, contactID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := NewCampaignRepository(conn).UpdateContactTracking(context.Background(), &domain.CampaignContact{
				CampaignID: campaignID,
				ContactID:  contactID,
				Status:     domain.CampaignContactOpened,
				SentAt:     &now,
				OpenedAt:   &now,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
