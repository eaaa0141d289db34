package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGradeForScore(t *testing.T) {
	tests := []struct {
		score int
		grade string
	}{
		{100, "A"}, {80, "A"}, {79, "B"}, {60, "B"}, {59, "C"},
		{40, "C"}, {39, "D"}, {20, "D"}, {19, "F"}, {0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, GradeForScore(tt.score), "score %d", tt.score)

		min, max, ok := ScoreRange(tt.grade)
		assert.True(t, ok)
		assert.True(t, tt.score >= min && tt.score <= max, "score %d fora do intervalo de %s", tt.score, tt.grade)
	}

	_, _, ok := ScoreRange("Z")
	assert.False(t, ok)
}

func TestDealStage(t *testing.T) {
	expected := map[DealStage]int{
		DealStageLead:        10,
		DealStageQualified:   25,
		DealStageProposal:    50,
		DealStageNegotiation: 75,
		DealStageClosedWon:   100,
		DealStageClosedLost:  0,
	}

	for _, stage := range DealStages {
		assert.True(t, stage.Valid())
		assert.Equal(t, expected[stage], stage.DefaultProbability())
	}

	assert.True(t, DealStageClosedWon.IsClosed())
	assert.True(t, DealStageClosedLost.IsClosed())
	assert.False(t, DealStageNegotiation.IsClosed())
	assert.False(t, DealStage("won").Valid())
}

func TestActivity_SetCompleted(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	a := &Activity{}

	a.SetCompleted(true, now)
	assert.True(t, a.Completed)
	assert.Equal(t, now, *a.CompletedAt)

	// marcar novamente mantém a data original
	a.SetCompleted(true, now.Add(time.Hour))
	assert.Equal(t, now, *a.CompletedAt)

	a.SetCompleted(false, now)
	assert.False(t, a.Completed)
	assert.Nil(t, a.CompletedAt)
}

func TestCampaign_ProgressPercent(t *testing.T) {
	c := Campaign{CurrentProgress: decimal.NewFromInt(25)}
	assert.Equal(t, 0.0, c.ProgressPercent())

	c.GoalValue = decimal.NewNullDecimal(decimal.NewFromInt(200))
	assert.Equal(t, 12.5, c.ProgressPercent())
}

func TestContact_Fill(t *testing.T) {
	c := &Contact{FirstName: "Ada", LastName: "Lovelace", LeadScore: 65}
	c.Fill()

	assert.Equal(t, "Ada Lovelace", c.Name)
	assert.Equal(t, "B", c.LeadGrade)
	assert.NotNil(t, c.Tags)
}

func TestRecordError(t *testing.T) {
	err := NewNotFoundError(EntityDeal, "d-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "deal d-1")
}

func TestUpdateCampaignContactRequest_Apply(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-24 * time.Hour)
	status := func(s CampaignContactStatus) *CampaignContactStatus { return &s }

	tests := []struct {
		name        string
		stored      CampaignContact
		req         UpdateCampaignContactRequest
		wantStatus  CampaignContactStatus
		wantSent    *time.Time
		wantOpened  *time.Time
		wantClicked *time.Time
	}{
		{
			name:       "enviado carimba sent_at",
			stored:     CampaignContact{Status: CampaignContactPending},
			req:        UpdateCampaignContactRequest{Status: status(CampaignContactSent)},
			wantStatus: CampaignContactSent,
			wantSent:   &now,
		},
		{
			name:        "clique implica abertura e envio sem sobrescrever envio anterior",
			stored:      CampaignContact{Status: CampaignContactSent, SentAt: &earlier},
			req:         UpdateCampaignContactRequest{Status: status(CampaignContactClicked)},
			wantStatus:  CampaignContactClicked,
			wantSent:    &earlier,
			wantOpened:  &now,
			wantClicked: &now,
		},
		{
			name:       "datas explícitas prevalecem",
			stored:     CampaignContact{Status: CampaignContactPending},
			req:        UpdateCampaignContactRequest{Status: status(CampaignContactOpened), SentAt: &earlier, OpenedAt: &earlier},
			wantStatus: CampaignContactOpened,
			wantSent:   &earlier,
			wantOpened: &earlier,
		},
		{
			name:       "bounce não carimba datas",
			stored:     CampaignContact{Status: CampaignContactPending},
			req:        UpdateCampaignContactRequest{Status: status(CampaignContactBounced)},
			wantStatus: CampaignContactBounced,
		},
		{
			name:       "só datas mantém o status",
			stored:     CampaignContact{Status: CampaignContactPending},
			req:        UpdateCampaignContactRequest{SentAt: &earlier},
			wantStatus: CampaignContactPending,
			wantSent:   &earlier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := tt.stored
			tt.req.Apply(&cc, now)

			assert.Equal(t, tt.wantStatus, cc.Status)
			assert.Equal(t, tt.wantSent, cc.SentAt)
			assert.Equal(t, tt.wantOpened, cc.OpenedAt)
			assert.Equal(t, tt.wantClicked, cc.ClickedAt)
		})
	}
}

func TestProject_SyncCompletion(t *testing.T) {
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	p := Project{Status: ProjectStatusCompleted}
	p.SyncCompletion(now)
	assert.Equal(t, &now, p.CompletionDate)

	p = Project{Status: ProjectStatusCompleted, CompletionDate: &earlier}
	p.SyncCompletion(now)
	assert.Equal(t, &earlier, p.CompletionDate)

	p.Status = ProjectStatusActive
	p.SyncCompletion(now)
	assert.Nil(t, p.CompletionDate)
}

func TestUpdateProjectRequest_Apply(t *testing.T) {
	hours := decimal.NewFromInt(12)
	status := ProjectStatusOnHold
	manager := "44444444-4444-4444-8444-444444444444"

	p := Project{Name: "Implantação", Status: ProjectStatusActive, Priority: PriorityLow}
	UpdateProjectRequest{Status: &status, ActualHours: &hours, ProjectManagerID: &manager}.Apply(&p)

	assert.Equal(t, "Implantação", p.Name)
	assert.Equal(t, ProjectStatusOnHold, p.Status)
	assert.Equal(t, PriorityLow, p.Priority)
	assert.True(t, p.ActualHours.Valid)
	assert.True(t, hours.Equal(p.ActualHours.Decimal))
	assert.Equal(t, &manager, p.ProjectManagerID)
	assert.False(t, p.EstimatedHours.Valid)
}
