package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	assistingmocks "github.com/vfg2006/crm-api/internal/usecases/assisting/mocks"
	"go.uber.org/mock/gomock"
)

func leadScoringConfig() *config.Config {
	return &config.Config{
		LeadScoringSync: config.LeadScoringSync{
			CronSchedule:      "0 3 * * *",
			StaleAfterDays:    30,
			BatchSize:         10,
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
	}
}

func TestLeadScoringSyncService_scoreStaleContacts(t *testing.T) {
	now := time.Date(2026, 10, 17, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		setup      func(m *assistingmocks.MockLeadScorer)
		wantScored int64
		wantFailed int64
	}{
		{
			name: "pontua todos os contatos do lote",
			setup: func(m *assistingmocks.MockLeadScorer) {
				m.EXPECT().StaleContacts(gomock.Any(), now.AddDate(0, 0, -30), 10).Return([]*domain.Contact{
					{ID: "c1"}, {ID: "c2"}, {ID: "c3"},
				}, nil)
				m.EXPECT().Rescore(gomock.Any(), gomock.Any()).
					Return(&domain.LeadScoreResult{Score: 70, Grade: "B"}, nil).Times(3)
			},
			wantScored: 3,
		},
		{
			name: "falhas individuais não interrompem o lote",
			setup: func(m *assistingmocks.MockLeadScorer) {
				m.EXPECT().StaleContacts(gomock.Any(), gomock.Any(), 10).Return([]*domain.Contact{{ID: "c1"}, {ID: "c2"}}, nil)
				m.EXPECT().Rescore(gomock.Any(), &domain.Contact{ID: "c1"}).Return(nil, errors.New("529"))
				m.EXPECT().Rescore(gomock.Any(), &domain.Contact{ID: "c2"}).Return(&domain.LeadScoreResult{Score: 40}, nil)
			},
			wantScored: 1,
			wantFailed: 1,
		},
		{
			name: "nenhum contato pendente",
			setup: func(m *assistingmocks.MockLeadScorer) {
				m.EXPECT().StaleContacts(gomock.Any(), gomock.Any(), 10).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scorer := assistingmocks.NewMockLeadScorer(ctrl)
			tt.setup(scorer)

			service := NewLeadScoringSyncService(scorer, leadScoringConfig())
			service.now = func() time.Time { return now }

			service.scoreStaleContacts(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantScored, status["last_sync_scored"])
			assert.Equal(t, tt.wantFailed, status["last_sync_failed"])
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, now, status["last_sync_completed_at"])
		})
	}
}

func TestLeadScoringSyncService_SkipsWhenRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	scorer := assistingmocks.NewMockLeadScorer(ctrl)

	service := NewLeadScoringSyncService(scorer, leadScoringConfig())
	service.syncRunning = true

	// nenhuma chamada ao scorer é esperada
	service.scoreStaleContacts(context.Background())
	assert.True(t, service.GetStatus()["sync_running"].(bool))
}

func TestLeadScoringSyncService_Start(t *testing.T) {
	t.Run("desabilitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := leadScoringConfig()
		cfg.LeadScoringSync.Enabled = false

		service := NewLeadScoringSyncService(assistingmocks.NewMockLeadScorer(ctrl), cfg)
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("IA não configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scorer := assistingmocks.NewMockLeadScorer(ctrl)
		scorer.EXPECT().Enabled().Return(false)

		service := NewLeadScoringSyncService(scorer, leadScoringConfig())
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("cron inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scorer := assistingmocks.NewMockLeadScorer(ctrl)
		scorer.EXPECT().Enabled().Return(true)
		cfg := leadScoringConfig()
		cfg.LeadScoringSync.CronSchedule = "todo dia"

		service := NewLeadScoringSyncService(scorer, cfg)
		assert.Error(t, service.Start(context.Background()))
	})
}
