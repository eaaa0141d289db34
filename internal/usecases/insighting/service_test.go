package insighting

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cachemocks "github.com/vfg2006/crm-api/infrastructure/cache/mocks"
	"github.com/vfg2006/crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const orgID = "11111111-1111-1111-1111-111111111111"

type serviceMocks struct {
	analytics  *mocks.MockAnalyticsRepository
	contacts   *mocks.MockContactRepository
	companies  *mocks.MockCompanyRepository
	deals      *mocks.MockDealRepository
	activities *mocks.MockActivityRepository
	dashboard  *cachemocks.MockDashboardCache
}

func newService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		analytics:  mocks.NewMockAnalyticsRepository(ctrl),
		contacts:   mocks.NewMockContactRepository(ctrl),
		companies:  mocks.NewMockCompanyRepository(ctrl),
		deals:      mocks.NewMockDealRepository(ctrl),
		activities: mocks.NewMockActivityRepository(ctrl),
		dashboard:  cachemocks.NewMockDashboardCache(ctrl),
	}
	return NewService(m.analytics, m.contacts, m.companies, m.deals, m.activities, m.dashboard), m
}

func TestService_DashboardMetrics(t *testing.T) {
	tests := []struct {
		name     string
		won      int64
		lost     int64
		wantRate float64
	}{
		{name: "sem negócios fechados", wantRate: 0},
		{name: "dois terços", won: 2, lost: 1, wantRate: 66.67},
		{name: "todos ganhos", won: 4, wantRate: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newService(t)

			m.dashboard.EXPECT().Get(gomock.Any(), orgID).Return(nil, false)
			m.analytics.EXPECT().DashboardMetrics(gomock.Any(), orgID).
				Return(&domain.DashboardMetrics{WonDeals: tt.won, LostDeals: tt.lost, TotalValue: decimal.Zero}, nil)
			m.dashboard.EXPECT().Set(gomock.Any(), orgID, gomock.Any())

			metrics, err := service.DashboardMetrics(context.Background(), orgID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, metrics.ConversionRate)
		})
	}
}

func TestService_DashboardMetrics_CacheHit(t *testing.T) {
	service, m := newService(t)
	cached := &domain.DashboardMetrics{TotalDeals: 7}

	m.dashboard.EXPECT().Get(gomock.Any(), orgID).Return(cached, true)

	metrics, err := service.DashboardMetrics(context.Background(), orgID)
	require.NoError(t, err)
	assert.Same(t, cached, metrics)
}

func TestService_DashboardMetrics_DatabaseError(t *testing.T) {
	service, m := newService(t)

	m.dashboard.EXPECT().Get(gomock.Any(), orgID).Return(nil, false)
	m.analytics.EXPECT().DashboardMetrics(gomock.Any(), orgID).Return(nil, errors.New("connection refused"))

	_, err := service.DashboardMetrics(context.Background(), orgID)

	var reportErr *ReportError
	require.True(t, errors.As(err, &reportErr))
	assert.Equal(t, apiErrors.ErrDatabaseOperation, reportErr.Code)
}

func TestService_Pipeline_FillsMissingStages(t *testing.T) {
	service, m := newService(t)

	m.analytics.EXPECT().PipelineByStage(gomock.Any(), orgID).Return([]domain.PipelineStage{
		{Stage: domain.DealStageNegotiation, Count: 2, TotalValue: decimal.NewFromInt(500), WeightedValue: decimal.NewFromInt(375)},
	}, nil)

	stages, err := service.Pipeline(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, stages, len(domain.DealStages))
	for i, stage := range domain.DealStages {
		assert.Equal(t, stage, stages[i].Stage)
	}
	assert.Equal(t, int64(2), stages[3].Count)
	assert.Zero(t, stages[0].Count)
}

func TestService_RevenueTrend_NormalizesMonths(t *testing.T) {
	tests := []struct {
		months int
		want   int
	}{
		{months: 0, want: DefaultMonths},
		{months: 3, want: 3},
		{months: 120, want: MaxMonths},
	}

	for _, tt := range tests {
		service, m := newService(t)
		m.analytics.EXPECT().RevenueTrend(gomock.Any(), orgID, tt.want).Return([]domain.MonthlyRevenue{}, nil)

		_, err := service.RevenueTrend(context.Background(), orgID, tt.months)
		assert.NoError(t, err)
	}
}

func TestService_WinLoss_ComputesRate(t *testing.T) {
	service, m := newService(t)

	m.analytics.EXPECT().WinLoss(gomock.Any(), orgID, 2).Return([]domain.WinLossMonth{
		{Month: "2026-09"},
		{Month: "2026-10", Won: 3, Lost: 1},
	}, nil)

	result, err := service.WinLoss(context.Background(), orgID, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result[0].WinRate)
	assert.Equal(t, 75.0, result[1].WinRate)
}

func TestService_Forecast(t *testing.T) {
	service, m := newService(t)

	m.deals.EXPECT().ListForPipeline(gomock.Any(), orgID).Return([]*domain.Deal{
		{Stage: domain.DealStageLead, Value: decimal.NewFromInt(1000), Probability: 10},
		{Stage: domain.DealStageNegotiation, Value: decimal.NewFromInt(4000), Probability: 75},
		{Stage: domain.DealStageClosedWon, Value: decimal.NewFromInt(9000), Probability: 100},
	}, nil)

	forecast, err := service.Forecast(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), forecast.OpenDeals)
	assert.True(t, decimal.NewFromInt(5000).Equal(forecast.TotalPipelineValue))
	assert.True(t, decimal.NewFromInt(3100).Equal(forecast.WeightedForecast))
	require.Len(t, forecast.Stages, 4)
	for _, stage := range forecast.Stages {
		assert.False(t, stage.Stage.IsClosed())
	}
}

func TestService_Search(t *testing.T) {
	t.Run("busca nas três entidades", func(t *testing.T) {
		service, m := newService(t)

		m.contacts.EXPECT().List(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f domain.ContactFilter) ([]*domain.Contact, int64, error) {
				assert.Equal(t, "acme", f.Search)
				assert.Equal(t, DefaultSearchLimit, f.Limit)
				return []*domain.Contact{{ID: "c1"}}, 1, nil
			})
		m.companies.EXPECT().List(gomock.Any(), orgID, gomock.Any()).Return(nil, int64(0), nil)
		m.deals.EXPECT().List(gomock.Any(), orgID, gomock.Any()).Return([]*domain.Deal{{ID: "d1"}}, int64(1), nil)

		results, err := service.Search(context.Background(), orgID, "  acme ", 0)
		require.NoError(t, err)
		assert.Equal(t, "acme", results.Query)
		assert.Len(t, results.Contacts, 1)
		assert.NotNil(t, results.Companies)
		assert.Empty(t, results.Companies)
		assert.Len(t, results.Deals, 1)
	})

	t.Run("termo vazio", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Search(context.Background(), orgID, "   ", 5)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	})
}

func TestService_Export(t *testing.T) {
	t.Run("contatos em csv", func(t *testing.T) {
		service, m := newService(t)
		email := "ada@acme.com"
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		m.contacts.EXPECT().List(gomock.Any(), orgID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f domain.ContactFilter) ([]*domain.Contact, int64, error) {
				assert.Equal(t, 1, f.Page)
				assert.Equal(t, domain.MaxPageLimit, f.Limit)
				return []*domain.Contact{{
					FirstName: "Ada", LastName: "Lovelace, PhD", Email: &email, Status: domain.ContactStatusActive,
					LeadScore: 88, LeadGrade: "A", Tags: []string{"vip", "tech"}, CreatedAt: created,
				}}, 1, nil
			})

		var buf bytes.Buffer
		rows, err := service.Export(context.Background(), orgID, domain.EntityContact, &buf)
		require.NoError(t, err)
		assert.Equal(t, 1, rows)

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, exportHeaders[domain.EntityContact], records[0])
		assert.Equal(t, "Ada Lovelace, PhD", records[1][0])
		assert.Equal(t, "ada@acme.com", records[1][1])
		assert.Equal(t, "88", records[1][6])
		assert.Equal(t, "vip; tech", records[1][8])
		assert.Equal(t, "2026-01-02T03:04:05Z", records[1][9])
	})

	t.Run("percorre as páginas", func(t *testing.T) {
		service, m := newService(t)

		first := make([]*domain.Deal, domain.MaxPageLimit)
		for i := range first {
			first[i] = &domain.Deal{Title: "d", Value: decimal.NewFromInt(1)}
		}
		gomock.InOrder(
			m.deals.EXPECT().List(gomock.Any(), orgID, gomock.Any()).Return(first, int64(domain.MaxPageLimit+1), nil),
			m.deals.EXPECT().List(gomock.Any(), orgID, gomock.Any()).
				Return([]*domain.Deal{{Title: "último", Value: decimal.NewFromInt(2)}}, int64(domain.MaxPageLimit+1), nil),
		)

		var buf bytes.Buffer
		rows, err := service.Export(context.Background(), orgID, domain.EntityDeal, &buf)
		require.NoError(t, err)
		assert.Equal(t, domain.MaxPageLimit+1, rows)
	})

	t.Run("entidade não suportada", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.Export(context.Background(), orgID, domain.EntityCampaign, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUnsupportedExport)
		assert.False(t, ExportableEntity(domain.EntityCampaign))
	})
}
