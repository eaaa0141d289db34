package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func TestAnalyticsRepository_DashboardMetrics(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`SELECT \(SELECT COUNT\(\*\) FROM crm_deals`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"a", "b", "c", "d", "e", "f", "g"}).
			AddRow(12, "150000.00", 3, 1, 40, 9, 5))

	metrics, err := NewAnalyticsRepository(conn).DashboardMetrics(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, int64(12), metrics.TotalDeals)
	assert.True(t, decimal.NewFromInt(150000).Equal(metrics.TotalValue))
	assert.Equal(t, int64(3), metrics.WonDeals)
	assert.Equal(t, int64(1), metrics.LostDeals)
	assert.Equal(t, int64(40), metrics.ActiveContacts)
	assert.Equal(t, int64(9), metrics.ActiveCompanies)
	assert.Equal(t, int64(5), metrics.ActivitiesThisWeek)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_PipelineByStage(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery(`SELECT stage, COUNT\(\*\), COALESCE\(SUM\(value\), 0\), COALESCE\(SUM\(ROUND\(value \* probability / 100\.0, 2\)\), 0\)`).
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"stage", "count", "total", "weighted"}).
			AddRow("proposal", 2, "10000.00", "5000.00").
			AddRow("closed_won", 1, "8000.00", "8000.00"))

	stages, err := NewAnalyticsRepository(conn).PipelineByStage(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, domain.DealStageProposal, stages[0].Stage)
	assert.True(t, decimal.NewFromInt(5000).Equal(stages[0].WeightedValue))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_RevenueTrend(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery("GENERATE_SERIES").
		WithArgs(orgID, 3).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue", "deals"}).
			AddRow("2026-08", "0", 0).
			AddRow("2026-09", "1200.50", 2).
			AddRow("2026-10", "300.00", 1))

	trend, err := NewAnalyticsRepository(conn).RevenueTrend(context.Background(), orgID, 3)
	require.NoError(t, err)
	require.Len(t, trend, 3)
	assert.Equal(t, "2026-09", trend[1].Month)
	assert.Equal(t, int64(2), trend[1].Deals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepository_ActivitySummary(t *testing.T) {
	conn, mock := newMockConn(t)

	mock.ExpectQuery("FROM crm_activities").
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"type", "total", "completed", "pending", "overdue"}).
			AddRow("call", 10, 7, 3, 1))

	summary, err := NewAnalyticsRepository(conn).ActivitySummary(context.Background(), orgID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, domain.ActivityTypeCall, summary[0].Type)
	assert.Equal(t, int64(1), summary[0].Overdue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
