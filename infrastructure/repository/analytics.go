package repository

import (
	"context"

	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const dashboardMetricsSQL = `
SELECT
	(SELECT COUNT(*) FROM crm_deals WHERE organization_id = $1 AND deleted_at IS NULL),
	(SELECT COALESCE(SUM(value), 0) FROM crm_deals WHERE organization_id = $1 AND deleted_at IS NULL),
	(SELECT COUNT(*) FROM crm_deals WHERE organization_id = $1 AND deleted_at IS NULL AND stage = 'closed_won'),
	(SELECT COUNT(*) FROM crm_deals WHERE organization_id = $1 AND deleted_at IS NULL AND stage = 'closed_lost'),
	(SELECT COUNT(*) FROM crm_contacts WHERE organization_id = $1 AND deleted_at IS NULL AND status = 'active'),
	(SELECT COUNT(*) FROM crm_companies WHERE organization_id = $1 AND deleted_at IS NULL AND status <> 'inactive'),
	(SELECT COUNT(*) FROM crm_activities WHERE organization_id = $1 AND deleted_at IS NULL
		AND created_at >= DATE_TRUNC('week', NOW()))`

const pipelineSQL = `
SELECT stage, COUNT(*), COALESCE(SUM(value), 0), COALESCE(SUM(ROUND(value * probability / 100.0, 2)), 0)
FROM crm_deals
WHERE organization_id = $1 AND deleted_at IS NULL
GROUP BY stage`

// negócios ganhos sem data de fechamento usam updated_at
const revenueTrendSQL = `
SELECT TO_CHAR(m.month, 'YYYY-MM'), COALESCE(SUM(d.value), 0), COUNT(d.id)
FROM GENERATE_SERIES(DATE_TRUNC('month', NOW()) - ($2::int - 1) * INTERVAL '1 month',
	DATE_TRUNC('month', NOW()), INTERVAL '1 month') AS m(month)
LEFT JOIN crm_deals d
	ON d.organization_id = $1 AND d.deleted_at IS NULL AND d.stage = 'closed_won'
	AND DATE_TRUNC('month', COALESCE(d.actual_close_date, d.updated_at)) = m.month
GROUP BY m.month
ORDER BY m.month`

const winLossSQL = `
SELECT TO_CHAR(m.month, 'YYYY-MM'),
	COUNT(d.id) FILTER (WHERE d.stage = 'closed_won'),
	COUNT(d.id) FILTER (WHERE d.stage = 'closed_lost'),
	COALESCE(SUM(d.value) FILTER (WHERE d.stage = 'closed_won'), 0),
	COALESCE(SUM(d.value) FILTER (WHERE d.stage = 'closed_lost'), 0)
FROM GENERATE_SERIES(DATE_TRUNC('month', NOW()) - ($2::int - 1) * INTERVAL '1 month',
	DATE_TRUNC('month', NOW()), INTERVAL '1 month') AS m(month)
LEFT JOIN crm_deals d
	ON d.organization_id = $1 AND d.deleted_at IS NULL AND d.stage IN ('closed_won', 'closed_lost')
	AND DATE_TRUNC('month', COALESCE(d.actual_close_date, d.updated_at)) = m.month
GROUP BY m.month
ORDER BY m.month`

const activitySummarySQL = `
SELECT type,
	COUNT(*),
	COUNT(*) FILTER (WHERE completed),
	COUNT(*) FILTER (WHERE NOT completed),
	COUNT(*) FILTER (WHERE NOT completed AND due_date < NOW())
FROM crm_activities
WHERE organization_id = $1 AND deleted_at IS NULL
GROUP BY type
ORDER BY type`

//go:generate mockgen -source=analytics.go -destination=mocks/analytics.go -package=mocks

type AnalyticsRepository interface {
	DashboardMetrics(ctx context.Context, organizationID string) (*domain.DashboardMetrics, error)
	PipelineByStage(ctx context.Context, organizationID string) ([]domain.PipelineStage, error)
	RevenueTrend(ctx context.Context, organizationID string, months int) ([]domain.MonthlyRevenue, error)
	WinLoss(ctx context.Context, organizationID string, months int) ([]domain.WinLossMonth, error)
	ActivitySummary(ctx context.Context, organizationID string) ([]domain.ActivitySummary, error)
}

type analyticsRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsRepository(conn *postgres.Connection) AnalyticsRepository {
	return &analyticsRepository{
		conn: conn,
	}
}

func (r *analyticsRepository) DashboardMetrics(ctx context.Context, organizationID string) (*domain.DashboardMetrics, error) {
	var m domain.DashboardMetrics
	err := r.conn.QueryRowContext(ctx, dashboardMetricsSQL, organizationID).Scan(
		&m.TotalDeals,
		&m.TotalValue,
		&m.WonDeals,
		&m.LostDeals,
		&m.ActiveContacts,
		&m.ActiveCompanies,
		&m.ActivitiesThisWeek,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// PipelineByStage devolve só as etapas com negócios; o serviço completa as demais
func (r *analyticsRepository) PipelineByStage(ctx context.Context, organizationID string) ([]domain.PipelineStage, error) {
	rows, err := r.conn.QueryContext(ctx, pipelineSQL, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]domain.PipelineStage, 0)
	for rows.Next() {
		var (
			s     domain.PipelineStage
			stage string
		)
		if err := rows.Scan(&stage, &s.Count, &s.TotalValue, &s.WeightedValue); err != nil {
			return nil, err
		}
		s.Stage = domain.DealStage(stage)
		stages = append(stages, s)
	}

	return stages, rows.Err()
}

func (r *analyticsRepository) RevenueTrend(ctx context.Context, organizationID string, months int) ([]domain.MonthlyRevenue, error) {
	rows, err := r.conn.QueryContext(ctx, revenueTrendSQL, organizationID, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trend := make([]domain.MonthlyRevenue, 0, months)
	for rows.Next() {
		var m domain.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Deals); err != nil {
			return nil, err
		}
		trend = append(trend, m)
	}

	return trend, rows.Err()
}

func (r *analyticsRepository) WinLoss(ctx context.Context, organizationID string, months int) ([]domain.WinLossMonth, error) {
	rows, err := r.conn.QueryContext(ctx, winLossSQL, organizationID, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.WinLossMonth, 0, months)
	for rows.Next() {
		var m domain.WinLossMonth
		if err := rows.Scan(&m.Month, &m.Won, &m.Lost, &m.WonValue, &m.LostValue); err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, rows.Err()
}

func (r *analyticsRepository) ActivitySummary(ctx context.Context, organizationID string) ([]domain.ActivitySummary, error) {
	rows, err := r.conn.QueryContext(ctx, activitySummarySQL, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := make([]domain.ActivitySummary, 0)
	for rows.Next() {
		var (
			s            domain.ActivitySummary
			activityType string
		)
		if err := rows.Scan(&activityType, &s.Total, &s.Completed, &s.Pending, &s.Overdue); err != nil {
			return nil, err
		}
		s.Type = domain.ActivityType(activityType)
		summary = append(summary, s)
	}

	return summary, rows.Err()
}
