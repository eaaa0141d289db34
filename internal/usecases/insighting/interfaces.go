package insighting

import (
	"context"
	"io"

	"github.com/vfg2006/crm-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service.go -package=mocks

// Dashboarder define os indicadores resumidos da organização
type Dashboarder interface {
	// DashboardMetrics devolve os totais do painel, usando o cache quando disponível
	DashboardMetrics(ctx context.Context, organizationID string) (*domain.DashboardMetrics, error)
}

// Analyzer define os relatórios analíticos
type Analyzer interface {
	Pipeline(ctx context.Context, organizationID string) ([]domain.PipelineStage, error)
	RevenueTrend(ctx context.Context, organizationID string, months int) ([]domain.MonthlyRevenue, error)
	WinLoss(ctx context.Context, organizationID string, months int) ([]domain.WinLossMonth, error)
	ActivitySummary(ctx context.Context, organizationID string) ([]domain.ActivitySummary, error)
	Forecast(ctx context.Context, organizationID string) (*domain.Forecast, error)
}

// Searcher define a busca global
type Searcher interface {
	Search(ctx context.Context, organizationID, query string, limit int) (*domain.SearchResults, error)
}

// Exporter define a exportação de registros em CSV
type Exporter interface {
	// Export escreve o CSV da entidade em w e devolve a quantidade de linhas
	Export(ctx context.Context, organizationID string, entity domain.EntityType, w io.Writer) (int, error)
}

// Insighter é a interface completa usada pelos handlers
type Insighter interface {
	Dashboarder
	Analyzer
	Searcher
	Exporter
}
