package insighting

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMonths      = 6
	MaxMonths          = 24
	DefaultSearchLimit = 5
	MaxSearchLimit     = 20
)

// Service implementa Insighter sobre os repositórios do CRM
type Service struct {
	analyticsRepo repository.AnalyticsRepository
	contactRepo   repository.ContactRepository
	companyRepo   repository.CompanyRepository
	dealRepo      repository.DealRepository
	activityRepo  repository.ActivityRepository
	dashboard     cache.DashboardCache
}

func NewService(
	analyticsRepo repository.AnalyticsRepository,
	contactRepo repository.ContactRepository,
	companyRepo repository.CompanyRepository,
	dealRepo repository.DealRepository,
	activityRepo repository.ActivityRepository,
	dashboard cache.DashboardCache,
) *Service {
	return &Service{
		analyticsRepo: analyticsRepo,
		contactRepo:   contactRepo,
		companyRepo:   companyRepo,
		dealRepo:      dealRepo,
		activityRepo:  activityRepo,
		dashboard:     dashboard,
	}
}

func (s *Service) DashboardMetrics(ctx context.Context, organizationID string) (*domain.DashboardMetrics, error) {
	if metrics, ok := s.dashboard.Get(ctx, organizationID); ok {
		return metrics, nil
	}

	metrics, err := s.analyticsRepo.DashboardMetrics(ctx, organizationID)
	if err != nil {
		logrus.WithError(err).WithField("organization_id", organizationID).Error("Erro ao calcular métricas do dashboard")
		return nil, databaseError(err)
	}

	metrics.ConversionRate = rate(metrics.WonDeals, metrics.LostDeals)
	s.dashboard.Set(ctx, organizationID, metrics)

	return metrics, nil
}

// Pipeline devolve todas as etapas na ordem do funil, inclusive as vazias
func (s *Service) Pipeline(ctx context.Context, organizationID string) ([]domain.PipelineStage, error) {
	found, err := s.analyticsRepo.PipelineByStage(ctx, organizationID)
	if err != nil {
		return nil, databaseError(err)
	}

	byStage := make(map[domain.DealStage]domain.PipelineStage, len(found))
	for _, stage := range found {
		byStage[stage.Stage] = stage
	}

	stages := make([]domain.PipelineStage, 0, len(domain.DealStages))
	for _, stage := range domain.DealStages {
		current, ok := byStage[stage]
		if !ok {
			current = domain.PipelineStage{Stage: stage, TotalValue: decimal.Zero, WeightedValue: decimal.Zero}
		}
		stages = append(stages, current)
	}

	return stages, nil
}

func (s *Service) RevenueTrend(ctx context.Context, organizationID string, months int) ([]domain.MonthlyRevenue, error) {
	trend, err := s.analyticsRepo.RevenueTrend(ctx, organizationID, normalizeMonths(months))
	if err != nil {
		return nil, databaseError(err)
	}

	return trend, nil
}

func (s *Service) WinLoss(ctx context.Context, organizationID string, months int) ([]domain.WinLossMonth, error) {
	result, err := s.analyticsRepo.WinLoss(ctx, organizationID, normalizeMonths(months))
	if err != nil {
		return nil, databaseError(err)
	}

	for i := range result {
		result[i].WinRate = rate(result[i].Won, result[i].Lost)
	}

	return result, nil
}

func (s *Service) ActivitySummary(ctx context.Context, organizationID string) ([]domain.ActivitySummary, error) {
	summary, err := s.analyticsRepo.ActivitySummary(ctx, organizationID)
	if err != nil {
		return nil, databaseError(err)
	}

	return summary, nil
}

// Forecast considera apenas os negócios em aberto
func (s *Service) Forecast(ctx context.Context, organizationID string) (*domain.Forecast, error) {
	deals, err := s.dealRepo.ListForPipeline(ctx, organizationID)
	if err != nil {
		return nil, databaseError(err)
	}

	forecast := &domain.Forecast{
		TotalPipelineValue: decimal.Zero,
		WeightedForecast:   decimal.Zero,
		Stages:             make([]domain.PipelineStage, 0, len(domain.DealStages)),
	}

	index := make(map[domain.DealStage]int)
	for _, stage := range domain.DealStages {
		if stage.IsClosed() {
			continue
		}
		index[stage] = len(forecast.Stages)
		forecast.Stages = append(forecast.Stages, domain.PipelineStage{
			Stage:         stage,
			TotalValue:    decimal.Zero,
			WeightedValue: decimal.Zero,
		})
	}

	for _, deal := range deals {
		i, open := index[deal.Stage]
		if !open {
			continue
		}
		weighted := managing.Weighted(deal.Value, deal.Probability)

		stage := &forecast.Stages[i]
		stage.Count++
		stage.TotalValue = stage.TotalValue.Add(deal.Value)
		stage.WeightedValue = stage.WeightedValue.Add(weighted)

		forecast.OpenDeals++
		forecast.TotalPipelineValue = forecast.TotalPipelineValue.Add(deal.Value)
		forecast.WeightedForecast = forecast.WeightedForecast.Add(weighted)
	}

	return forecast, nil
}

// Search busca contatos, empresas e negócios em paralelo
func (s *Service) Search(ctx context.Context, organizationID, query string, limit int) (*domain.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, NewReportError(ErrEmptyQuery, apiErrors.ErrMissingRequiredData, "q")
	}
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	page := domain.PageParams{Page: 1, Limit: limit}
	results := &domain.SearchResults{Query: query}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		contacts, _, err := s.contactRepo.List(gctx, organizationID, domain.ContactFilter{PageParams: page, Search: query})
		results.Contacts = contacts
		return err
	})
	g.Go(func() error {
		companies, _, err := s.companyRepo.List(gctx, organizationID, domain.CompanyFilter{PageParams: page, Search: query})
		results.Companies = companies
		return err
	})
	g.Go(func() error {
		deals, _, err := s.dealRepo.List(gctx, organizationID, domain.DealFilter{PageParams: page, Search: query})
		results.Deals = deals
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("query", query).Error("Erro na busca global")
		return nil, databaseError(err)
	}

	results.Contacts = nonNil(results.Contacts)
	results.Companies = nonNil(results.Companies)
	results.Deals = nonNil(results.Deals)

	return results, nil
}

// rate é won / (won + lost) * 100 com duas casas; zero sem negócios fechados
func rate(won, lost int64) float64 {
	return utils.Percent(won, won+lost)
}

func normalizeMonths(months int) int {
	if months < 1 {
		return DefaultMonths
	}
	if months > MaxMonths {
		return MaxMonths
	}
	return months
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
