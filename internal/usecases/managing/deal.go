package managing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

const defaultCurrency = "USD"

var hundred = decimal.NewFromInt(100)

//go:generate mockgen -source=deal.go -destination=mocks/deal.go -package=mocks

type DealManager interface {
	List(ctx context.Context, organizationID string, filter domain.DealFilter) (*domain.Page[*domain.Deal], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Deal, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateDealRequest) (*domain.Deal, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateDealRequest) (*domain.Deal, error)
	UpdateStage(ctx context.Context, organizationID, userID, id string, req domain.UpdateStageRequest) (*domain.Deal, error)
	Delete(ctx context.Context, organizationID, id string) error
	Pipeline(ctx context.Context, organizationID string) ([]domain.PipelineStage, error)
}

type DealService struct {
	dealRepo  repository.DealRepository
	dashboard cache.DashboardCache
	now       func() time.Time
}

func NewDealService(dealRepo repository.DealRepository, dashboard cache.DashboardCache) DealManager {
	return &DealService{
		dealRepo:  dealRepo,
		dashboard: dashboard,
		now:       time.Now,
	}
}

func (s *DealService) List(ctx context.Context, organizationID string, filter domain.DealFilter) (*domain.Page[*domain.Deal], error) {
	filter.PageParams = filter.PageParams.Normalize()

	deals, total, err := s.dealRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar negócios")
		return nil, classify(err, domain.EntityDeal)
	}

	return &domain.Page[*domain.Deal]{
		Items:      deals,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *DealService) Get(ctx context.Context, organizationID, id string) (*domain.Deal, error) {
	deal, err := s.dealRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}
	if deal == nil {
		return nil, notFound(domain.EntityDeal, id)
	}

	return deal, nil
}

func (s *DealService) Create(ctx context.Context, organizationID, userID string, req domain.CreateDealRequest) (*domain.Deal, error) {
	deal := &domain.Deal{
		OrganizationID:    organizationID,
		OwnerID:           ownerOrCaller(req.OwnerID, userID),
		Title:             req.Title,
		Value:             decimal.Zero,
		Currency:          defaultCurrency,
		Stage:             domain.DealStageLead,
		ExpectedCloseDate: req.ExpectedCloseDate,
		ContactID:         req.ContactID,
		CompanyID:         req.CompanyID,
		LostReason:        req.LostReason,
		Tags:              req.Tags,
		Notes:             req.Notes,
	}
	if req.Value != nil {
		deal.Value = *req.Value
	}
	if req.Currency != nil {
		deal.Currency = *req.Currency
	}
	if req.Stage != nil {
		deal.Stage = *req.Stage
	}

	deal.Probability = deal.Stage.DefaultProbability()
	if req.Probability != nil {
		deal.Probability = *req.Probability
	}
	s.syncCloseDate(deal)

	created, err := s.dealRepo.Create(ctx, deal)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return created, nil
}

func (s *DealService) Update(ctx context.Context, organizationID, id string, req domain.UpdateDealRequest) (*domain.Deal, error) {
	deal, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	previousStage := deal.Stage
	req.Apply(deal)

	if deal.Stage != previousStage && req.Probability == nil {
		deal.Probability = deal.Stage.DefaultProbability()
	}
	if req.ActualCloseDate == nil {
		s.syncCloseDate(deal)
	}

	updated, err := s.dealRepo.Update(ctx, deal)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}
	if updated == nil {
		return nil, notFound(domain.EntityDeal, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return updated, nil
}

// UpdateStage move o negócio para qualquer etapa e registra a mudança como atividade concluída
func (s *DealService) UpdateStage(ctx context.Context, organizationID, userID, id string, req domain.UpdateStageRequest) (*domain.Deal, error) {
	deal, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	previousStage := deal.Stage
	deal.Stage = req.Stage
	deal.Probability = req.Stage.DefaultProbability()
	if req.Probability != nil {
		deal.Probability = *req.Probability
	}
	if req.LostReason != nil {
		deal.LostReason = req.LostReason
	}
	s.syncCloseDate(deal)

	now := s.now()
	description := fmt.Sprintf("Etapa alterada de %s para %s", previousStage, req.Stage)
	activity := &domain.Activity{
		OrganizationID: organizationID,
		OwnerID:        ownerOrCaller(nil, userID),
		Type:           domain.ActivityTypeNote,
		Title:          "Negócio atualizado",
		Description:    &description,
		Completed:      true,
		CompletedAt:    &now,
		ContactID:      deal.ContactID,
		CompanyID:      deal.CompanyID,
		DealID:         &deal.ID,
		Tags:           []string{},
	}

	updated, err := s.dealRepo.UpdateStage(ctx, deal, activity)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}
	if updated == nil {
		return nil, notFound(domain.EntityDeal, id)
	}

	logrus.WithFields(logrus.Fields{
		"deal_id": id,
		"from":    previousStage,
		"to":      req.Stage,
	}).Info("Etapa do negócio alterada")

	s.dashboard.Invalidate(ctx, organizationID)
	return updated, nil
}

func (s *DealService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.dealRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityDeal)
	}
	if !deleted {
		return notFound(domain.EntityDeal, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return nil
}

// Pipeline agrupa os negócios por etapa na ordem do funil, incluindo etapas vazias
func (s *DealService) Pipeline(ctx context.Context, organizationID string) ([]domain.PipelineStage, error) {
	deals, err := s.dealRepo.ListForPipeline(ctx, organizationID)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}

	byStage := make(map[domain.DealStage]*domain.PipelineStage, len(domain.DealStages))
	stages := make([]domain.PipelineStage, len(domain.DealStages))
	for i, stage := range domain.DealStages {
		stages[i] = domain.PipelineStage{
			Stage:         stage,
			TotalValue:    decimal.Zero,
			WeightedValue: decimal.Zero,
			Deals:         []*domain.Deal{},
		}
		byStage[stage] = &stages[i]
	}

	for _, deal := range deals {
		group, ok := byStage[deal.Stage]
		if !ok {
			continue
		}
		group.Count++
		group.TotalValue = group.TotalValue.Add(deal.Value)
		group.WeightedValue = group.WeightedValue.Add(Weighted(deal.Value, deal.Probability))
		group.Deals = append(group.Deals, deal)
	}

	return stages, nil
}

// Weighted é o valor ponderado pela probabilidade: value * probability / 100
func Weighted(value decimal.Decimal, probability int) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(int64(probability))).Div(hundred).Round(2)
}

// syncCloseDate preenche actual_close_date ao fechar e limpa ao reabrir
func (s *DealService) syncCloseDate(deal *domain.Deal) {
	if !deal.Stage.IsClosed() {
		deal.ActualCloseDate = nil
		return
	}
	if deal.ActualCloseDate == nil {
		now := s.now()
		deal.ActualCloseDate = &now
	}
}
