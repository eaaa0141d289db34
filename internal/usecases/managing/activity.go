package managing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

//go:generate mockgen -source=activity.go -destination=mocks/activity.go -package=mocks

type ActivityManager interface {
	List(ctx context.Context, organizationID string, filter domain.ActivityFilter) (*domain.Page[*domain.Activity], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Activity, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateActivityRequest) (*domain.Activity, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateActivityRequest) (*domain.Activity, error)
	Complete(ctx context.Context, organizationID, id string, completed *bool) (*domain.Activity, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type ActivityService struct {
	activityRepo repository.ActivityRepository
	dashboard    cache.DashboardCache
	now          func() time.Time
}

func NewActivityService(activityRepo repository.ActivityRepository, dashboard cache.DashboardCache) ActivityManager {
	return &ActivityService{
		activityRepo: activityRepo,
		dashboard:    dashboard,
		now:          time.Now,
	}
}

func (s *ActivityService) List(ctx context.Context, organizationID string, filter domain.ActivityFilter) (*domain.Page[*domain.Activity], error) {
	filter.PageParams = filter.PageParams.Normalize()

	activities, total, err := s.activityRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar atividades")
		return nil, classify(err, domain.EntityActivity)
	}

	return &domain.Page[*domain.Activity]{
		Items:      activities,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *ActivityService) Get(ctx context.Context, organizationID, id string) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityActivity)
	}
	if activity == nil {
		return nil, notFound(domain.EntityActivity, id)
	}

	return activity, nil
}

func (s *ActivityService) Create(ctx context.Context, organizationID, userID string, req domain.CreateActivityRequest) (*domain.Activity, error) {
	activity := &domain.Activity{
		OrganizationID: organizationID,
		OwnerID:        ownerOrCaller(req.OwnerID, userID),
		Type:           req.Type,
		Title:          req.Title,
		Description:    req.Description,
		DueDate:        req.DueDate,
		ContactID:      req.ContactID,
		CompanyID:      req.CompanyID,
		DealID:         req.DealID,
		CampaignID:     req.CampaignID,
		AssignedToID:   req.AssignedToID,
		Priority:       domain.PriorityMedium,
		IsPinned:       req.IsPinned,
		Tags:           req.Tags,
	}
	if req.Priority != nil {
		activity.Priority = *req.Priority
	}
	activity.SetCompleted(req.Completed, s.now())

	created, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, classify(err, domain.EntityActivity)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return created, nil
}

func (s *ActivityService) Update(ctx context.Context, organizationID, id string, req domain.UpdateActivityRequest) (*domain.Activity, error) {
	activity, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	req.Apply(activity, s.now())

	return s.save(ctx, activity)
}

// Complete marca a atividade; sem valor explícito inverte o estado atual
func (s *ActivityService) Complete(ctx context.Context, organizationID, id string, completed *bool) (*domain.Activity, error) {
	activity, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	target := !activity.Completed
	if completed != nil {
		target = *completed
	}
	activity.SetCompleted(target, s.now())

	return s.save(ctx, activity)
}

func (s *ActivityService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.activityRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityActivity)
	}
	if !deleted {
		return notFound(domain.EntityActivity, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return nil
}

func (s *ActivityService) save(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	updated, err := s.activityRepo.Update(ctx, activity)
	if err != nil {
		return nil, classify(err, domain.EntityActivity)
	}
	if updated == nil {
		return nil, notFound(domain.EntityActivity, activity.ID)
	}

	s.dashboard.Invalidate(ctx, activity.OrganizationID)
	return updated, nil
}
