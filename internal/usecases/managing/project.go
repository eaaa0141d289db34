package managing

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

//go:generate mockgen -source=project.go -destination=mocks/project.go -package=mocks

type ProjectManager interface {
	List(ctx context.Context, organizationID string, filter domain.ProjectFilter) (*domain.Page[*domain.Project], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Project, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateProjectRequest) (*domain.Project, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateProjectRequest) (*domain.Project, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type ProjectService struct {
	projectRepo repository.ProjectRepository
	now         func() time.Time
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectManager {
	return &ProjectService{
		projectRepo: projectRepo,
		now:         time.Now,
	}
}

func (s *ProjectService) List(ctx context.Context, organizationID string, filter domain.ProjectFilter) (*domain.Page[*domain.Project], error) {
	filter.PageParams = filter.PageParams.Normalize()

	projects, total, err := s.projectRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar projetos")
		return nil, classify(err, domain.EntityProject)
	}

	return &domain.Page[*domain.Project]{
		Items:      projects,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *ProjectService) Get(ctx context.Context, organizationID, id string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityProject)
	}
	if project == nil {
		return nil, notFound(domain.EntityProject, id)
	}

	return project, nil
}

func (s *ProjectService) Create(ctx context.Context, organizationID, userID string, req domain.CreateProjectRequest) (*domain.Project, error) {
	if err := checkDueDate(req.StartDate, req.DueDate); err != nil {
		return nil, err
	}

	project := &domain.Project{
		OrganizationID:   organizationID,
		OwnerID:          ownerOrCaller(req.OwnerID, userID),
		ProjectManagerID: req.ProjectManagerID,
		CompanyID:        req.CompanyID,
		DealID:           req.DealID,
		Name:             req.Name,
		Description:      req.Description,
		Status:           domain.ProjectStatusPlanning,
		Priority:         domain.PriorityMedium,
		StartDate:        req.StartDate,
		DueDate:          req.DueDate,
		Tags:             req.Tags,
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.EstimatedHours != nil {
		project.EstimatedHours.Decimal = *req.EstimatedHours
		project.EstimatedHours.Valid = true
	}
	project.SyncCompletion(s.now())

	created, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		return nil, classify(err, domain.EntityProject)
	}

	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, organizationID, id string, req domain.UpdateProjectRequest) (*domain.Project, error) {
	project, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	req.Apply(project)
	if err := checkDueDate(project.StartDate, project.DueDate); err != nil {
		return nil, err
	}
	project.SyncCompletion(s.now())

	updated, err := s.projectRepo.Update(ctx, project)
	if err != nil {
		return nil, classify(err, domain.EntityProject)
	}
	if updated == nil {
		return nil, notFound(domain.EntityProject, id)
	}

	logrus.WithFields(logrus.Fields{
		"project_id": id,
		"status":     updated.Status,
	}).Debug("Projeto atualizado")

	return updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.projectRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityProject)
	}
	if !deleted {
		return notFound(domain.EntityProject, id)
	}
	return nil
}

func checkDueDate(start, due *time.Time) error {
	if start != nil && due != nil && due.Before(*start) {
		return NewCRMError(ErrInvalidDateRange, apiErrors.ErrValidationFailed, "due_date deve ser igual ou posterior a start_date")
	}
	return nil
}
