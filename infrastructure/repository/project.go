package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const projectsTable = "crm_projects pj"

var projectColumns = []string{
	"pj.id", "pj.organization_id", "pj.owner_id", "pj.project_manager_id", "pj.company_id", "pj.deal_id",
	"pj.name", "pj.description", "pj.project_status", "pj.priority", "pj.start_date", "pj.due_date",
	"pj.completion_date", "pj.estimated_hours", "pj.actual_hours", "pj.tags", "pj.created_at", "pj.updated_at",
}

var projectSortColumns = map[string]string{
	"name":       "pj.name",
	"status":     "pj.project_status",
	"priority":   "pj.priority",
	"start_date": "pj.start_date",
	"due_date":   "pj.due_date",
	"created_at": "pj.created_at",
	"updated_at": "pj.updated_at",
}

//go:generate mockgen -source=project.go -destination=mocks/project.go -package=mocks

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Project, error)
	List(ctx context.Context, organizationID string, filter domain.ProjectFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, project *domain.Project) (*domain.Project, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
}

type projectRepository struct {
	conn *postgres.Connection
}

func NewProjectRepository(conn *postgres.Connection) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query, args, err := psql.
		Insert("crm_projects").
		Columns("organization_id", "owner_id", "project_manager_id", "company_id", "deal_id", "name",
			"description", "project_status", "priority", "start_date", "due_date", "completion_date",
			"estimated_hours", "actual_hours", "tags").
		Values(project.OrganizationID, project.OwnerID, project.ProjectManagerID, project.CompanyID,
			project.DealID, project.Name, project.Description, project.Status, project.Priority,
			project.StartDate, project.DueDate, project.CompletionDate, project.EstimatedHours,
			project.ActualHours, tagsValue(project.Tags)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityProject)
	}

	project.Tags = emptyIfNil(project.Tags)
	return project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Project, error) {
	query, args, err := psql.
		Select(projectColumns...).
		From(projectsTable).
		Where(scope("pj", organizationID)).
		Where(squirrel.Eq{"pj.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	project, err := scanProject(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return project, nil
}

func (r *projectRepository) List(ctx context.Context, organizationID string, filter domain.ProjectFilter) ([]*domain.Project, int64, error) {
	base := psql.
		Select().
		From(projectsTable).
		Where(scope("pj", organizationID))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where(squirrel.Or{
			squirrel.ILike{"pj.name": pattern},
			squirrel.ILike{"pj.description": pattern},
		})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"pj.project_status": filter.Status})
	}
	if filter.Priority != "" {
		base = base.Where(squirrel.Eq{"pj.priority": filter.Priority})
	}
	if filter.CompanyID != "" {
		base = base.Where(squirrel.Eq{"pj.company_id": filter.CompanyID})
	}
	if filter.DealID != "" {
		base = base.Where(squirrel.Eq{"pj.deal_id": filter.DealID})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"pj.owner_id": filter.OwnerID})
	}
	if filter.ProjectManagerID != "" {
		base = base.Where(squirrel.Eq{"pj.project_manager_id": filter.ProjectManagerID})
	}
	if len(filter.Tags) > 0 {
		base = base.Where(squirrel.Expr("pj.tags && ?", pq.Array(filter.Tags)))
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := base.
		Columns(projectColumns...).
		OrderBy(filter.OrderBy(projectSortColumns, "pj.created_at")).
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, project)
	}

	return projects, total, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query, args, err := psql.
		Update("crm_projects").
		SetMap(map[string]interface{}{
			"owner_id":           project.OwnerID,
			"project_manager_id": project.ProjectManagerID,
			"company_id":         project.CompanyID,
			"deal_id":            project.DealID,
			"name":               project.Name,
			"description":        project.Description,
			"project_status":     project.Status,
			"priority":           project.Priority,
			"start_date":         project.StartDate,
			"due_date":           project.DueDate,
			"completion_date":    project.CompletionDate,
			"estimated_hours":    project.EstimatedHours,
			"actual_hours":       project.ActualHours,
			"tags":               tagsValue(project.Tags),
			"updated_at":         squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": project.ID, "organization_id": project.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&project.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityProject)
	}

	project.Tags = emptyIfNil(project.Tags)
	return project, nil
}

func (r *projectRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_projects", organizationID, id)
}

func scanProject(row scanner) (*domain.Project, error) {
	p := &domain.Project{}
	var status, priority string

	if err := row.Scan(
		&p.ID,
		&p.OrganizationID,
		&p.OwnerID,
		&p.ProjectManagerID,
		&p.CompanyID,
		&p.DealID,
		&p.Name,
		&p.Description,
		&status,
		&priority,
		&p.StartDate,
		&p.DueDate,
		&p.CompletionDate,
		&p.EstimatedHours,
		&p.ActualHours,
		pq.Array(&p.Tags),
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.Status = domain.ProjectStatus(status)
	p.Priority = domain.Priority(priority)
	p.Tags = emptyIfNil(p.Tags)
	return p, nil
}
