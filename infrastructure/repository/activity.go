package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const activitiesTable = "crm_activities a"

var activityColumns = []string{
	"a.id", "a.organization_id", "a.owner_id", "a.type", "a.title", "a.description", "a.due_date",
	"a.completed", "a.completed_at", "a.contact_id", "a.company_id", "a.deal_id", "a.campaign_id",
	"a.assigned_to_id", "a.priority", "a.is_pinned", "a.tags", "a.created_at", "a.updated_at",
}

var activitySortColumns = map[string]string{
	"title":      "a.title",
	"type":       "a.type",
	"due_date":   "a.due_date",
	"priority":   "a.priority",
	"created_at": "a.created_at",
	"updated_at": "a.updated_at",
}

//go:generate mockgen -source=activity.go -destination=mocks/activity.go -package=mocks

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error)
	List(ctx context.Context, organizationID string, filter domain.ActivityFilter) ([]*domain.Activity, int64, error)
	Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
}

type activityRepository struct {
	conn *postgres.Connection
}

func NewActivityRepository(conn *postgres.Connection) ActivityRepository {
	return &activityRepository{
		conn: conn,
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	return createActivity(ctx, r.conn, activity)
}

// createActivity também é usado dentro da transação de mudança de etapa do negócio
func createActivity(ctx context.Context, q postgres.Queryer, activity *domain.Activity) (*domain.Activity, error) {
	if activity.Priority == "" {
		activity.Priority = domain.PriorityMedium
	}

	query, args, err := psql.
		Insert("crm_activities").
		Columns("organization_id", "owner_id", "type", "title", "description", "due_date", "completed",
			"completed_at", "contact_id", "company_id", "deal_id", "campaign_id", "assigned_to_id",
			"priority", "is_pinned", "tags").
		Values(activity.OrganizationID, activity.OwnerID, activity.Type, activity.Title,
			activity.Description, activity.DueDate, activity.Completed, activity.CompletedAt,
			activity.ContactID, activity.CompanyID, activity.DealID, activity.CampaignID,
			activity.AssignedToID, activity.Priority, activity.IsPinned, tagsValue(activity.Tags)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(&activity.ID, &activity.CreatedAt, &activity.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityActivity)
	}

	activity.Tags = emptyIfNil(activity.Tags)
	return activity, nil
}

func (r *activityRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Activity, error) {
	query, args, err := psql.
		Select(activityColumns...).
		From(activitiesTable).
		Where(scope("a", organizationID)).
		Where(squirrel.Eq{"a.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	activity, err := scanActivity(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return activity, nil
}

func (r *activityRepository) List(ctx context.Context, organizationID string, filter domain.ActivityFilter) ([]*domain.Activity, int64, error) {
	base := psql.
		Select().
		From(activitiesTable).
		Where(scope("a", organizationID))

	if filter.Type != "" {
		base = base.Where(squirrel.Eq{"a.type": filter.Type})
	}
	if filter.Completed != nil {
		base = base.Where(squirrel.Eq{"a.completed": *filter.Completed})
	}
	if filter.ContactID != "" {
		base = base.Where(squirrel.Eq{"a.contact_id": filter.ContactID})
	}
	if filter.CompanyID != "" {
		base = base.Where(squirrel.Eq{"a.company_id": filter.CompanyID})
	}
	if filter.DealID != "" {
		base = base.Where(squirrel.Eq{"a.deal_id": filter.DealID})
	}
	if filter.CampaignID != "" {
		base = base.Where(squirrel.Eq{"a.campaign_id": filter.CampaignID})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"a.owner_id": filter.OwnerID})
	}
	if filter.AssignedToID != "" {
		base = base.Where(squirrel.Eq{"a.assigned_to_id": filter.AssignedToID})
	}
	if filter.Priority != "" {
		base = base.Where(squirrel.Eq{"a.priority": filter.Priority})
	}
	if filter.Pinned != nil {
		base = base.Where(squirrel.Eq{"a.is_pinned": *filter.Pinned})
	}
	if filter.Overdue {
		base = base.Where("a.completed = FALSE AND a.due_date < NOW()")
	}
	if filter.DueAfter != nil {
		base = base.Where(squirrel.GtOrEq{"a.due_date": *filter.DueAfter})
	}
	if filter.DueBefore != nil {
		base = base.Where(squirrel.LtOrEq{"a.due_date": *filter.DueBefore})
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	// notas fixadas sempre no topo
	query, args, err := base.
		Columns(activityColumns...).
		OrderBy("a.is_pinned DESC", filter.OrderBy(activitySortColumns, "a.created_at")).
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

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, 0, err
		}
		activities = append(activities, activity)
	}

	return activities, total, rows.Err()
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	query, args, err := psql.
		Update("crm_activities").
		SetMap(map[string]interface{}{
			"owner_id":       activity.OwnerID,
			"type":           activity.Type,
			"title":          activity.Title,
			"description":    activity.Description,
			"due_date":       activity.DueDate,
			"completed":      activity.Completed,
			"completed_at":   activity.CompletedAt,
			"contact_id":     activity.ContactID,
			"company_id":     activity.CompanyID,
			"deal_id":        activity.DealID,
			"campaign_id":    activity.CampaignID,
			"assigned_to_id": activity.AssignedToID,
			"priority":       activity.Priority,
			"is_pinned":      activity.IsPinned,
			"tags":           tagsValue(activity.Tags),
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": activity.ID, "organization_id": activity.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&activity.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityActivity)
	}

	activity.Tags = emptyIfNil(activity.Tags)
	return activity, nil
}

func (r *activityRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_activities", organizationID, id)
}

func scanActivity(row scanner) (*domain.Activity, error) {
	a := &domain.Activity{}
	var activityType, priority string

	if err := row.Scan(
		&a.ID,
		&a.OrganizationID,
		&a.OwnerID,
		&activityType,
		&a.Title,
		&a.Description,
		&a.DueDate,
		&a.Completed,
		&a.CompletedAt,
		&a.ContactID,
		&a.CompanyID,
		&a.DealID,
		&a.CampaignID,
		&a.AssignedToID,
		&priority,
		&a.IsPinned,
		pq.Array(&a.Tags),
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Type = domain.ActivityType(activityType)
	a.Priority = domain.Priority(priority)
	a.Tags = emptyIfNil(a.Tags)
	return a, nil
}
