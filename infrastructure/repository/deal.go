package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	dealsTable       = "crm_deals d"
	dealContactJoin  = "crm_contacts ct ON ct.id = d.contact_id AND ct.deleted_at IS NULL"
	dealCompanyJoin  = "crm_companies co ON co.id = d.company_id AND co.deleted_at IS NULL"
	dealContactNames = "NULLIF(TRIM(COALESCE(ct.first_name, '') || ' ' || COALESCE(ct.last_name, '')), '')"
)

var dealColumns = []string{
	"d.id", "d.organization_id", "d.owner_id", "d.title", "d.value", "d.currency", "d.stage",
	"d.probability", "d.expected_close_date", "d.actual_close_date", "d.contact_id",
	dealContactNames, "d.company_id", "co.name", "d.lost_reason", "d.tags", "d.notes",
	"d.created_at", "d.updated_at",
}

var dealSortColumns = map[string]string{
	"title":               "d.title",
	"value":               "d.value",
	"stage":               "d.stage",
	"probability":         "d.probability",
	"expected_close_date": "d.expected_close_date",
	"created_at":          "d.created_at",
	"updated_at":          "d.updated_at",
}

//go:generate mockgen -source=deal.go -destination=mocks/deal.go -package=mocks

type DealRepository interface {
	Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Deal, error)
	List(ctx context.Context, organizationID string, filter domain.DealFilter) ([]*domain.Deal, int64, error)
	ListForPipeline(ctx context.Context, organizationID string) ([]*domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	UpdateStage(ctx context.Context, deal *domain.Deal, activity *domain.Activity) (*domain.Deal, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
}

type dealRepository struct {
	conn *postgres.Connection
}

func NewDealRepository(conn *postgres.Connection) DealRepository {
	return &dealRepository{
		conn: conn,
	}
}

func (r *dealRepository) Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	query, args, err := psql.
		Insert("crm_deals").
		Columns("organization_id", "owner_id", "title", "value", "currency", "stage", "probability",
			"expected_close_date", "actual_close_date", "contact_id", "company_id", "lost_reason",
			"tags", "notes").
		Values(deal.OrganizationID, deal.OwnerID, deal.Title, deal.Value, deal.Currency, deal.Stage,
			deal.Probability, deal.ExpectedCloseDate, deal.ActualCloseDate, deal.ContactID,
			deal.CompanyID, deal.LostReason, tagsValue(deal.Tags), deal.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&deal.ID, &deal.CreatedAt, &deal.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityDeal)
	}

	deal.Tags = emptyIfNil(deal.Tags)
	return deal, nil
}

func (r *dealRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Deal, error) {
	query, args, err := r.selectDeals(organizationID).
		Where(squirrel.Eq{"d.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	deal, err := scanDeal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return deal, nil
}

func (r *dealRepository) List(ctx context.Context, organizationID string, filter domain.DealFilter) ([]*domain.Deal, int64, error) {
	base := psql.
		Select().
		From(dealsTable).
		LeftJoin(dealContactJoin).
		LeftJoin(dealCompanyJoin).
		Where(scope("d", organizationID))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where(squirrel.Or{
			squirrel.ILike{"d.title": pattern},
			squirrel.ILike{"co.name": pattern},
		})
	}
	if filter.Stage != "" {
		base = base.Where(squirrel.Eq{"d.stage": filter.Stage})
	}
	if filter.CompanyID != "" {
		base = base.Where(squirrel.Eq{"d.company_id": filter.CompanyID})
	}
	if filter.ContactID != "" {
		base = base.Where(squirrel.Eq{"d.contact_id": filter.ContactID})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"d.owner_id": filter.OwnerID})
	}
	if filter.MinValue != nil {
		base = base.Where(squirrel.GtOrEq{"d.value": *filter.MinValue})
	}
	if filter.MaxValue != nil {
		base = base.Where(squirrel.LtOrEq{"d.value": *filter.MaxValue})
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := base.
		Columns(dealColumns...).
		OrderBy(filter.OrderBy(dealSortColumns, "d.created_at")).
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	deals, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return deals, total, nil
}

// ListForPipeline retorna todos os negócios da organização, agrupados depois por etapa
func (r *dealRepository) ListForPipeline(ctx context.Context, organizationID string) ([]*domain.Deal, error) {
	query, args, err := r.selectDeals(organizationID).
		OrderBy("d.value DESC", "d.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.query(ctx, query, args...)
}

func (r *dealRepository) Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error) {
	return updateDeal(ctx, r.conn, deal)
}

// UpdateStage grava a nova etapa e a atividade de histórico na mesma transação
func (r *dealRepository) UpdateStage(ctx context.Context, deal *domain.Deal, activity *domain.Activity) (*domain.Deal, error) {
	var updated *domain.Deal
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		updated, err = updateDeal(ctx, tx, deal)
		if err != nil || updated == nil {
			return err
		}

		_, err = createActivity(ctx, tx, activity)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func updateDeal(ctx context.Context, q postgres.Queryer, deal *domain.Deal) (*domain.Deal, error) {
	query, args, err := psql.
		Update("crm_deals").
		SetMap(map[string]interface{}{
			"owner_id":            deal.OwnerID,
			"title":               deal.Title,
			"value":               deal.Value,
			"currency":            deal.Currency,
			"stage":               deal.Stage,
			"probability":         deal.Probability,
			"expected_close_date": deal.ExpectedCloseDate,
			"actual_close_date":   deal.ActualCloseDate,
			"contact_id":          deal.ContactID,
			"company_id":          deal.CompanyID,
			"lost_reason":         deal.LostReason,
			"tags":                tagsValue(deal.Tags),
			"notes":               deal.Notes,
			"updated_at":          squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": deal.ID, "organization_id": deal.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = q.QueryRowContext(ctx, query, args...).Scan(&deal.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityDeal)
	}

	deal.Tags = emptyIfNil(deal.Tags)
	return deal, nil
}

func (r *dealRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_deals", organizationID, id)
}

func (r *dealRepository) selectDeals(organizationID string) squirrel.SelectBuilder {
	return psql.
		Select(dealColumns...).
		From(dealsTable).
		LeftJoin(dealContactJoin).
		LeftJoin(dealCompanyJoin).
		Where(scope("d", organizationID))
}

func (r *dealRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Deal, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deals := make([]*domain.Deal, 0)
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, err
		}
		deals = append(deals, deal)
	}

	return deals, rows.Err()
}

func scanDeal(row scanner) (*domain.Deal, error) {
	d := &domain.Deal{}
	var stage string

	if err := row.Scan(
		&d.ID,
		&d.OrganizationID,
		&d.OwnerID,
		&d.Title,
		&d.Value,
		&d.Currency,
		&stage,
		&d.Probability,
		&d.ExpectedCloseDate,
		&d.ActualCloseDate,
		&d.ContactID,
		&d.ContactName,
		&d.CompanyID,
		&d.CompanyName,
		&d.LostReason,
		pq.Array(&d.Tags),
		&d.Notes,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Stage = domain.DealStage(stage)
	d.Tags = emptyIfNil(d.Tags)
	return d, nil
}
