package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const companiesTable = "crm_companies c"

var companyColumns = []string{
	"c.id", "c.organization_id", "c.owner_id", "c.name", "c.domain", "c.industry", "c.size",
	"c.website", "c.phone", "c.address", "c.status", "c.annual_revenue", "c.tags", "c.notes",
	"c.created_at", "c.updated_at",
}

var companySortColumns = map[string]string{
	"name":           "c.name",
	"created_at":     "c.created_at",
	"updated_at":     "c.updated_at",
	"annual_revenue": "c.annual_revenue",
	"industry":       "c.industry",
}

//go:generate mockgen -source=company.go -destination=mocks/company.go -package=mocks

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Company, error)
	List(ctx context.Context, organizationID string, filter domain.CompanyFilter) ([]*domain.Company, int64, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
}

type companyRepository struct {
	conn *postgres.Connection
}

func NewCompanyRepository(conn *postgres.Connection) CompanyRepository {
	return &companyRepository{
		conn: conn,
	}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query, args, err := psql.
		Insert("crm_companies").
		Columns("organization_id", "owner_id", "name", "domain", "industry", "size", "website",
			"phone", "address", "status", "annual_revenue", "tags", "notes").
		Values(company.OrganizationID, company.OwnerID, company.Name, company.Domain, company.Industry,
			company.Size, company.Website, company.Phone, company.Address, company.Status,
			company.AnnualRevenue, tagsValue(company.Tags), company.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&company.ID, &company.CreatedAt, &company.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityCompany)
	}

	company.Tags = emptyIfNil(company.Tags)
	return company, nil
}

func (r *companyRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Company, error) {
	query, args, err := psql.
		Select(companyColumns...).
		From(companiesTable).
		Where(scope("c", organizationID)).
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	company, err := scanCompany(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return company, nil
}

func (r *companyRepository) List(ctx context.Context, organizationID string, filter domain.CompanyFilter) ([]*domain.Company, int64, error) {
	base := psql.
		Select().
		From(companiesTable).
		Where(scope("c", organizationID))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where(squirrel.Or{
			squirrel.ILike{"c.name": pattern},
			squirrel.ILike{"c.domain": pattern},
			squirrel.ILike{"c.industry": pattern},
		})
	}
	if filter.Industry != "" {
		base = base.Where(squirrel.Eq{"c.industry": filter.Industry})
	}
	if filter.Size != "" {
		base = base.Where(squirrel.Eq{"c.size": filter.Size})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"c.status": filter.Status})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"c.owner_id": filter.OwnerID})
	}
	if filter.Tag != "" {
		base = base.Where(squirrel.Expr("? = ANY(c.tags)", filter.Tag))
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := base.
		Columns(companyColumns...).
		OrderBy(filter.OrderBy(companySortColumns, "c.created_at")).
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

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, company)
	}

	return companies, total, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	query, args, err := psql.
		Update("crm_companies").
		SetMap(map[string]interface{}{
			"owner_id":       company.OwnerID,
			"name":           company.Name,
			"domain":         company.Domain,
			"industry":       company.Industry,
			"size":           company.Size,
			"website":        company.Website,
			"phone":          company.Phone,
			"address":        company.Address,
			"status":         company.Status,
			"annual_revenue": company.AnnualRevenue,
			"tags":           tagsValue(company.Tags),
			"notes":          company.Notes,
			"updated_at":     squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": company.ID, "organization_id": company.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&company.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityCompany)
	}

	return company, nil
}

func (r *companyRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_companies", organizationID, id)
}

func scanCompany(row scanner) (*domain.Company, error) {
	c := &domain.Company{}
	var status string

	if err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.OwnerID,
		&c.Name,
		&c.Domain,
		&c.Industry,
		&c.Size,
		&c.Website,
		&c.Phone,
		&c.Address,
		&status,
		&c.AnnualRevenue,
		pq.Array(&c.Tags),
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.CompanyStatus(status)
	c.Tags = emptyIfNil(c.Tags)
	return c, nil
}

// count executa o SELECT COUNT(*) sobre os mesmos filtros da listagem
func count(ctx context.Context, q postgres.Queryer, base squirrel.SelectBuilder) (int64, error) {
	query, args, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func softDelete(ctx context.Context, q postgres.Queryer, table, organizationID, id string) (bool, error) {
	query, args, err := psql.
		Update(table).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "organization_id": organizationID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
