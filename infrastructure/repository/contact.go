package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const (
	contactsTable      = "crm_contacts ct"
	contactCompanyJoin = "crm_companies co ON co.id = ct.company_id AND co.deleted_at IS NULL"
)

var contactColumns = []string{
	"ct.id", "ct.organization_id", "ct.owner_id", "ct.company_id", "co.name", "ct.first_name",
	"ct.last_name", "ct.email", "ct.phone", "ct.title", "ct.status", "ct.lead_source",
	"ct.lead_score", "ct.lead_scored_at", "ct.tags", "ct.notes", "ct.created_at", "ct.updated_at",
}

var contactSortColumns = map[string]string{
	"name":       "ct.first_name",
	"first_name": "ct.first_name",
	"last_name":  "ct.last_name",
	"email":      "ct.email",
	"lead_score": "ct.lead_score",
	"created_at": "ct.created_at",
	"updated_at": "ct.updated_at",
}

//go:generate mockgen -source=contact.go -destination=mocks/contact.go -package=mocks

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Contact, error)
	List(ctx context.Context, organizationID string, filter domain.ContactFilter) ([]*domain.Contact, int64, error)
	Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
	UpdateLeadScore(ctx context.Context, organizationID, id string, score int) error
	ListForScoring(ctx context.Context, scoredBefore time.Time, limit int) ([]*domain.Contact, error)
}

type contactRepository struct {
	conn *postgres.Connection
}

func NewContactRepository(conn *postgres.Connection) ContactRepository {
	return &contactRepository{
		conn: conn,
	}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query, args, err := psql.
		Insert("crm_contacts").
		Columns("organization_id", "owner_id", "company_id", "first_name", "last_name", "email",
			"phone", "title", "status", "lead_source", "lead_score", "tags", "notes").
		Values(contact.OrganizationID, contact.OwnerID, contact.CompanyID, contact.FirstName,
			contact.LastName, contact.Email, contact.Phone, contact.Title, contact.Status,
			contact.LeadSource, contact.LeadScore, tagsValue(contact.Tags), contact.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityContact)
	}

	contact.Fill()
	return contact, nil
}

func (r *contactRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Contact, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From(contactsTable).
		LeftJoin(contactCompanyJoin).
		Where(scope("ct", organizationID)).
		Where(squirrel.Eq{"ct.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	contact, err := scanContact(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return contact, nil
}

func (r *contactRepository) List(ctx context.Context, organizationID string, filter domain.ContactFilter) ([]*domain.Contact, int64, error) {
	base := psql.
		Select().
		From(contactsTable).
		LeftJoin(contactCompanyJoin).
		Where(scope("ct", organizationID))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where(squirrel.Or{
			squirrel.ILike{"ct.first_name": pattern},
			squirrel.ILike{"ct.last_name": pattern},
			squirrel.ILike{"ct.email": pattern},
			squirrel.Expr("(ct.first_name || ' ' || ct.last_name) ILIKE ?", pattern),
		})
	}
	if filter.CompanyID != "" {
		base = base.Where(squirrel.Eq{"ct.company_id": filter.CompanyID})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"ct.status": filter.Status})
	}
	if filter.LeadSource != "" {
		base = base.Where(squirrel.Eq{"ct.lead_source": filter.LeadSource})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"ct.owner_id": filter.OwnerID})
	}
	if filter.MinLeadScore != nil {
		base = base.Where(squirrel.GtOrEq{"ct.lead_score": *filter.MinLeadScore})
	}
	if filter.MaxLeadScore != nil {
		base = base.Where(squirrel.LtOrEq{"ct.lead_score": *filter.MaxLeadScore})
	}
	if grades := gradeCondition(filter.LeadGrades); grades != nil {
		base = base.Where(grades)
	}
	if len(filter.Tags) > 0 {
		base = base.Where(squirrel.Expr("ct.tags && ?", pq.Array(filter.Tags)))
	}
	if filter.CreatedAfter != nil {
		base = base.Where(squirrel.GtOrEq{"ct.created_at": *filter.CreatedAfter})
	}
	if filter.CreatedBefore != nil {
		base = base.Where(squirrel.LtOrEq{"ct.created_at": *filter.CreatedBefore})
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := base.
		Columns(contactColumns...).
		OrderBy(filter.OrderBy(contactSortColumns, "ct.created_at")).
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	contacts, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	query, args, err := psql.
		Update("crm_contacts").
		SetMap(map[string]interface{}{
			"owner_id":    contact.OwnerID,
			"company_id":  contact.CompanyID,
			"first_name":  contact.FirstName,
			"last_name":   contact.LastName,
			"email":       contact.Email,
			"phone":       contact.Phone,
			"title":       contact.Title,
			"status":      contact.Status,
			"lead_source": contact.LeadSource,
			"lead_score":  contact.LeadScore,
			"tags":        tagsValue(contact.Tags),
			"notes":       contact.Notes,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": contact.ID, "organization_id": contact.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&contact.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityContact)
	}

	contact.Fill()
	return contact, nil
}

func (r *contactRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_contacts", organizationID, id)
}

func (r *contactRepository) UpdateLeadScore(ctx context.Context, organizationID, id string, score int) error {
	query, args, err := psql.
		Update("crm_contacts").
		Set("lead_score", score).
		Set("lead_scored_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "organization_id": organizationID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	return err
}

// ListForScoring busca contatos de todas as organizações sem score recente
func (r *contactRepository) ListForScoring(ctx context.Context, scoredBefore time.Time, limit int) ([]*domain.Contact, error) {
	query, args, err := psql.
		Select(contactColumns...).
		From(contactsTable).
		LeftJoin(contactCompanyJoin).
		Where(squirrel.Eq{"ct.deleted_at": nil, "ct.status": string(domain.ContactStatusActive)}).
		Where(squirrel.Or{
			squirrel.Eq{"ct.lead_scored_at": nil},
			squirrel.Lt{"ct.lead_scored_at": scoredBefore},
		}).
		OrderBy("ct.lead_scored_at ASC NULLS FIRST", "ct.created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.query(ctx, query, args...)
}

func (r *contactRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Contact, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

func gradeCondition(grades []string) squirrel.Sqlizer {
	or := squirrel.Or{}
	for _, grade := range grades {
		min, max, ok := domain.ScoreRange(grade)
		if !ok {
			continue
		}
		or = append(or, squirrel.Expr("ct.lead_score BETWEEN ? AND ?", min, max))
	}
	if len(or) == 0 {
		return nil
	}
	return or
}

func scanContact(row scanner) (*domain.Contact, error) {
	c := &domain.Contact{}
	var status string

	if err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.OwnerID,
		&c.CompanyID,
		&c.CompanyName,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Title,
		&status,
		&c.LeadSource,
		&c.LeadScore,
		&c.LeadScoredAt,
		pq.Array(&c.Tags),
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.ContactStatus(status)
	c.Fill()
	return c, nil
}
