package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/internal/domain"
)

const campaignsTable = "crm_campaigns cp"

var campaignColumns = []string{
	"cp.id", "cp.organization_id", "cp.owner_id", "cp.name", "cp.description", "cp.status",
	"cp.start_date", "cp.end_date", "cp.goal_type", "cp.goal_value", "cp.current_progress",
	"cp.budget", "(SELECT COUNT(*) FROM crm_campaign_contacts cc WHERE cc.campaign_id = cp.id)",
	"cp.tags", "cp.notes", "cp.created_at", "cp.updated_at",
}

var campaignSortColumns = map[string]string{
	"name":       "cp.name",
	"status":     "cp.status",
	"start_date": "cp.start_date",
	"end_date":   "cp.end_date",
	"created_at": "cp.created_at",
	"updated_at": "cp.updated_at",
}

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	GetByID(ctx context.Context, organizationID, id string) (*domain.Campaign, error)
	List(ctx context.Context, organizationID string, filter domain.CampaignFilter) ([]*domain.Campaign, int64, error)
	Update(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	SoftDelete(ctx context.Context, organizationID, id string) (bool, error)
	ListContacts(ctx context.Context, campaignID string) ([]*domain.CampaignContact, error)
	GetContact(ctx context.Context, campaignID, contactID string) (*domain.CampaignContact, error)
	UpdateContactTracking(ctx context.Context, cc *domain.CampaignContact) (bool, error)
	AddContacts(ctx context.Context, organizationID, campaignID string, contactIDs []string) (int64, error)
	AddContactsBySegment(ctx context.Context, organizationID, campaignID string, segment domain.ContactSegment) (int64, error)
	RemoveContacts(ctx context.Context, campaignID string, contactIDs []string) (int64, error)
	RefreshProgress(ctx context.Context, campaign *domain.Campaign) (decimal.Decimal, error)
	ListActive(ctx context.Context) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query, args, err := psql.
		Insert("crm_campaigns").
		Columns("organization_id", "owner_id", "name", "description", "status", "start_date", "end_date",
			"goal_type", "goal_value", "budget", "tags", "notes").
		Values(campaign.OrganizationID, campaign.OwnerID, campaign.Name, campaign.Description,
			campaign.Status, campaign.StartDate, campaign.EndDate, campaign.GoalType,
			campaign.GoalValue, campaign.Budget, tagsValue(campaign.Tags), campaign.Notes).
		Suffix("RETURNING id, current_progress, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&campaign.ID, &campaign.CurrentProgress, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return nil, mapPQError(err, domain.EntityCampaign)
	}

	campaign.Tags = emptyIfNil(campaign.Tags)
	return campaign, nil
}

func (r *campaignRepository) GetByID(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(scope("cp", organizationID)).
		Where(squirrel.Eq{"cp.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, organizationID string, filter domain.CampaignFilter) ([]*domain.Campaign, int64, error) {
	base := psql.
		Select().
		From(campaignsTable).
		Where(scope("cp", organizationID))

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		base = base.Where(squirrel.Or{
			squirrel.ILike{"cp.name": pattern},
			squirrel.ILike{"cp.description": pattern},
		})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"cp.status": filter.Status})
	}
	if filter.OwnerID != "" {
		base = base.Where(squirrel.Eq{"cp.owner_id": filter.OwnerID})
	}

	total, err := count(ctx, r.conn, base)
	if err != nil {
		return nil, 0, err
	}

	query, args, err := base.
		Columns(campaignColumns...).
		OrderBy(filter.OrderBy(campaignSortColumns, "cp.created_at")).
		Limit(uint64(filter.Limit)).
		Offset(filter.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	campaigns, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return campaigns, total, nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	query, args, err := psql.
		Update("crm_campaigns").
		SetMap(map[string]interface{}{
			"owner_id":    campaign.OwnerID,
			"name":        campaign.Name,
			"description": campaign.Description,
			"status":      campaign.Status,
			"start_date":  campaign.StartDate,
			"end_date":    campaign.EndDate,
			"goal_type":   campaign.GoalType,
			"goal_value":  campaign.GoalValue,
			"budget":      campaign.Budget,
			"tags":        tagsValue(campaign.Tags),
			"notes":       campaign.Notes,
			"updated_at":  squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": campaign.ID, "organization_id": campaign.OrganizationID, "deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapPQError(err, domain.EntityCampaign)
	}

	campaign.Tags = emptyIfNil(campaign.Tags)
	return campaign, nil
}

func (r *campaignRepository) SoftDelete(ctx context.Context, organizationID, id string) (bool, error) {
	return softDelete(ctx, r.conn, "crm_campaigns", organizationID, id)
}

var campaignContactColumns = []string{
	"cc.campaign_id", "cc.contact_id", "ct.first_name", "ct.last_name", "ct.email",
	"ct.lead_score", "cc.status", "cc.sent_at", "cc.opened_at", "cc.clicked_at", "cc.added_at",
}

func campaignMembers(campaignID string) squirrel.SelectBuilder {
	return psql.
		Select(campaignContactColumns...).
		From("crm_campaign_contacts cc").
		Join("crm_contacts ct ON ct.id = cc.contact_id AND ct.deleted_at IS NULL").
		Where(squirrel.Eq{"cc.campaign_id": campaignID})
}

func (r *campaignRepository) ListContacts(ctx context.Context, campaignID string) ([]*domain.CampaignContact, error) {
	query, args, err := campaignMembers(campaignID).
		OrderBy("cc.added_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := make([]*domain.CampaignContact, 0)
	for rows.Next() {
		cc, err := scanCampaignContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, cc)
	}

	return contacts, rows.Err()
}

func (r *campaignRepository) GetContact(ctx context.Context, campaignID, contactID string) (*domain.CampaignContact, error) {
	query, args, err := campaignMembers(campaignID).
		Where(squirrel.Eq{"cc.contact_id": contactID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	cc, err := scanCampaignContact(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return cc, nil
}

// UpdateContactTracking grava status e datas de envio; false quando o vínculo não existe mais
func (r *campaignRepository) UpdateContactTracking(ctx context.Context, cc *domain.CampaignContact) (bool, error) {
	query, args, err := psql.
		Update("crm_campaign_contacts").
		SetMap(map[string]interface{}{
			"status":     cc.Status,
			"sent_at":    cc.SentAt,
			"opened_at":  cc.OpenedAt,
			"clicked_at": cc.ClickedAt,
		}).
		Where(squirrel.Eq{"campaign_id": cc.CampaignID, "contact_id": cc.ContactID}).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, mapPQError(err, domain.EntityCampaign)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddContacts ignora contatos de outras organizações e membros já existentes
func (r *campaignRepository) AddContacts(ctx context.Context, organizationID, campaignID string, contactIDs []string) (int64, error) {
	selection := squirrel.
		Select().
		Column(squirrel.Expr("?::uuid", campaignID)).
		Column("ct.id").
		From(contactsTable).
		Where(scope("ct", organizationID)).
		Where(squirrel.Expr("ct.id = ANY(?::uuid[])", pq.Array(contactIDs)))

	return r.insertMembers(ctx, selection)
}

func (r *campaignRepository) AddContactsBySegment(ctx context.Context, organizationID, campaignID string, segment domain.ContactSegment) (int64, error) {
	selection := squirrel.
		Select().
		Column(squirrel.Expr("?::uuid", campaignID)).
		Column("ct.id").
		From(contactsTable).
		LeftJoin(contactCompanyJoin).
		Where(scope("ct", organizationID))

	if len(segment.Tags) > 0 {
		selection = selection.Where(squirrel.Expr("ct.tags && ?", pq.Array(segment.Tags)))
	}
	if segment.LeadScore != nil {
		if segment.LeadScore.Min != nil {
			selection = selection.Where(squirrel.GtOrEq{"ct.lead_score": *segment.LeadScore.Min})
		}
		if segment.LeadScore.Max != nil {
			selection = selection.Where(squirrel.LtOrEq{"ct.lead_score": *segment.LeadScore.Max})
		}
	}
	if grades := gradeCondition(segment.LeadGrade); grades != nil {
		selection = selection.Where(grades)
	}
	if segment.Company != nil && *segment.Company != "" {
		selection = selection.Where(squirrel.ILike{"co.name": likePattern(*segment.Company)})
	}
	if segment.CreatedAfter != nil {
		selection = selection.Where(squirrel.GtOrEq{"ct.created_at": *segment.CreatedAfter})
	}
	if segment.CreatedBefore != nil {
		selection = selection.Where(squirrel.LtOrEq{"ct.created_at": *segment.CreatedBefore})
	}

	return r.insertMembers(ctx, selection)
}

func (r *campaignRepository) insertMembers(ctx context.Context, selection squirrel.SelectBuilder) (int64, error) {
	query, args, err := psql.
		Insert("crm_campaign_contacts").
		Columns("campaign_id", "contact_id").
		Select(selection).
		Suffix("ON CONFLICT (campaign_id, contact_id) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, mapPQError(err, domain.EntityCampaign)
	}
	return result.RowsAffected()
}

func (r *campaignRepository) RemoveContacts(ctx context.Context, campaignID string, contactIDs []string) (int64, error) {
	query, args, err := psql.
		Delete("crm_campaign_contacts").
		Where(squirrel.Eq{"campaign_id": campaignID}).
		Where(squirrel.Expr("contact_id = ANY(?::uuid[])", pq.Array(contactIDs))).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// RefreshProgress recalcula current_progress conforme o tipo de meta e persiste o valor
func (r *campaignRepository) RefreshProgress(ctx context.Context, campaign *domain.Campaign) (decimal.Decimal, error) {
	if campaign.GoalType == nil {
		return campaign.CurrentProgress, nil
	}

	// subconsultas usam o placeholder padrão; o builder externo renumera tudo
	var progress squirrel.SelectBuilder
	switch *campaign.GoalType {
	case domain.GoalTypeRevenue:
		progress = squirrel.
			Select("COALESCE(SUM(d.value), 0)").
			From("crm_deals d").
			Join("crm_campaign_contacts cc ON cc.contact_id = d.contact_id").
			Where(squirrel.Eq{
				"cc.campaign_id":    campaign.ID,
				"d.organization_id": campaign.OrganizationID,
				"d.deleted_at":      nil,
				"d.stage":           string(domain.DealStageClosedWon),
			})
	case domain.GoalTypeDeals:
		progress = squirrel.
			Select("COUNT(d.id)").
			From("crm_deals d").
			Join("crm_campaign_contacts cc ON cc.contact_id = d.contact_id").
			Where(squirrel.Eq{
				"cc.campaign_id":    campaign.ID,
				"d.organization_id": campaign.OrganizationID,
				"d.deleted_at":      nil,
			})
	case domain.GoalTypeContacts:
		progress = squirrel.
			Select("COUNT(*)").
			From("crm_campaign_contacts cc").
			Join("crm_contacts ct ON ct.id = cc.contact_id AND ct.deleted_at IS NULL").
			Where(squirrel.Eq{"cc.campaign_id": campaign.ID})
	case domain.GoalTypeActivities:
		progress = squirrel.
			Select("COUNT(*)").
			From("crm_activities a").
			Where(squirrel.Eq{
				"a.campaign_id":     campaign.ID,
				"a.organization_id": campaign.OrganizationID,
				"a.deleted_at":      nil,
			})
	default:
		return decimal.Zero, fmt.Errorf("tipo de meta desconhecido: %s", *campaign.GoalType)
	}

	query, args, err := psql.
		Update("crm_campaigns").
		Set("current_progress", progress).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": campaign.ID, "organization_id": campaign.OrganizationID}).
		Suffix("RETURNING current_progress").
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var value decimal.Decimal
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return decimal.Zero, err
	}

	campaign.CurrentProgress = value
	return value, nil
}

// ListActive busca campanhas ativas com meta, de todas as organizações
func (r *campaignRepository) ListActive(ctx context.Context) ([]*domain.Campaign, error) {
	query, args, err := psql.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"cp.deleted_at": nil, "cp.status": string(domain.CampaignStatusActive)}).
		Where(squirrel.NotEq{"cp.goal_type": nil}).
		OrderBy("cp.created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.query(ctx, query, args...)
}

func (r *campaignRepository) query(ctx context.Context, query string, args ...interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	c := &domain.Campaign{}
	var (
		status   string
		goalType *string
	)

	if err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.OwnerID,
		&c.Name,
		&c.Description,
		&status,
		&c.StartDate,
		&c.EndDate,
		&goalType,
		&c.GoalValue,
		&c.CurrentProgress,
		&c.Budget,
		&c.ContactCount,
		pq.Array(&c.Tags),
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = domain.CampaignStatus(status)
	if goalType != nil {
		gt := domain.CampaignGoalType(*goalType)
		c.GoalType = &gt
	}
	c.Tags = emptyIfNil(c.Tags)
	return c, nil
}

func scanCampaignContact(row scanner) (*domain.CampaignContact, error) {
	var (
		cc                          domain.CampaignContact
		firstName, lastName, status string
	)

	if err := row.Scan(
		&cc.CampaignID,
		&cc.ContactID,
		&firstName,
		&lastName,
		&cc.Email,
		&cc.LeadScore,
		&status,
		&cc.SentAt,
		&cc.OpenedAt,
		&cc.ClickedAt,
		&cc.AddedAt,
	); err != nil {
		return nil, err
	}

	cc.Name = domain.Contact{FirstName: firstName, LastName: lastName}.FullName()
	cc.Status = domain.CampaignContactStatus(status)
	return &cc, nil
}
