package managing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

//go:generate mockgen -source=campaign.go -destination=mocks/campaign.go -package=mocks

type CampaignManager interface {
	List(ctx context.Context, organizationID string, filter domain.CampaignFilter) (*domain.Page[*domain.Campaign], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Campaign, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateCampaignRequest) (*domain.Campaign, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateCampaignRequest) (*domain.Campaign, error)
	Delete(ctx context.Context, organizationID, id string) error
	AddContacts(ctx context.Context, organizationID, id string, contactIDs []string) (*domain.CampaignMembershipResult, error)
	RemoveContacts(ctx context.Context, organizationID, id string, contactIDs []string) (*domain.CampaignMembershipResult, error)
	AddContactsBySegment(ctx context.Context, organizationID, id string, segment domain.ContactSegment) (*domain.CampaignMembershipResult, error)
	UpdateContact(ctx context.Context, organizationID, id, contactID string, req domain.UpdateCampaignContactRequest) (*domain.CampaignContact, error)
	SyncProgress(ctx context.Context) (int, error)
}

type CampaignService struct {
	campaignRepo repository.CampaignRepository
	now          func() time.Time
}

func NewCampaignService(campaignRepo repository.CampaignRepository) CampaignManager {
	return &CampaignService{
		campaignRepo: campaignRepo,
		now:          time.Now,
	}
}

func (s *CampaignService) List(ctx context.Context, organizationID string, filter domain.CampaignFilter) (*domain.Page[*domain.Campaign], error) {
	filter.PageParams = filter.PageParams.Normalize()

	campaigns, total, err := s.campaignRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas")
		return nil, classify(err, domain.EntityCampaign)
	}

	return &domain.Page[*domain.Campaign]{
		Items:      campaigns,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

// Get devolve a campanha com seus contatos
func (s *CampaignService) Get(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	contacts, err := s.campaignRepo.ListContacts(ctx, campaign.ID)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}
	campaign.Contacts = contacts

	return campaign, nil
}

func (s *CampaignService) Create(ctx context.Context, organizationID, userID string, req domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if err := checkDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	campaign := &domain.Campaign{
		OrganizationID:  organizationID,
		OwnerID:         ownerOrCaller(req.OwnerID, userID),
		Name:            req.Name,
		Description:     req.Description,
		Status:          domain.CampaignStatusDraft,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		GoalType:        req.GoalType,
		CurrentProgress: decimal.Zero,
		Tags:            req.Tags,
		Notes:           req.Notes,
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}
	if req.GoalValue != nil {
		campaign.GoalValue = decimal.NewNullDecimal(*req.GoalValue)
	}
	if req.Budget != nil {
		campaign.Budget = decimal.NewNullDecimal(*req.Budget)
	}

	created, err := s.campaignRepo.Create(ctx, campaign)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}

	return created, nil
}

func (s *CampaignService) Update(ctx context.Context, organizationID, id string, req domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	previousGoal := campaign.GoalType
	req.Apply(campaign)

	if err := checkDateRange(campaign.StartDate, campaign.EndDate); err != nil {
		return nil, err
	}

	updated, err := s.campaignRepo.Update(ctx, campaign)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}
	if updated == nil {
		return nil, notFound(domain.EntityCampaign, id)
	}

	if !sameGoal(previousGoal, updated.GoalType) {
		s.refresh(ctx, updated)
	}

	return updated, nil
}

func (s *CampaignService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.campaignRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityCampaign)
	}
	if !deleted {
		return notFound(domain.EntityCampaign, id)
	}

	return nil
}

// AddContacts vincula contatos da organização; contatos já vinculados ou de outra organização são ignorados
func (s *CampaignService) AddContacts(ctx context.Context, organizationID, id string, contactIDs []string) (*domain.CampaignMembershipResult, error) {
	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	added, err := s.campaignRepo.AddContacts(ctx, organizationID, campaign.ID, contactIDs)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}

	if added > 0 {
		s.refresh(ctx, campaign)
	}

	return &domain.CampaignMembershipResult{Added: added}, nil
}

func (s *CampaignService) RemoveContacts(ctx context.Context, organizationID, id string, contactIDs []string) (*domain.CampaignMembershipResult, error) {
	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	removed, err := s.campaignRepo.RemoveContacts(ctx, campaign.ID, contactIDs)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}

	if removed > 0 {
		s.refresh(ctx, campaign)
	}

	return &domain.CampaignMembershipResult{Removed: removed}, nil
}

// AddContactsBySegment vincula todos os contatos que atendem ao filtro
func (s *CampaignService) AddContactsBySegment(ctx context.Context, organizationID, id string, segment domain.ContactSegment) (*domain.CampaignMembershipResult, error) {
	if segment.LeadScore != nil && segment.LeadScore.Min != nil && segment.LeadScore.Max != nil &&
		*segment.LeadScore.Min > *segment.LeadScore.Max {
		return nil, NewCRMError(domain.ErrInvalidInput, apiErrors.ErrValidationFailed, "leadScore.min maior que leadScore.max")
	}

	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	added, err := s.campaignRepo.AddContactsBySegment(ctx, organizationID, campaign.ID, segment)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"added":       added,
	}).Info("Contatos adicionados à campanha por filtro")

	if added > 0 {
		s.refresh(ctx, campaign)
	}

	return &domain.CampaignMembershipResult{Added: added}, nil
}

// UpdateContact registra o acompanhamento do envio (status, sent_at, opened_at, clicked_at) de um membro
func (s *CampaignService) UpdateContact(ctx context.Context, organizationID, id, contactID string, req domain.UpdateCampaignContactRequest) (*domain.CampaignContact, error) {
	campaign, err := s.find(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	member, err := s.campaignRepo.GetContact(ctx, campaign.ID, contactID)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}
	if member == nil {
		return nil, notFound(domain.EntityContact, contactID)
	}

	req.Apply(member, s.now())

	updated, err := s.campaignRepo.UpdateContactTracking(ctx, member)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}
	if !updated {
		return nil, notFound(domain.EntityContact, contactID)
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"contact_id":  contactID,
		"status":      member.Status,
	}).Debug("Acompanhamento de contato da campanha atualizado")

	return member, nil
}

// SyncProgress recalcula o progresso de todas as campanhas ativas
func (s *CampaignService) SyncProgress(ctx context.Context) (int, error) {
	campaigns, err := s.campaignRepo.ListActive(ctx)
	if err != nil {
		return 0, classify(err, domain.EntityCampaign)
	}

	updated := 0
	for _, campaign := range campaigns {
		if ctx.Err() != nil {
			return updated, ctx.Err()
		}

		if _, err := s.campaignRepo.RefreshProgress(ctx, campaign); err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro ao recalcular progresso da campanha")
			continue
		}
		updated++
	}

	return updated, nil
}

func (s *CampaignService) find(ctx context.Context, organizationID, id string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityCampaign)
	}
	if campaign == nil {
		return nil, notFound(domain.EntityCampaign, id)
	}

	return campaign, nil
}

// refresh recalcula o progresso; falhas não desfazem a operação principal
func (s *CampaignService) refresh(ctx context.Context, campaign *domain.Campaign) {
	if _, err := s.campaignRepo.RefreshProgress(ctx, campaign); err != nil {
		logrus.WithError(err).WithField("campaign_id", campaign.ID).Warn("Erro ao recalcular progresso da campanha")
	}
}

func checkDateRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return NewCRMError(ErrInvalidDateRange, apiErrors.ErrValidationFailed, "end_date deve ser igual ou posterior a start_date")
	}
	return nil
}

func sameGoal(a, b *domain.CampaignGoalType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
