package managing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

//go:generate mockgen -source=contact.go -destination=mocks/contact.go -package=mocks

type ContactManager interface {
	List(ctx context.Context, organizationID string, filter domain.ContactFilter) (*domain.Page[*domain.Contact], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Contact, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateContactRequest) (*domain.Contact, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateContactRequest) (*domain.Contact, error)
	Delete(ctx context.Context, organizationID, id string) error
}

type ContactService struct {
	contactRepo repository.ContactRepository
	dashboard   cache.DashboardCache
}

func NewContactService(contactRepo repository.ContactRepository, dashboard cache.DashboardCache) ContactManager {
	return &ContactService{
		contactRepo: contactRepo,
		dashboard:   dashboard,
	}
}

func (s *ContactService) List(ctx context.Context, organizationID string, filter domain.ContactFilter) (*domain.Page[*domain.Contact], error) {
	filter.PageParams = filter.PageParams.Normalize()

	contacts, total, err := s.contactRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar contatos")
		return nil, classify(err, domain.EntityContact)
	}

	return &domain.Page[*domain.Contact]{
		Items:      contacts,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *ContactService) Get(ctx context.Context, organizationID, id string) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityContact)
	}
	if contact == nil {
		return nil, notFound(domain.EntityContact, id)
	}

	return contact, nil
}

func (s *ContactService) Create(ctx context.Context, organizationID, userID string, req domain.CreateContactRequest) (*domain.Contact, error) {
	contact := &domain.Contact{
		OrganizationID: organizationID,
		OwnerID:        ownerOrCaller(req.OwnerID, userID),
		CompanyID:      req.CompanyID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Title:          req.Title,
		Status:         domain.ContactStatusActive,
		LeadSource:     req.LeadSource,
		Tags:           req.Tags,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		contact.Status = *req.Status
	}
	if req.LeadScore != nil {
		contact.LeadScore = *req.LeadScore
	}
	contact.Fill()

	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, classify(err, domain.EntityContact)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, organizationID, id string, req domain.UpdateContactRequest) (*domain.Contact, error) {
	contact, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	req.Apply(contact)

	updated, err := s.contactRepo.Update(ctx, contact)
	if err != nil {
		return nil, classify(err, domain.EntityContact)
	}
	if updated == nil {
		return nil, notFound(domain.EntityContact, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.contactRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityContact)
	}
	if !deleted {
		return notFound(domain.EntityContact, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return nil
}
