package managing

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
)

//go:generate mockgen -source=company.go -destination=mocks/company.go -package=mocks

type CompanyManager interface {
	List(ctx context.Context, organizationID string, filter domain.CompanyFilter) (*domain.Page[*domain.Company], error)
	Get(ctx context.Context, organizationID, id string) (*domain.Company, error)
	Create(ctx context.Context, organizationID, userID string, req domain.CreateCompanyRequest) (*domain.Company, error)
	Update(ctx context.Context, organizationID, id string, req domain.UpdateCompanyRequest) (*domain.Company, error)
	Delete(ctx context.Context, organizationID, id string) error
	ListContacts(ctx context.Context, organizationID, companyID string, params domain.PageParams) (*domain.Page[*domain.Contact], error)
	ListDeals(ctx context.Context, organizationID, companyID string, params domain.PageParams) (*domain.Page[*domain.Deal], error)
}

type CompanyService struct {
	companyRepo repository.CompanyRepository
	contactRepo repository.ContactRepository
	dealRepo    repository.DealRepository
	dashboard   cache.DashboardCache
}

func NewCompanyService(
	companyRepo repository.CompanyRepository,
	contactRepo repository.ContactRepository,
	dealRepo repository.DealRepository,
	dashboard cache.DashboardCache,
) CompanyManager {
	return &CompanyService{
		companyRepo: companyRepo,
		contactRepo: contactRepo,
		dealRepo:    dealRepo,
		dashboard:   dashboard,
	}
}

func (s *CompanyService) List(ctx context.Context, organizationID string, filter domain.CompanyFilter) (*domain.Page[*domain.Company], error) {
	filter.PageParams = filter.PageParams.Normalize()

	companies, total, err := s.companyRepo.List(ctx, organizationID, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar empresas")
		return nil, classify(err, domain.EntityCompany)
	}

	return &domain.Page[*domain.Company]{
		Items:      companies,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *CompanyService) Get(ctx context.Context, organizationID, id string) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, classify(err, domain.EntityCompany)
	}
	if company == nil {
		return nil, notFound(domain.EntityCompany, id)
	}

	return company, nil
}

func (s *CompanyService) Create(ctx context.Context, organizationID, userID string, req domain.CreateCompanyRequest) (*domain.Company, error) {
	company := &domain.Company{
		OrganizationID: organizationID,
		OwnerID:        ownerOrCaller(req.OwnerID, userID),
		Name:           req.Name,
		Domain:         req.Domain,
		Industry:       req.Industry,
		Size:           req.Size,
		Website:        req.Website,
		Phone:          req.Phone,
		Address:        req.Address,
		Status:         domain.CompanyStatusLead,
		Tags:           req.Tags,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		company.Status = *req.Status
	}
	if req.AnnualRevenue != nil {
		company.AnnualRevenue.Decimal = *req.AnnualRevenue
		company.AnnualRevenue.Valid = true
	}

	created, err := s.companyRepo.Create(ctx, company)
	if err != nil {
		return nil, classify(err, domain.EntityCompany)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return created, nil
}

func (s *CompanyService) Update(ctx context.Context, organizationID, id string, req domain.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}

	req.Apply(company)

	updated, err := s.companyRepo.Update(ctx, company)
	if err != nil {
		return nil, classify(err, domain.EntityCompany)
	}
	if updated == nil {
		return nil, notFound(domain.EntityCompany, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, organizationID, id string) error {
	deleted, err := s.companyRepo.SoftDelete(ctx, organizationID, id)
	if err != nil {
		return classify(err, domain.EntityCompany)
	}
	if !deleted {
		return notFound(domain.EntityCompany, id)
	}

	s.dashboard.Invalidate(ctx, organizationID)
	return nil
}

func (s *CompanyService) ListContacts(ctx context.Context, organizationID, companyID string, params domain.PageParams) (*domain.Page[*domain.Contact], error) {
	if _, err := s.Get(ctx, organizationID, companyID); err != nil {
		return nil, err
	}

	filter := domain.ContactFilter{PageParams: params.Normalize(), CompanyID: companyID}

	contacts, total, err := s.contactRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, classify(err, domain.EntityContact)
	}

	return &domain.Page[*domain.Contact]{
		Items:      contacts,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

func (s *CompanyService) ListDeals(ctx context.Context, organizationID, companyID string, params domain.PageParams) (*domain.Page[*domain.Deal], error) {
	if _, err := s.Get(ctx, organizationID, companyID); err != nil {
		return nil, err
	}

	filter := domain.DealFilter{PageParams: params.Normalize(), CompanyID: companyID}

	deals, total, err := s.dealRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, classify(err, domain.EntityDeal)
	}

	return &domain.Page[*domain.Deal]{
		Items:      deals,
		Pagination: domain.NewPagination(filter.PageParams, total),
	}, nil
}

// ownerOrCaller usa o responsável informado ou, na falta dele, o usuário autenticado
func ownerOrCaller(ownerID *string, userID string) *string {
	if ownerID != nil && *ownerID != "" {
		return ownerID
	}
	if userID == "" {
		return nil
	}
	return &userID
}
