package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

const seedDomain = "ascendore.dev"

var (
	industries    = []string{"Software", "Varejo", "Saúde", "Educação", "Logística", "Finanças", "Indústria"}
	companySizes  = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}
	leadSources   = []string{"website", "indicação", "evento", "linkedin", "outbound"}
	activityTypes = []domain.ActivityType{
		domain.ActivityTypeCall,
		domain.ActivityTypeEmail,
		domain.ActivityTypeMeeting,
		domain.ActivityTypeTask,
		domain.ActivityTypeNote,
	}
)

// SeedCounts define o volume gerado por organização
type SeedCounts struct {
	Companies          int
	ContactsPerCompany int
	DealsPerCompany    int
	ActivitiesPerDeal  int
}

type SeedResult struct {
	OrganizationID   string
	AdminEmail       string
	Companies        int
	Contacts         int
	Deals            int
	Activities       int
	CampaignContacts int64
}

// Seeder popula uma organização de demonstração pelos casos de uso,
// passando pelas mesmas validações e invalidações de cache da API
type Seeder struct {
	faker      *gofakeit.Faker
	auth       authenticating.Authenticator
	companies  managing.CompanyManager
	contacts   managing.ContactManager
	deals      managing.DealManager
	activities managing.ActivityManager
	campaigns  managing.CampaignManager
	now        func() time.Time
}

func NewSeeder(
	seed uint64,
	auth authenticating.Authenticator,
	companies managing.CompanyManager,
	contacts managing.ContactManager,
	deals managing.DealManager,
	activities managing.ActivityManager,
	campaigns managing.CampaignManager,
) *Seeder {
	return &Seeder{
		faker:      gofakeit.New(seed),
		auth:       auth,
		companies:  companies,
		contacts:   contacts,
		deals:      deals,
		activities: activities,
		campaigns:  campaigns,
		now:        time.Now,
	}
}

// Run cria a organização, o administrador e os registros de CRM ligados entre si
func (s *Seeder) Run(ctx context.Context, password string, counts SeedCounts) (*SeedResult, error) {
	batch, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do lote: %w", err)
	}

	adminEmail := fmt.Sprintf("admin.%s@%s", batch, seedDomain)
	auth, err := s.auth.Register(ctx, domain.RegisterRequest{
		Email:            adminEmail,
		Password:         password,
		Name:             s.faker.Name(),
		OrganizationName: s.faker.Company(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar organização: %w", err)
	}

	orgID := auth.User.OrganizationID
	userID := auth.User.ID
	result := &SeedResult{OrganizationID: orgID, AdminEmail: adminEmail}

	logger := logrus.WithFields(logrus.Fields{
		"organization_id": orgID,
		"batch":           batch,
	})
	logger.Info("Organização de demonstração criada")

	var contactIDs []string

	for i := 0; i < counts.Companies; i++ {
		company, err := s.companies.Create(ctx, orgID, userID, s.companyRequest())
		if err != nil {
			return result, fmt.Errorf("erro ao criar empresa: %w", err)
		}
		result.Companies++

		companyContacts := make([]string, 0, counts.ContactsPerCompany)
		for j := 0; j < counts.ContactsPerCompany; j++ {
			contact, err := s.contacts.Create(ctx, orgID, userID, s.contactRequest(company, batch, i, j))
			if err != nil {
				return result, fmt.Errorf("erro ao criar contato: %w", err)
			}
			companyContacts = append(companyContacts, contact.ID)
			result.Contacts++
		}
		contactIDs = append(contactIDs, companyContacts...)

		for j := 0; j < counts.DealsPerCompany; j++ {
			deal, err := s.deals.Create(ctx, orgID, userID, s.dealRequest(company, companyContacts))
			if err != nil {
				return result, fmt.Errorf("erro ao criar negócio: %w", err)
			}
			result.Deals++

			for k := 0; k < counts.ActivitiesPerDeal; k++ {
				if _, err := s.activities.Create(ctx, orgID, userID, s.activityRequest(deal)); err != nil {
					return result, fmt.Errorf("erro ao criar atividade: %w", err)
				}
				result.Activities++
			}
		}

		logger.WithField("company", company.Name).Debug("Empresa populada")
	}

	if len(contactIDs) == 0 {
		return result, nil
	}

	campaign, err := s.campaigns.Create(ctx, orgID, userID, s.campaignRequest())
	if err != nil {
		return result, fmt.Errorf("erro ao criar campanha: %w", err)
	}

	membership, err := s.campaigns.AddContacts(ctx, orgID, campaign.ID, contactIDs)
	if err != nil {
		return result, fmt.Errorf("erro ao vincular contatos à campanha: %w", err)
	}
	result.CampaignContacts = membership.Added

	return result, nil
}

func (s *Seeder) companyRequest() domain.CreateCompanyRequest {
	domainName := s.faker.DomainName()
	website := "https://www." + domainName
	phone := s.faker.Phone()
	address := s.faker.Address().Address
	industry := pick(s.faker, industries)
	size := pick(s.faker, companySizes)
	status := pick(s.faker, []domain.CompanyStatus{
		domain.CompanyStatusLead,
		domain.CompanyStatusProspect,
		domain.CompanyStatusCustomer,
		domain.CompanyStatusPartner,
	})
	revenue := decimal.NewFromInt(int64(s.faker.Number(100, 50000)) * 1000)

	return domain.CreateCompanyRequest{
		Name:          s.faker.Company(),
		Domain:        &domainName,
		Industry:      &industry,
		Size:          &size,
		Website:       &website,
		Phone:         &phone,
		Address:       &address,
		Status:        &status,
		AnnualRevenue: &revenue,
		Tags:          []string{"demo"},
	}
}

// o e-mail carrega o lote e a posição para não colidir entre execuções
func (s *Seeder) contactRequest(company *domain.Company, batch string, companyIdx, contactIdx int) domain.CreateContactRequest {
	firstName := s.faker.FirstName()
	lastName := s.faker.LastName()
	email := fmt.Sprintf("%s.%s.%s%d%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName), batch, companyIdx, contactIdx, seedDomain)
	email = strings.ReplaceAll(email, " ", "")
	phone := s.faker.Phone()
	title := s.faker.JobTitle()
	source := pick(s.faker, leadSources)

	return domain.CreateContactRequest{
		CompanyID:  &company.ID,
		FirstName:  firstName,
		LastName:   lastName,
		Email:      &email,
		Phone:      &phone,
		Title:      &title,
		LeadSource: &source,
		Tags:       []string{"demo"},
	}
}

func (s *Seeder) dealRequest(company *domain.Company, contactIDs []string) domain.CreateDealRequest {
	stage := pick(s.faker, domain.DealStages)
	value := decimal.NewFromInt(int64(s.faker.Number(5, 500)) * 1000)
	currency := "USD"
	closeDate := s.now().AddDate(0, 0, s.faker.Number(-120, 120))

	req := domain.CreateDealRequest{
		Title:             fmt.Sprintf("%s - %s", company.Name, s.faker.BuzzWord()),
		Value:             &value,
		Currency:          &currency,
		Stage:             &stage,
		ExpectedCloseDate: &closeDate,
		CompanyID:         &company.ID,
		Tags:              []string{"demo"},
	}
	if len(contactIDs) > 0 {
		req.ContactID = &contactIDs[s.faker.Number(0, len(contactIDs)-1)]
	}
	if stage == domain.DealStageClosedLost {
		reason := "Preço acima do orçamento"
		req.LostReason = &reason
	}

	return req
}

func (s *Seeder) activityRequest(deal *domain.Deal) domain.CreateActivityRequest {
	activityType := pick(s.faker, activityTypes)
	dueDate := s.now().AddDate(0, 0, s.faker.Number(-30, 30))
	description := s.faker.Sentence(8)

	return domain.CreateActivityRequest{
		Type:        activityType,
		Title:       fmt.Sprintf("%s: %s", activityType, deal.Title),
		Description: &description,
		DueDate:     &dueDate,
		Completed:   dueDate.Before(s.now()),
		DealID:      &deal.ID,
		CompanyID:   deal.CompanyID,
		ContactID:   deal.ContactID,
	}
}

func (s *Seeder) campaignRequest() domain.CreateCampaignRequest {
	status := domain.CampaignStatusActive
	goalType := domain.GoalTypeDeals
	goalValue := decimal.NewFromInt(20)
	budget := decimal.NewFromInt(15000)
	start := s.now().AddDate(0, -1, 0)
	end := s.now().AddDate(0, 2, 0)

	return domain.CreateCampaignRequest{
		Name:      "Campanha de demonstração " + s.faker.BuzzWord(),
		Status:    &status,
		StartDate: &start,
		EndDate:   &end,
		GoalType:  &goalType,
		GoalValue: &goalValue,
		Budget:    &budget,
		Tags:      []string{"demo"},
	}
}

func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.Number(0, len(items)-1)]
}
