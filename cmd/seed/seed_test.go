package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
	authmocks "github.com/vfg2006/crm-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/crm-api/internal/usecases/managing/mocks"
	"github.com/vfg2006/crm-api/pkg/validation"
	"go.uber.org/mock/gomock"
)

const (
	orgID  = "0b6f1c2a-8d4e-4b43-9b8e-3f1a2b3c4d5e"
	userID = "1c7a2d3b-9e5f-4c54-8c9f-4a2b3c4d5e6f"
)

type seederMocks struct {
	auth       *authmocks.MockAuthenticator
	companies  *mocks.MockCompanyManager
	contacts   *mocks.MockContactManager
	deals      *mocks.MockDealManager
	activities *mocks.MockActivityManager
	campaigns  *mocks.MockCampaignManager
}

func newTestSeeder(t *testing.T) (*Seeder, seederMocks) {
	ctrl := gomock.NewController(t)
	m := seederMocks{
		auth:       authmocks.NewMockAuthenticator(ctrl),
		companies:  mocks.NewMockCompanyManager(ctrl),
		contacts:   mocks.NewMockContactManager(ctrl),
		deals:      mocks.NewMockDealManager(ctrl),
		activities: mocks.NewMockActivityManager(ctrl),
		campaigns:  mocks.NewMockCampaignManager(ctrl),
	}

	return NewSeeder(42, m.auth, m.companies, m.contacts, m.deals, m.activities, m.campaigns), m
}

func expectRegister(m seederMocks) {
	m.auth.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{User: &domain.User{ID: userID, OrganizationID: orgID, Email: req.Email}}, nil
		})
}

func TestSeeder_Run(t *testing.T) {
	seeder, m := newTestSeeder(t)
	expectRegister(m)

	emails := map[string]bool{}

	m.companies.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _, _ string, req domain.CreateCompanyRequest) (*domain.Company, error) {
			assert.NoError(t, validation.Struct(req))
			return &domain.Company{ID: uuid.NewString(), Name: req.Name}, nil
		})

	m.contacts.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Times(6).
		DoAndReturn(func(_ context.Context, _, _ string, req domain.CreateContactRequest) (*domain.Contact, error) {
			require.NotNil(t, req.Email)
			assert.False(t, emails[*req.Email], "e-mail repetido: %s", *req.Email)
			emails[*req.Email] = true
			return &domain.Contact{ID: uuid.NewString(), CompanyID: req.CompanyID}, nil
		})

	m.deals.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _, _ string, req domain.CreateDealRequest) (*domain.Deal, error) {
			assert.NoError(t, validation.Struct(req))
			assert.NotNil(t, req.ContactID)
			return &domain.Deal{ID: uuid.NewString(), Title: req.Title, CompanyID: req.CompanyID, ContactID: req.ContactID}, nil
		})

	m.activities.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Times(4).
		DoAndReturn(func(_ context.Context, _, _ string, req domain.CreateActivityRequest) (*domain.Activity, error) {
			assert.NotNil(t, req.DealID)
			return &domain.Activity{ID: uuid.NewString()}, nil
		})

	campaignID := uuid.NewString()
	m.campaigns.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Return(&domain.Campaign{ID: campaignID}, nil)
	m.campaigns.EXPECT().
		AddContacts(gomock.Any(), orgID, campaignID, gomock.Len(6)).
		Return(&domain.CampaignMembershipResult{Added: 6}, nil)

	result, err := seeder.Run(context.Background(), "Demo@2024!", SeedCounts{
		Companies:          2,
		ContactsPerCompany: 3,
		DealsPerCompany:    1,
		ActivitiesPerDeal:  2,
	})

	require.NoError(t, err)
	assert.Equal(t, orgID, result.OrganizationID)
	assert.Contains(t, result.AdminEmail, "@"+seedDomain)
	assert.Equal(t, 2, result.Companies)
	assert.Equal(t, 6, result.Contacts)
	assert.Equal(t, 2, result.Deals)
	assert.Equal(t, 4, result.Activities)
	assert.Equal(t, int64(6), result.CampaignContacts)
}

func TestSeeder_Run_NoContactsSkipsCampaign(t *testing.T) {
	seeder, m := newTestSeeder(t)
	expectRegister(m)

	m.companies.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Return(&domain.Company{ID: uuid.NewString(), Name: "Acme"}, nil)

	result, err := seeder.Run(context.Background(), "Demo@2024!", SeedCounts{Companies: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Companies)
	assert.Zero(t, result.CampaignContacts)
}

func TestSeeder_Run_StopsOnError(t *testing.T) {
	seeder, m := newTestSeeder(t)
	expectRegister(m)

	m.companies.EXPECT().
		Create(gomock.Any(), orgID, userID, gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	result, err := seeder.Run(context.Background(), "Demo@2024!", SeedCounts{Companies: 3, ContactsPerCompany: 1})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao criar empresa")
	assert.Zero(t, result.Companies)
}

func TestSeeder_Run_RegisterFails(t *testing.T) {
	seeder, m := newTestSeeder(t)
	m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("senha fraca"))

	result, err := seeder.Run(context.Background(), "fraca", SeedCounts{Companies: 1})

	require.Error(t, err)
	assert.Nil(t, result)
}
