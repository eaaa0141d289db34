package managing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const campaignID = "55555555-5555-5555-5555-555555555555"

func newCampaignService(t *testing.T) (CampaignManager, *mocks.MockCampaignRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCampaignRepository(ctrl)
	return NewCampaignService(repo), repo
}

func TestCampaignService_Create_DateRange(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		end      *time.Time
		wantCode string
	}{
		{name: "sem data final", end: nil},
		{name: "mesmo dia", end: &start},
		{name: "data final anterior", end: &before, wantCode: apiErrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newCampaignService(t)

			if tt.wantCode == "" {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
						c.ID = campaignID
						return c, nil
					})
			}

			campaign, err := service.Create(context.Background(), orgID, userID, domain.CreateCampaignRequest{
				Name: "Black Friday", StartDate: &start, EndDate: tt.end,
			})

			if tt.wantCode != "" {
				var crmErr *CRMError
				require.True(t, errors.As(err, &crmErr))
				assert.Equal(t, tt.wantCode, crmErr.Code)
				assert.True(t, errors.Is(err, ErrInvalidDateRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.CampaignStatusDraft, campaign.Status)
			assert.True(t, campaign.CurrentProgress.IsZero())
			assert.Equal(t, userID, *campaign.OwnerID)
		})
	}
}

func TestCampaignService_AddContacts(t *testing.T) {
	campaign := &domain.Campaign{ID: campaignID, OrganizationID: orgID}
	ids := []string{"c1", "c2"}

	t.Run("recalcula progresso quando adiciona", func(t *testing.T) {
		service, repo := newCampaignService(t)
		repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(campaign, nil)
		repo.EXPECT().AddContacts(gomock.Any(), orgID, campaignID, ids).Return(int64(2), nil)
		repo.EXPECT().RefreshProgress(gomock.Any(), campaign).Return(decimal.NewFromInt(2), nil)

		result, err := service.AddContacts(context.Background(), orgID, campaignID, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Added)
	})

	t.Run("nada adicionado não recalcula", func(t *testing.T) {
		service, repo := newCampaignService(t)
		repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(campaign, nil)
		repo.EXPECT().AddContacts(gomock.Any(), orgID, campaignID, ids).Return(int64(0), nil)

		result, err := service.AddContacts(context.Background(), orgID, campaignID, ids)
		require.NoError(t, err)
		assert.Zero(t, result.Added)
	})

	t.Run("falha no recálculo não desfaz a inclusão", func(t *testing.T) {
		service, repo := newCampaignService(t)
		repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(campaign, nil)
		repo.EXPECT().AddContacts(gomock.Any(), orgID, campaignID, ids).Return(int64(1), nil)
		repo.EXPECT().RefreshProgress(gomock.Any(), campaign).Return(decimal.Zero, errors.New("timeout"))

		result, err := service.AddContacts(context.Background(), orgID, campaignID, ids)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Added)
	})

	t.Run("campanha inexistente", func(t *testing.T) {
		service, repo := newCampaignService(t)
		repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(nil, nil)

		_, err := service.AddContacts(context.Background(), orgID, campaignID, ids)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCampaignService_AddContactsBySegment_InvalidRange(t *testing.T) {
	service, _ := newCampaignService(t)
	low, high := 80, 20

	_, err := service.AddContactsBySegment(context.Background(), orgID, campaignID, domain.ContactSegment{
		LeadScore: &domain.LeadScoreRange{Min: &low, Max: &high},
	})

	var crmErr *CRMError
	require.True(t, errors.As(err, &crmErr))
	assert.Equal(t, apiErrors.ErrValidationFailed, crmErr.Code)
}

func TestCampaignService_Update_GoalChangeRefreshes(t *testing.T) {
	service, repo := newCampaignService(t)
	revenue := domain.CampaignGoalType("revenue")
	deals := domain.CampaignGoalType("deals")

	repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).
		Return(&domain.Campaign{ID: campaignID, OrganizationID: orgID, GoalType: &revenue}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) { return c, nil })
	repo.EXPECT().RefreshProgress(gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(3), nil)

	updated, err := service.Update(context.Background(), orgID, campaignID, domain.UpdateCampaignRequest{GoalType: &deals})
	require.NoError(t, err)
	assert.Equal(t, deals, *updated.GoalType)
}

func TestCampaignService_SyncProgress(t *testing.T) {
	service, repo := newCampaignService(t)
	first := &domain.Campaign{ID: "a"}
	second := &domain.Campaign{ID: "b"}

	repo.EXPECT().ListActive(gomock.Any()).Return([]*domain.Campaign{first, second}, nil)
	repo.EXPECT().RefreshProgress(gomock.Any(), first).Return(decimal.Zero, errors.New("boom"))
	repo.EXPECT().RefreshProgress(gomock.Any(), second).Return(decimal.NewFromInt(10), nil)

	updated, err := service.SyncProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
}

func TestCampaignService_UpdateContact(t *testing.T) {
	clicked := domain.CampaignContactClicked

	tests := []struct {
		name     string
		setup    func(repo *mocks.MockCampaignRepository)
		wantErr  error
		wantCode string
	}{
		{
			name: "clique carimba as etapas anteriores",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(&domain.Campaign{ID: campaignID, OrganizationID: orgID}, nil)
				repo.EXPECT().GetContact(gomock.Any(), campaignID, contactID).
					Return(&domain.CampaignContact{CampaignID: campaignID, ContactID: contactID, Status: domain.CampaignContactPending}, nil)
				repo.EXPECT().UpdateContactTracking(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cc *domain.CampaignContact) (bool, error) {
						assert.Equal(t, domain.CampaignContactClicked, cc.Status)
						assert.Equal(t, &fixedNow, cc.SentAt)
						assert.Equal(t, &fixedNow, cc.OpenedAt)
						assert.Equal(t, &fixedNow, cc.ClickedAt)
						return true, nil
					})
			},
		},
		{
			name: "campanha de outra organização",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(nil, nil)
			},
			wantErr:  domain.ErrNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "contato fora da campanha",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(&domain.Campaign{ID: campaignID, OrganizationID: orgID}, nil)
				repo.EXPECT().GetContact(gomock.Any(), campaignID, contactID).Return(nil, nil)
			},
			wantErr:  domain.ErrNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "vínculo removido durante a atualização",
			setup: func(repo *mocks.MockCampaignRepository) {
				repo.EXPECT().GetByID(gomock.Any(), orgID, campaignID).Return(&domain.Campaign{ID: campaignID, OrganizationID: orgID}, nil)
				repo.EXPECT().GetContact(gomock.Any(), campaignID, contactID).
					Return(&domain.CampaignContact{CampaignID: campaignID, ContactID: contactID}, nil)
				repo.EXPECT().UpdateContactTracking(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  domain.ErrNotFound,
			wantCode: apiErrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockCampaignRepository(ctrl)
			service := NewCampaignService(repo).(*CampaignService)
			service.now = func() time.Time { return fixedNow }
			tt.setup(repo)

			member, err := service.UpdateContact(context.Background(), orgID, campaignID, contactID,
				domain.UpdateCampaignContactRequest{Status: &clicked})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				var crmErr *CRMError
				require.True(t, errors.As(err, &crmErr))
				assert.Equal(t, tt.wantCode, crmErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.CampaignContactClicked, member.Status)
		})
	}
}
