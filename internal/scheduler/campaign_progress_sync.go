package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
)

// CampaignProgressSyncConfig representa a configuração do recálculo de progresso das campanhas
type CampaignProgressSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// CampaignProgressSyncService recalcula periodicamente o progresso das campanhas ativas
type CampaignProgressSyncService struct {
	scheduler           *gocron.Scheduler
	config              CampaignProgressSyncConfig
	campaigns           managing.CampaignManager
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncUpdated     int
}

func NewCampaignProgressSyncService(campaigns managing.CampaignManager, appConfig *config.Config) *CampaignProgressSyncService {
	syncConfig := CampaignProgressSyncConfig{
		CronSchedule: appConfig.CampaignProgress.CronSchedule,
		SyncEnabled:  appConfig.CampaignProgress.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de progresso de campanhas carregada")

	return &CampaignProgressSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		campaigns: campaigns,
		baseCtx:   context.Background(),
	}
}

// Start agenda o recálculo; o agendador para quando ctx é cancelado
func (s *CampaignProgressSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recálculo de progresso de campanhas desabilitado por configuração")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de progresso de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllCampaigns(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recálculo de progresso de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de progresso de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CampaignProgressSyncService) syncAllCampaigns(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de progresso de campanhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	updated, err := s.campaigns.SyncProgress(ctx)
	if err != nil {
		logrus.WithError(err).WithField("updated", updated).Error("Erro ao recalcular progresso das campanhas")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"updated":  updated,
	}).Info("Recálculo de progresso de campanhas concluído")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncUpdated = updated
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente o recálculo
func (s *CampaignProgressSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recálculo de progresso de campanhas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recálculo manual de progresso de campanhas")
	go s.syncAllCampaigns(s.baseCtx)
}

func (s *CampaignProgressSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_updated":      s.lastSyncUpdated,
	}
}
