package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// LeadScoringSyncConfig representa a configuração da pontuação de leads em lote
type LeadScoringSyncConfig struct {
	CronSchedule        string
	StaleAfterDays      int
	BatchSize           int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// LeadScoringSyncService pontua pela IA os contatos sem score ou com score antigo
type LeadScoringSyncService struct {
	scheduler           *gocron.Scheduler
	config              LeadScoringSyncConfig
	scorer              assisting.LeadScorer
	limiter             *rate.Limiter
	baseCtx             context.Context
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncScored      int64
	lastSyncFailed      int64
}

func NewLeadScoringSyncService(scorer assisting.LeadScorer, appConfig *config.Config) *LeadScoringSyncService {
	syncConfig := LeadScoringSyncConfig{
		CronSchedule:        appConfig.LeadScoringSync.CronSchedule,
		StaleAfterDays:      appConfig.LeadScoringSync.StaleAfterDays,
		BatchSize:           appConfig.LeadScoringSync.BatchSize,
		RequestDelaySeconds: appConfig.LeadScoringSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.LeadScoringSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.LeadScoringSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	// uma chamada à IA a cada RequestDelaySeconds
	limit := rate.Inf
	if syncConfig.RequestDelaySeconds > 0 {
		limit = rate.Every(time.Duration(syncConfig.RequestDelaySeconds) * time.Second)
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"stale_after_days":      syncConfig.StaleAfterDays,
		"batch_size":            syncConfig.BatchSize,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de pontuação de leads carregada")

	return &LeadScoringSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		scorer:    scorer,
		limiter:   rate.NewLimiter(limit, 1),
		baseCtx:   context.Background(),
		now:       time.Now,
	}
}

func (s *LeadScoringSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pontuação de leads em lote desabilitada por configuração")
		return nil
	}
	if !s.scorer.Enabled() {
		logrus.Warn("Pontuação de leads em lote não iniciada: serviço de IA não configurado")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de pontuação de leads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.scoreStaleContacts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pontuação de leads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de pontuação de leads")
		s.scheduler.Stop()
	}()

	return nil
}

// scoreStaleContacts pontua um lote de contatos respeitando o limite de requisições e de concorrência
func (s *LeadScoringSyncService) scoreStaleContacts(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pontuação de leads já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()
	scoredBefore := s.now().AddDate(0, 0, -s.config.StaleAfterDays)

	contacts, err := s.scorer.StaleContacts(ctx, scoredBefore, s.config.BatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar contatos para pontuação")
		return
	}

	if len(contacts) == 0 {
		logrus.Info("Nenhum contato pendente de pontuação")
		s.finish(0, 0)
		return
	}

	var (
		scored int64
		failed int64
		wg     sync.WaitGroup
	)
	sem := semaphore.NewWeighted(int64(s.config.MaxConcurrentJobs))

	for _, contact := range contacts {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		if err := s.limiter.Wait(ctx); err != nil {
			sem.Release(1)
			break
		}

		wg.Add(1)
		go func(c *domain.Contact) {
			defer func() {
				sem.Release(1)
				wg.Done()
			}()

			result, err := s.scorer.Rescore(ctx, c)
			if err != nil {
				atomic.AddInt64(&failed, 1)
				logrus.WithError(err).WithField("contact_id", c.ID).Error("Erro ao pontuar contato")
				return
			}

			atomic.AddInt64(&scored, 1)
			logrus.WithFields(logrus.Fields{
				"contact_id": c.ID,
				"score":      result.Score,
				"grade":      result.Grade,
			}).Debug("Contato pontuado")
		}(contact)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"contacts": len(contacts),
		"scored":   scored,
		"failed":   failed,
	}).Info("Pontuação de leads concluída")

	s.finish(scored, failed)
}

func (s *LeadScoringSyncService) finish(scored, failed int64) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = s.now()
	s.lastSyncScored = scored
	s.lastSyncFailed = failed
}

func (s *LeadScoringSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pontuação de leads já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando pontuação manual de leads")
	go s.scoreStaleContacts(s.baseCtx)
}

func (s *LeadScoringSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_stale_after_days":  s.config.StaleAfterDays,
		"sync_batch_size":        s.config.BatchSize,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_scored":       s.lastSyncScored,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
