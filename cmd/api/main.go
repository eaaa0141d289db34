package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/infrastructure/integrator/llm"
	"github.com/vfg2006/crm-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/crm-api/infrastructure/migration"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/api"
	"github.com/vfg2006/crm-api/internal/api/handler"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// chave da IA e segredo do JWT podem vir dos secrets do Render
	if err := cfg.ApplySecrets(ctx, config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar os secrets do Render")
	}

	if cfg.Migrations.RunOnStartup {
		if err := migration.Run(cfg.Database.DSN, migration.DirectionUp); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := pgConn.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		logrus.WithError(err).Warn("Não foi possível registrar as métricas do pool do PostgreSQL")
	}

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	dashboardCache := cache.NewDashboardCache(redisClient, cfg.DashboardCacheTTL)
	revoker := cache.NewTokenRevoker(redisClient)

	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	analyticsRepo := repository.NewAnalyticsRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, revoker, cfg)

	companyService := managing.NewCompanyService(companyRepo, contactRepo, dealRepo, dashboardCache)
	contactService := managing.NewContactService(contactRepo, dashboardCache)
	dealService := managing.NewDealService(dealRepo, dashboardCache)
	activityService := managing.NewActivityService(activityRepo, dashboardCache)
	campaignService := managing.NewCampaignService(campaignRepo)
	projectService := managing.NewProjectService(projectRepo)
	importService := managing.NewImportService(companyService, contactService)

	insightService := insighting.NewService(analyticsRepo, contactRepo, companyRepo, dealRepo, activityRepo, dashboardCache)

	llmIntegrator := llm.New(cfg.LLM, llmclient.NewClient(cfg.LLM))
	if !llmIntegrator.Enabled() {
		logrus.Warn("ANTHROPIC_API_KEY não configurada, funcionalidades de IA indisponíveis")
	}
	assistant := assisting.NewService(llmIntegrator, contactRepo, companyRepo, dealRepo, activityRepo)

	campaignProgressSyncService := scheduler.NewCampaignProgressSyncService(campaignService, cfg)
	leadScoringSyncService := scheduler.NewLeadScoringSyncService(assistant, cfg)

	if err := campaignProgressSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de progresso de campanhas")
	} else {
		logrus.Info("Agendador de progresso de campanhas iniciado com sucesso")
	}

	if err := leadScoringSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de pontuação de leads")
	} else {
		logrus.Info("Agendador de pontuação de leads iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Companies:     companyService,
		Contacts:      contactService,
		Deals:         dealService,
		Activities:    activityService,
		Campaigns:     campaignService,
		Projects:      projectService,
		Importer:      importService,
		Insights:      insightService,
		Assistant:     assistant,
		CronJobs: handler.CronJobServices{
			CampaignProgressSyncService: campaignProgressSyncService,
			LeadScoringSyncService:      leadScoringSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
