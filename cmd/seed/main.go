package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/cache"
	"github.com/vfg2006/crm-api/infrastructure/database/postgres"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/log"
)

func main() {
	companies := flag.Int("companies", 10, "empresas por organização")
	contacts := flag.Int("contacts", 3, "contatos por empresa")
	deals := flag.Int("deals", 2, "negócios por empresa")
	activities := flag.Int("activities", 2, "atividades por negócio")
	password := flag.String("password", "Demo@2024!", "senha do administrador de demonstração")
	seed := flag.Uint64("seed", 0, "semente do gerador (0 usa uma aleatória)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	redisClient, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	dashboardCache := cache.NewDashboardCache(redisClient, cfg.DashboardCacheTTL)

	companyRepo := repository.NewCompanyRepository(conn)
	contactRepo := repository.NewContactRepository(conn)
	dealRepo := repository.NewDealRepository(conn)

	seeder := NewSeeder(
		*seed,
		authenticating.NewService(repository.NewUserRepository(conn), cache.NewTokenRevoker(redisClient), cfg),
		managing.NewCompanyService(companyRepo, contactRepo, dealRepo, dashboardCache),
		managing.NewContactService(contactRepo, dashboardCache),
		managing.NewDealService(dealRepo, dashboardCache),
		managing.NewActivityService(repository.NewActivityRepository(conn), dashboardCache),
		managing.NewCampaignService(repository.NewCampaignRepository(conn)),
	)

	start := time.Now()
	result, err := seeder.Run(ctx, *password, SeedCounts{
		Companies:          *companies,
		ContactsPerCompany: *contacts,
		DealsPerCompany:    *deals,
		ActivitiesPerDeal:  *activities,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao popular o banco de dados")
	}

	logrus.WithFields(logrus.Fields{
		"organization_id":   result.OrganizationID,
		"admin_email":       result.AdminEmail,
		"companies":         result.Companies,
		"contacts":          result.Contacts,
		"deals":             result.Deals,
		"activities":        result.Activities,
		"campaign_contacts": result.CampaignContacts,
		"elapsed":           time.Since(start).String(),
	}).Info("Carga de demonstração concluída")
}
