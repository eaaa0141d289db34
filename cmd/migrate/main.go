package main

import (
	"flag"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/migration"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/pkg/log"
)

func main() {
	direction := flag.String("direction", migration.DirectionUp, "up ou down")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	if err := migration.Run(cfg.Database.DSN, *direction); err != nil {
		logrus.WithError(err).Fatal("Erro ao executar migrações")
	}
}
