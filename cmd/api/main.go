package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bizmetrics-api/infrastructure/broker/rabbitmq"
	"github.com/vfg2006/bizmetrics-api/infrastructure/database"
	"github.com/vfg2006/bizmetrics-api/infrastructure/memory"
	"github.com/vfg2006/bizmetrics-api/infrastructure/repository"
	"github.com/vfg2006/bizmetrics-api/internal/api"
	"github.com/vfg2006/bizmetrics-api/internal/api/handler"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/internal/scheduler"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/insighting"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if !log.Configure(cfg.App.LogLevel, cfg.App.LogFormat) {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metricsService := metricsing.NewService(cfg, memory.NewMetricsStore())
	cronJobs := handler.CronJobServices{}

	if cfg.Database.ArchiveEnabled {
		conn := dbconn(ctx, cfg.Database)
		defer conn.Close()

		archiveRepo := repository.NewUploadArchiveRepository(conn, conn.Placeholder())
		metricsService.WithArchive(archiveRepo)

		retentionService := scheduler.NewArchiveRetentionService(archiveRepo, cfg)
		if err := retentionService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar a limpeza do arquivo de uploads")
		}
		cronJobs[handler.CronJobTypeArchiveRetention] = retentionService
	} else {
		logrus.Info("Arquivo de uploads desabilitado, métricas apenas em memória")
	}

	if cfg.Broker.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.Broker)
		if err != nil {
			// O dashboard funciona sem eventos
			logrus.WithError(err).Error("Erro ao conectar no broker, eventos desabilitados")
		} else {
			defer publisher.Close()
			metricsService.WithPublisher(publisher)
		}
	}

	server, err := api.New(cfg, api.Services{
		Metrics:       metricsService,
		Insights:      insighting.NewService(),
		Authenticator: authenticating.NewService(cfg),
		CronJobs:      cronJobs,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn aplica as migrações e abre a conexão do arquivo de uploads
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	if err := database.RunMigrations(dbConfig); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações do arquivo de uploads")
	}

	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao conectar ao banco %s", dbConfig.Driver)
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com o banco estabelecida com sucesso")
	return conn
}
