package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/confixenvios/freight-quote-api/infrastructure/database/postgres"
	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet"
	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet/sheetclient"
	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/upload"
	"github.com/confixenvios/freight-quote-api/infrastructure/repository"
	"github.com/confixenvios/freight-quote-api/internal/api"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/scheduler"
	"github.com/confixenvios/freight-quote-api/internal/usecases/quoting"
	"github.com/confixenvios/freight-quote-api/internal/usecases/validating"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	tableRepo := repository.NewPricingTableRepository(pgConn)
	zoneRepo := repository.NewZoneRepository(pgConn)
	tierRepo := repository.NewPriceTierRepository(pgConn)

	sheetClient := sheetclient.NewClient(cfg)
	sheetIntegrator := spreadsheet.New(cfg, sheetClient)
	fileIntegrator := upload.New(cfg)

	quoteService := quoting.NewService(cfg, tableRepo, zoneRepo, tierRepo, sheetIntegrator, fileIntegrator)
	validationService := validating.NewService(cfg, tableRepo, zoneRepo, tierRepo, sheetIntegrator, fileIntegrator)

	// Inicializa o agendador de revalidação das tabelas de preço
	tableValidationSyncService := scheduler.NewTableValidationSyncService(
		validationService,
		quoteService,
		cfg,
	)

	if err := tableValidationSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de revalidação de tabelas")
	} else {
		logrus.Info("Agendador de revalidação de tabelas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		quoteService,
		validationService,
		tableRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
