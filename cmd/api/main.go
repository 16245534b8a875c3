package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/messaging/kafka"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/metrics"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	saleRepo := repository.NewSaleRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)

	m := metrics.New()

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(cfg, saleRepo, productRepo, userRepo, companyRepo, m)

	publisher := kafka.NewDigestPublisher(cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.L.WithError(err).Error("Erro ao fechar o publicador do Kafka")
		}
	}()

	kpiDigestService := scheduler.NewKPIDigestService(analyzer, companyRepo, publisher, m, cfg)
	if err := kpiDigestService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador do resumo de KPIs")
	} else {
		log.L.Info("Agendador do resumo de KPIs iniciado com sucesso")
	}

	server, err := api.New(cfg, analyzer, authenticator, kpiDigestService, m)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// changeToSourceDir posiciona o processo no diretório do main para que o .env local seja encontrado
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		log.L.WithError(err).Warn("Não foi possível mudar para o diretório da aplicação")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) postgres.Conn {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
