//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	report_post "reporting/internal/handlers/rest/report_post"
	reports_get "reporting/internal/handlers/rest/reports_get"
	"reporting/internal/handlers/tasks/report_digest"
	"reporting/internal/pkg/config"

	"reporting/internal/catalog"
	datasetRepo "reporting/internal/repository/dataset"
	reportService "reporting/internal/service/report"

	"reporting/pkg/background"
	"reporting/pkg/logger"
	"reporting/pkg/querier"
	"reporting/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	DigestInterval time.Duration
	DigestReportID int
)

type Application struct {
	ServiceReport     ServiceReport
	BackgroundWorkers *background.Worker
}

type ServiceReport interface {
	reports_get.Service
	report_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDigestInterval,
		provideDigestReportID,

		provideDatasetRepository,
		provideCatalog,
		provideServiceReport,

		provideReportDigestTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceReport), new(*reportService.Service)),

		wire.Bind(new(reportService.Repository), new(*datasetRepo.Repository)),
		wire.Bind(new(reportService.Catalog), new(*catalog.Catalog)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),

		wire.Bind(new(report_digest.Service), new(*reportService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ReportService *reportService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-report-requested)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDatasetRepository,
		provideCatalog,
		provideServiceReport,

		wire.Bind(new(reportService.Repository), new(*datasetRepo.Repository)),
		wire.Bind(new(reportService.Catalog), new(*catalog.Catalog)),
		wire.Bind(new(reportService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDatasetRepository(querier *querier.Querier) *datasetRepo.Repository {
	return datasetRepo.New(querier)
}

func provideCatalog() *catalog.Catalog {
	return catalog.New()
}

func provideServiceReport(
	repository reportService.Repository,
	reportCatalog reportService.Catalog,
	txManager reportService.TxManager,
) *reportService.Service {
	return reportService.New(repository, reportCatalog, txManager)
}

func provideDigestInterval(cfg *config.Config) DigestInterval {
	return DigestInterval(cfg.Tasks.ReportDigestInterval)
}

func provideDigestReportID(cfg *config.Config) DigestReportID {
	return DigestReportID(cfg.Tasks.ReportDigestID)
}

func provideReportDigestTask(
	log logger.Logger,
	service report_digest.Service,
	reportID DigestReportID,
	interval DigestInterval,
) *report_digest.ReportDigest {
	return report_digest.NewReportDigest(log, service, int(reportID), time.Duration(interval))
}

func provideTaskList(
	reportDigestTask *report_digest.ReportDigest,
) []background.Task {
	return []background.Task{
		reportDigestTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
