package report_digest

import (
	"context"
	"time"

	"reporting/internal/entities"
	"reporting/pkg/logger"
)

type Service interface {
	RunReport(ctx context.Context, id int, params entities.ReportParams) (*entities.ReportResult, error)
}

// ReportDigest периодически вычисляет настроенный отчёт и пишет сводку в
// лог. Дешёвый прогрев и смоук всей цепочки снапшот → движок.
type ReportDigest struct {
	log      logger.Logger
	service  Service
	reportID int
	interval time.Duration
}

func NewReportDigest(log logger.Logger, service Service, reportID int, interval time.Duration) *ReportDigest {
	return &ReportDigest{
		log:      log,
		service:  service,
		reportID: reportID,
		interval: interval,
	}
}

func (d *ReportDigest) TTL() time.Duration {
	return d.interval
}

func (d *ReportDigest) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	result, err := d.service.RunReport(ctxWithTimeout, d.reportID, entities.ReportParams{})
	if err != nil {
		return err
	}

	d.log.With(
		logger.NewField("report", result.Info.Slug),
		logger.NewField("rows", len(result.Rows)),
	).Info("report digest")

	return nil
}

func (d *ReportDigest) Info() string {
	return "report digest"
}
