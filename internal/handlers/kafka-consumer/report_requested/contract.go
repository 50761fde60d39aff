//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_requested_test
package report_requested

import (
	"context"

	"reporting/internal/entities"
	"reporting/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RunReport(ctx context.Context, id int, params entities.ReportParams) (*entities.ReportResult, error)
}

// requestedEvent — сообщение report.requested: номер отчёта и опциональные
// параметры запуска.
type requestedEvent struct {
	ReportID     int     `json:"report_id"`
	CustomerName *string `json:"customer_name,omitempty"`
	AsOf         *string `json:"as_of,omitempty"` // RFC 3339
}
