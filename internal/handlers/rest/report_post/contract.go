//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_post_test
package report_post

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
