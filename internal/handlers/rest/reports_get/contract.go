//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reports_get_test
package reports_get

import (
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
	ListReports() []entities.ReportInfo
}
