//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"reporting/internal/entities"
	enginereport "reporting/internal/report"
)

type Repository interface {
	GetCustomers(ctx context.Context) ([]entities.Customer, error)
	GetRestaurants(ctx context.Context) ([]entities.Restaurant, error)
	GetRiders(ctx context.Context) ([]entities.Rider, error)
	GetOrders(ctx context.Context) ([]entities.Order, error)
	GetDeliveries(ctx context.Context) ([]entities.Delivery, error)
}

type Catalog interface {
	List() []entities.ReportInfo
	Run(id int, ds *enginereport.Dataset, asOf time.Time, params entities.ReportParams) (*entities.ReportResult, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
