package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"reporting/internal/catalog"
	"reporting/internal/entities"
)

type Service struct {
	repository Repository
	catalog    Catalog
	txManager  TxManager
}

func New(repository Repository, reportCatalog Catalog, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		catalog:    reportCatalog,
		txManager:  txManager,
	}
}

// ListReports возвращает метаданные каталога в порядке номеров отчётов.
func (s *Service) ListReports() []entities.ReportInfo {
	return s.catalog.List()
}

// RunReport загружает консистентный снапшот пяти таблиц и вычисляет отчёт.
// Отчёт либо вычисляется целиком, либо завершается ошибкой — частичных
// результатов нет.
func (s *Service) RunReport(ctx context.Context, id int, params entities.ReportParams) (*entities.ReportResult, error) {
	if err := validateRunRequest(id, params); err != nil {
		return nil, err
	}

	started := time.Now()
	reportLabel := strconv.Itoa(id)

	snapshot, err := s.LoadSnapshot(ctx)
	if err != nil {
		ReportRunsTotal.WithLabelValues(reportLabel, "snapshot_error").Inc()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	result, err := s.runOnSnapshot(snapshot, id, params)
	if err != nil {
		ReportRunsTotal.WithLabelValues(reportLabel, "error").Inc()
		return nil, err
	}

	ReportRunsTotal.WithLabelValues(reportLabel, "ok").Inc()
	ReportRunDuration.WithLabelValues(reportLabel).Observe(time.Since(started).Seconds())
	return result, nil
}

// RunReportOnSnapshot вычисляет отчёт над уже загруженным снапшотом.
// Вычисления над одним снапшотом независимы и могут идти параллельно.
func (s *Service) RunReportOnSnapshot(snapshot *entities.Snapshot, id int, params entities.ReportParams) (*entities.ReportResult, error) {
	if err := validateRunRequest(id, params); err != nil {
		return nil, err
	}
	return s.runOnSnapshot(snapshot, id, params)
}

func (s *Service) runOnSnapshot(snapshot *entities.Snapshot, id int, params entities.ReportParams) (*entities.ReportResult, error) {
	ds, err := catalog.BuildDataset(snapshot)
	if err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}

	asOf := time.Now().UTC()
	if params.AsOf != nil {
		asOf = *params.AsOf
	}

	result, err := s.catalog.Run(id, ds, asOf, params)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownReport) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("evaluate report %d: %w", id, err)
	}
	return result, nil
}

// LoadSnapshot читает все пять таблиц внутри одной read-only транзакции:
// отчёт всегда считается над согласованным срезом данных.
func (s *Service) LoadSnapshot(ctx context.Context) (*entities.Snapshot, error) {
	snapshot := &entities.Snapshot{}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		if snapshot.Customers, err = s.repository.GetCustomers(ctx); err != nil {
			return fmt.Errorf("customers: %w", err)
		}
		if snapshot.Restaurants, err = s.repository.GetRestaurants(ctx); err != nil {
			return fmt.Errorf("restaurants: %w", err)
		}
		if snapshot.Riders, err = s.repository.GetRiders(ctx); err != nil {
			return fmt.Errorf("riders: %w", err)
		}
		if snapshot.Orders, err = s.repository.GetOrders(ctx); err != nil {
			return fmt.Errorf("orders: %w", err)
		}
		if snapshot.Deliveries, err = s.repository.GetDeliveries(ctx); err != nil {
			return fmt.Errorf("deliveries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}
