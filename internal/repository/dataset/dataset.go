package dataset

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"reporting/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository — поставщик табличных сканов для отчётов. Только чтение:
// все запросы — полные сканы справочных и фактовых таблиц в стабильном
// порядке первичного ключа.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetCustomers(ctx context.Context) ([]entities.Customer, error) {
	query, args, err := qb.
		Select("customer_id", "customer_name", "reg_date").
		From("customers").
		OrderBy("customer_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build customers scan: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dataset repository customers scan error: %w", err)
	}
	defer rows.Close()

	var out []entities.Customer
	for rows.Next() {
		var c CustomerDB
		if err := rows.Scan(&c.ID, &c.Name, &c.RegDate); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		out = append(out, ToCustomerDomain(&c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers scan: %w", err)
	}
	return out, nil
}

func (r *Repository) GetRestaurants(ctx context.Context) ([]entities.Restaurant, error) {
	query, args, err := qb.
		Select("restaurant_id", "restaurant_name", "city", "opening_hours").
		From("restaurants").
		OrderBy("restaurant_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build restaurants scan: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dataset repository restaurants scan error: %w", err)
	}
	defer rows.Close()

	var out []entities.Restaurant
	for rows.Next() {
		var rest RestaurantDB
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.City, &rest.OpeningHours); err != nil {
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		out = append(out, ToRestaurantDomain(&rest))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restaurants scan: %w", err)
	}
	return out, nil
}

func (r *Repository) GetRiders(ctx context.Context) ([]entities.Rider, error) {
	query, args, err := qb.
		Select("rider_id", "rider_name", "sign_up").
		From("riders").
		OrderBy("rider_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build riders scan: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dataset repository riders scan error: %w", err)
	}
	defer rows.Close()

	var out []entities.Rider
	for rows.Next() {
		var rd RiderDB
		if err := rows.Scan(&rd.ID, &rd.Name, &rd.SignUp); err != nil {
			return nil, fmt.Errorf("scan rider row: %w", err)
		}
		out = append(out, ToRiderDomain(&rd))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("riders scan: %w", err)
	}
	return out, nil
}

func (r *Repository) GetOrders(ctx context.Context) ([]entities.Order, error) {
	query, args, err := qb.
		Select(
			"order_id", "customer_id", "restaurant_id", "order_item",
			"order_status", "total_amount", "order_date", "order_time",
		).
		From("orders").
		OrderBy("order_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build orders scan: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dataset repository orders scan error: %w", err)
	}
	defer rows.Close()

	var out []entities.Order
	for rows.Next() {
		var o OrderDB
		err := rows.Scan(
			&o.ID, &o.CustomerID, &o.RestaurantID, &o.OrderItem,
			&o.Status, &o.TotalAmount, &o.OrderDate, &o.OrderTime,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		out = append(out, ToOrderDomain(&o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders scan: %w", err)
	}
	return out, nil
}

func (r *Repository) GetDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	query, args, err := qb.
		Select("delivery_id", "order_id", "rider_id", "delivery_status", "delivery_time").
		From("deliveries").
		OrderBy("delivery_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deliveries scan: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected dataset repository deliveries scan error: %w", err)
	}
	defer rows.Close()

	var out []entities.Delivery
	for rows.Next() {
		var d DeliveryDB
		if err := rows.Scan(&d.ID, &d.OrderID, &d.RiderID, &d.Status, &d.DeliveryTime); err != nil {
			return nil, fmt.Errorf("scan delivery row: %w", err)
		}
		out = append(out, ToDeliveryDomain(&d))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("deliveries scan: %w", err)
	}
	return out, nil
}
