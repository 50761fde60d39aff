package catalog

import (
	"fmt"

	"reporting/internal/entities"
	"reporting/internal/report"
)

// Канонические имена таблиц снапшота. Схема следует телам запросов,
// а не ERD-наброску: customers/restaurants/riders/orders/deliveries.
const (
	TableCustomers   = "customers"
	TableRestaurants = "restaurants"
	TableRiders      = "riders"
	TableOrders      = "orders"
	TableDeliveries  = "deliveries"
)

// BuildDataset переводит типизированный снапшот в табличное представление
// движка отчётов с каноническими именами колонок.
func BuildDataset(snap *entities.Snapshot) (*report.Dataset, error) {
	ds := report.NewDataset()

	customers, err := customersTable(snap.Customers)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableCustomers, err)
	}
	ds.Add(TableCustomers, customers)

	restaurants, err := restaurantsTable(snap.Restaurants)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableRestaurants, err)
	}
	ds.Add(TableRestaurants, restaurants)

	riders, err := ridersTable(snap.Riders)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableRiders, err)
	}
	ds.Add(TableRiders, riders)

	orders, err := ordersTable(snap.Orders)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableOrders, err)
	}
	ds.Add(TableOrders, orders)

	deliveries, err := deliveriesTable(snap.Deliveries)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", TableDeliveries, err)
	}
	ds.Add(TableDeliveries, deliveries)

	return ds, nil
}

func customersTable(customers []entities.Customer) (*report.Table, error) {
	schema, err := report.NewSchema("customer_id", "customer_name", "reg_date")
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(customers))
	for i, c := range customers {
		rows[i] = report.Row{c.ID, c.Name, c.RegDate}
	}
	return &report.Table{Schema: schema, Rows: rows}, nil
}

func restaurantsTable(restaurants []entities.Restaurant) (*report.Table, error) {
	schema, err := report.NewSchema("restaurant_id", "restaurant_name", "city", "opening_hours")
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(restaurants))
	for i, r := range restaurants {
		rows[i] = report.Row{r.ID, r.Name, r.City, r.OpeningHours}
	}
	return &report.Table{Schema: schema, Rows: rows}, nil
}

func ridersTable(riders []entities.Rider) (*report.Table, error) {
	schema, err := report.NewSchema("rider_id", "rider_name", "sign_up")
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(riders))
	for i, r := range riders {
		rows[i] = report.Row{r.ID, r.Name, r.SignUp}
	}
	return &report.Table{Schema: schema, Rows: rows}, nil
}

func ordersTable(orders []entities.Order) (*report.Table, error) {
	schema, err := report.NewSchema(
		"order_id", "customer_id", "restaurant_id", "order_item",
		"order_status", "total_amount", "order_date", "order_time",
	)
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(orders))
	for i, o := range orders {
		rows[i] = report.Row{
			o.ID, o.CustomerID, o.RestaurantID, o.OrderItem,
			o.Status.String(), o.TotalAmount, o.OrderDate, o.OrderTime,
		}
	}
	return &report.Table{Schema: schema, Rows: rows}, nil
}

func deliveriesTable(deliveries []entities.Delivery) (*report.Table, error) {
	schema, err := report.NewSchema(
		"delivery_id", "order_id", "rider_id", "delivery_status", "delivery_time",
	)
	if err != nil {
		return nil, err
	}
	rows := make([]report.Row, len(deliveries))
	for i, d := range deliveries {
		rows[i] = report.Row{d.ID, d.OrderID, d.RiderID, d.Status.String(), d.DeliveryTime}
	}
	return &report.Table{Schema: schema, Rows: rows}, nil
}
