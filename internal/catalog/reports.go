package catalog

import (
	"reporting/internal/entities"
	"reporting/internal/report"
)

// DefaultCustomerName — клиент отчёта №1, если параметр не передан.
const DefaultCustomerName = "Arjun Mehta"

const (
	SegmentGold   = "GOLD"
	SegmentSilver = "SILVER"
)

const deliveredStatus = string(entities.DeliveryDelivered)

// buildEntries собирает фиксированный каталог. Номера и форма результата —
// версионированная поверхность: менять их нельзя, только добавлять новые
// отчёты.
func buildEntries() []Entry {
	return []Entry{
		topDishesForCustomer(),
		popularTimeSlots(),
		avgOrderValueFrequentCustomers(),
		highValueCustomers(),
		ordersWithoutDelivery(),
		restaurantRevenueRank(),
		topDishPerCity(),
		customerChurn(),
		cancellationRateComparison(),
		riderAverageDeliveryTime(),
		restaurantGrowthRatio(),
		customerSegmentation(),
		riderMonthlyEarnings(),
		riderRatingAnalysis(),
		orderFrequencyByDay(),
		customerLifetimeValue(),
		monthlySalesTrend(),
		riderEfficiency(),
		seasonalItemPopularity(),
		cityRevenueRank(),
	}
}

func fromOrders() report.From {
	return report.From{Table: TableOrders}
}

func joinCustomers() report.Join {
	return report.Join{
		Kind:  report.JoinInner,
		Table: TableCustomers,
		On:    []report.JoinOn{{Left: "customer_id", Right: "customer_id"}},
	}
}

func joinRestaurants() report.Join {
	return report.Join{
		Kind:  report.JoinInner,
		Table: TableRestaurants,
		On:    []report.JoinOn{{Left: "restaurant_id", Right: "restaurant_id"}},
	}
}

func leftJoinDeliveries() report.Join {
	return report.Join{
		Kind:  report.JoinLeft,
		Table: TableDeliveries,
		On:    []report.JoinOn{{Left: "order_id", Right: "order_id"}},
	}
}

func joinRiders() report.Join {
	return report.Join{
		Kind:  report.JoinInner,
		Table: TableRiders,
		On:    []report.JoinOn{{Left: "rider_id", Right: "rider_id"}},
	}
}

// deliveredOrdersWithRiders — успешные доставки, обогащённые заказом и
// курьером: deliveries ⋈ orders ⋈ riders, только статус Delivered.
func deliveredOrdersWithRiders() report.Pipeline {
	return report.Pipeline{
		From: report.From{Table: TableDeliveries},
		Joins: []report.Join{
			{
				Kind:  report.JoinInner,
				Table: TableOrders,
				On:    []report.JoinOn{{Left: "order_id", Right: "order_id"}},
			},
			joinRiders(),
		},
		Where: report.Eq(report.Col("delivery_status"), report.Lit(deliveredStatus)),
	}
}

// №1. Топ-5 блюд названного клиента за последний год.
func topDishesForCustomer() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          1,
			Slug:        "top-dishes-for-customer",
			Description: "Top 5 dishes ordered by a customer over the trailing year",
			Params: []entities.ReportParamInfo{
				{Name: "customer_name", Default: DefaultCustomerName},
			},
			Columns: []entities.ReportColumn{
				{Name: "customer_name", Type: entities.ColumnString},
				{Name: "dish", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
				{Name: "rank", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   1,
			Slug: "top-dishes-for-customer",
			Pipeline: report.Pipeline{
				From:  fromOrders(),
				Joins: []report.Join{joinCustomers()},
				Where: report.And(
					report.Eq(report.Col("customer_name"), report.Param("customer_name")),
					report.Ge(report.Col("order_date"), report.AgoMonths(12)),
				),
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "customer_name", Expr: report.Col("customer_name")},
						{Name: "dish", Expr: report.Col("order_item")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggCount},
					},
				},
				Windows: []report.Window{
					{
						Name:    "rank",
						Fn:      report.WinRank,
						OrderBy: []report.SortKey{report.Desc(report.Col("total_orders"))},
					},
				},
				PostWhere: report.Le(report.Col("rank"), report.Lit(5)),
				OrderBy: []report.SortKey{
					report.Asc(report.Col("rank")),
					report.Asc(report.Col("dish")),
				},
			},
		},
		bindParams: func(params entities.ReportParams) map[string]report.Value {
			name := DefaultCustomerName
			if params.CustomerName != nil {
				name = *params.CustomerName
			}
			return map[string]report.Value{"customer_name": name}
		},
	}
}

// №2. Популярность двухчасовых интервалов времени заказа.
func popularTimeSlots() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          2,
			Slug:        "popular-time-slots",
			Description: "Order counts per 2-hour time slot of the day",
			Columns: []entities.ReportColumn{
				{Name: "slot_start", Type: entities.ColumnInt},
				{Name: "slot_end", Type: entities.ColumnInt},
				{Name: "order_count", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   2,
			Slug: "popular-time-slots",
			Pipeline: report.Pipeline{
				From: report.From{Table: TableOrders},
				Derive: []report.Derived{
					{Name: "slot_start", Expr: report.SlotStart(report.Col("order_time"))},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "slot_start", Expr: report.Col("slot_start")},
					},
					Aggs: []report.Aggregate{
						{Name: "order_count", Fn: report.AggCount},
					},
				},
				Project: []report.Projection{
					{Name: "slot_start", Expr: report.Col("slot_start")},
					{Name: "slot_end", Expr: report.Add(report.Col("slot_start"), report.Lit(2))},
					{Name: "order_count", Expr: report.Col("order_count")},
				},
				OrderBy: []report.SortKey{
					report.Desc(report.Col("order_count")),
					report.Asc(report.Col("slot_start")),
				},
			},
		},
	}
}

// №3. Средний чек клиентов, сделавших больше 750 заказов.
func avgOrderValueFrequentCustomers() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          3,
			Slug:        "avg-order-value-frequent-customers",
			Description: "Average order value of customers with more than 750 orders",
			Columns: []entities.ReportColumn{
				{Name: "customer_id", Type: entities.ColumnInt},
				{Name: "customer_name", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
				{Name: "avg_order_value", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   3,
			Slug: "avg-order-value-frequent-customers",
			Pipeline: report.Pipeline{
				From:  fromOrders(),
				Joins: []report.Join{joinCustomers()},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "customer_id", Expr: report.Col("customer_id")},
						{Name: "customer_name", Expr: report.Col("customer_name")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggCount},
						{Name: "avg_order_value", Fn: report.AggAvg, Arg: report.Col("total_amount")},
					},
				},
				Having: report.Gt(report.Col("total_orders"), report.Lit(750)),
				OrderBy: []report.SortKey{
					report.Desc(report.Col("avg_order_value")),
					report.Asc(report.Col("customer_id")),
				},
			},
		},
	}
}

// №4. Клиенты с суммарными тратами выше 100000.
func highValueCustomers() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          4,
			Slug:        "high-value-customers",
			Description: "Customers whose total spend exceeds 100000",
			Columns: []entities.ReportColumn{
				{Name: "customer_id", Type: entities.ColumnInt},
				{Name: "customer_name", Type: entities.ColumnString},
				{Name: "total_spent", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   4,
			Slug: "high-value-customers",
			Pipeline: report.Pipeline{
				From:  fromOrders(),
				Joins: []report.Join{joinCustomers()},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "customer_id", Expr: report.Col("customer_id")},
						{Name: "customer_name", Expr: report.Col("customer_name")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_spent", Fn: report.AggSum, Arg: report.Col("total_amount")},
					},
				},
				Having: report.Gt(report.Col("total_spent"), report.Lit(100000)),
				OrderBy: []report.SortKey{
					report.Desc(report.Col("total_spent")),
					report.Asc(report.Col("customer_id")),
				},
			},
		},
	}
}

// №5. Заказы без единой строки доставки: LEFT JOIN и NULL справа.
func ordersWithoutDelivery() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          5,
			Slug:        "orders-without-delivery",
			Description: "Orders that never got a delivery row, per restaurant and city",
			Columns: []entities.ReportColumn{
				{Name: "restaurant_id", Type: entities.ColumnInt},
				{Name: "restaurant_name", Type: entities.ColumnString},
				{Name: "city", Type: entities.ColumnString},
				{Name: "undelivered_orders", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   5,
			Slug: "orders-without-delivery",
			Pipeline: report.Pipeline{
				From:  report.From{Table: TableOrders},
				Joins: []report.Join{leftJoinDeliveries(), joinRestaurants()},
				Where: report.IsNull(report.Col("delivery_id")),
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
						{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
						{Name: "city", Expr: report.Col("city")},
					},
					Aggs: []report.Aggregate{
						{Name: "undelivered_orders", Fn: report.AggCount},
					},
				},
				OrderBy: []report.SortKey{
					report.Desc(report.Col("undelivered_orders")),
					report.Asc(report.Col("restaurant_id")),
				},
			},
		},
	}
}

// №6. Выручка ресторанов за последний год с рангом внутри города.
func restaurantRevenueRank() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          6,
			Slug:        "restaurant-revenue-rank",
			Description: "Trailing-year restaurant revenue ranked within each city",
			Columns: []entities.ReportColumn{
				{Name: "restaurant_id", Type: entities.ColumnInt},
				{Name: "restaurant_name", Type: entities.ColumnString},
				{Name: "city", Type: entities.ColumnString},
				{Name: "total_revenue", Type: entities.ColumnFloat},
				{Name: "rank", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   6,
			Slug: "restaurant-revenue-rank",
			Pipeline: report.Pipeline{
				From:  report.From{Table: TableOrders},
				Joins: []report.Join{joinRestaurants()},
				Where: report.Ge(report.Col("order_date"), report.AgoMonths(12)),
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
						{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
						{Name: "city", Expr: report.Col("city")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_revenue", Fn: report.AggSum, Arg: report.Col("total_amount")},
					},
				},
				Windows: []report.Window{
					{
						Name:        "rank",
						Fn:          report.WinRank,
						PartitionBy: []report.Expr{report.Col("city")},
						OrderBy:     []report.SortKey{report.Desc(report.Col("total_revenue"))},
					},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("city")),
					report.Asc(report.Col("rank")),
					report.Asc(report.Col("restaurant_id")),
				},
			},
		},
	}
}

// №7. Самое заказываемое блюдо каждого города.
func topDishPerCity() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          7,
			Slug:        "top-dish-per-city",
			Description: "Most ordered dish in each city",
			Columns: []entities.ReportColumn{
				{Name: "city", Type: entities.ColumnString},
				{Name: "dish", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   7,
			Slug: "top-dish-per-city",
			Pipeline: report.Pipeline{
				From:  report.From{Table: TableOrders},
				Joins: []report.Join{joinRestaurants()},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "city", Expr: report.Col("city")},
						{Name: "dish", Expr: report.Col("order_item")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggCount},
					},
				},
				Windows: []report.Window{
					{
						Name:        "rank",
						Fn:          report.WinRank,
						PartitionBy: []report.Expr{report.Col("city")},
						OrderBy:     []report.SortKey{report.Desc(report.Col("total_orders"))},
					},
				},
				PostWhere: report.Eq(report.Col("rank"), report.Lit(1)),
				Project: []report.Projection{
					{Name: "city", Expr: report.Col("city")},
					{Name: "dish", Expr: report.Col("dish")},
					{Name: "total_orders", Expr: report.Col("total_orders")},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("city")),
					report.Asc(report.Col("dish")),
				},
			},
		},
	}
}

// №8. Отток: заказывали в прошлом календарном году, но не в текущем.
func customerChurn() Entry {
	priorYear := report.Sub(report.Year(report.AsOf()), report.Lit(1))
	currentYear := report.Year(report.AsOf())

	return Entry{
		Info: entities.ReportInfo{
			ID:          8,
			Slug:        "customer-churn",
			Description: "Customers who ordered in the prior calendar year but not in the current one",
			Columns: []entities.ReportColumn{
				{Name: "customer_id", Type: entities.ColumnInt},
				{Name: "customer_name", Type: entities.ColumnString},
			},
		},
		Spec: report.Spec{
			ID:   8,
			Slug: "customer-churn",
			Pipeline: report.Pipeline{
				From:  fromOrders(),
				Joins: []report.Join{joinCustomers()},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "customer_id", Expr: report.Col("customer_id")},
						{Name: "customer_name", Expr: report.Col("customer_name")},
					},
					Aggs: []report.Aggregate{
						{
							Name: "prior_year_orders",
							Fn:   report.AggCountIf,
							Cond: report.Eq(report.Year(report.Col("order_date")), priorYear),
						},
						{
							Name: "current_year_orders",
							Fn:   report.AggCountIf,
							Cond: report.Eq(report.Year(report.Col("order_date")), currentYear),
						},
					},
				},
				Having: report.And(
					report.Gt(report.Col("prior_year_orders"), report.Lit(0)),
					report.Eq(report.Col("current_year_orders"), report.Lit(0)),
				),
				Project: []report.Projection{
					{Name: "customer_id", Expr: report.Col("customer_id")},
					{Name: "customer_name", Expr: report.Col("customer_name")},
				},
				OrderBy: []report.SortKey{report.Asc(report.Col("customer_id"))},
			},
		},
	}
}

// №9. Доля невыполненных заказов: текущий год против прошлого.
func cancellationRateComparison() Entry {
	currentYear := report.Year(report.AsOf())
	priorYear := report.Sub(report.Year(report.AsOf()), report.Lit(1))
	notDelivered := report.Or(
		report.IsNull(report.Col("delivery_id")),
		report.Ne(report.Col("delivery_status"), report.Lit(deliveredStatus)),
	)

	inner := report.Pipeline{
		From:  report.From{Table: TableOrders},
		Joins: []report.Join{leftJoinDeliveries(), joinRestaurants()},
		Group: &report.GroupBy{
			Keys: []report.Derived{
				{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
				{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
			},
			Aggs: []report.Aggregate{
				{
					Name: "current_total",
					Fn:   report.AggCountIf,
					Cond: report.Eq(report.Year(report.Col("order_date")), currentYear),
				},
				{
					Name: "current_not_delivered",
					Fn:   report.AggCountIf,
					Cond: report.And(
						report.Eq(report.Year(report.Col("order_date")), currentYear),
						notDelivered,
					),
				},
				{
					Name: "prior_total",
					Fn:   report.AggCountIf,
					Cond: report.Eq(report.Year(report.Col("order_date")), priorYear),
				},
				{
					Name: "prior_not_delivered",
					Fn:   report.AggCountIf,
					Cond: report.And(
						report.Eq(report.Year(report.Col("order_date")), priorYear),
						notDelivered,
					),
				},
			},
		},
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          9,
			Slug:        "cancellation-rate-comparison",
			Description: "Per-restaurant not-delivered rate, current year vs prior year",
			Columns: []entities.ReportColumn{
				{Name: "restaurant_id", Type: entities.ColumnInt},
				{Name: "restaurant_name", Type: entities.ColumnString},
				{Name: "current_year_rate", Type: entities.ColumnFloat},
				{Name: "prior_year_rate", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   9,
			Slug: "cancellation-rate-comparison",
			Pipeline: report.Pipeline{
				From: report.From{Sub: &inner},
				Project: []report.Projection{
					{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
					{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
					{
						Name: "current_year_rate",
						Expr: report.Mul(
							report.SafeDiv(report.Col("current_not_delivered"), report.Col("current_total")),
							report.Lit(100),
						),
					},
					{
						Name: "prior_year_rate",
						Expr: report.Mul(
							report.SafeDiv(report.Col("prior_not_delivered"), report.Col("prior_total")),
							report.Lit(100),
						),
					},
				},
				OrderBy: []report.SortKey{report.Asc(report.Col("restaurant_id"))},
			},
		},
	}
}

// №10. Среднее время доставки по курьерам.
func riderAverageDeliveryTime() Entry {
	base := deliveredOrdersWithRiders()
	base.Derive = []report.Derived{
		{
			Name: "delivery_minutes",
			Expr: report.ElapsedMinutes(report.Col("delivery_time"), report.Col("order_time")),
		},
	}
	base.Group = &report.GroupBy{
		Keys: []report.Derived{
			{Name: "rider_id", Expr: report.Col("rider_id")},
			{Name: "rider_name", Expr: report.Col("rider_name")},
		},
		Aggs: []report.Aggregate{
			{Name: "avg_delivery_minutes", Fn: report.AggAvg, Arg: report.Col("delivery_minutes")},
		},
	}
	base.OrderBy = []report.SortKey{
		report.Asc(report.Col("avg_delivery_minutes")),
		report.Asc(report.Col("rider_id")),
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          10,
			Slug:        "rider-average-delivery-time",
			Description: "Average delivery minutes per rider, midnight rollover compensated",
			Columns: []entities.ReportColumn{
				{Name: "rider_id", Type: entities.ColumnInt},
				{Name: "rider_name", Type: entities.ColumnString},
				{Name: "avg_delivery_minutes", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{ID: 10, Slug: "rider-average-delivery-time", Pipeline: base},
	}
}

// №11. Помесячный рост числа выполненных заказов ресторана: LAG + доля.
func restaurantGrowthRatio() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          11,
			Slug:        "restaurant-growth-ratio",
			Description: "Monthly delivered-order growth ratio per restaurant",
			Columns: []entities.ReportColumn{
				{Name: "restaurant_id", Type: entities.ColumnInt},
				{Name: "restaurant_name", Type: entities.ColumnString},
				{Name: "month", Type: entities.ColumnString},
				{Name: "current_month_orders", Type: entities.ColumnInt},
				{Name: "prior_month_orders", Type: entities.ColumnInt},
				{Name: "growth_ratio", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   11,
			Slug: "restaurant-growth-ratio",
			Pipeline: report.Pipeline{
				From: report.From{Table: TableOrders},
				Joins: []report.Join{
					{
						Kind:  report.JoinInner,
						Table: TableDeliveries,
						On:    []report.JoinOn{{Left: "order_id", Right: "order_id"}},
					},
					joinRestaurants(),
				},
				Where: report.Eq(report.Col("delivery_status"), report.Lit(deliveredStatus)),
				Derive: []report.Derived{
					{Name: "month", Expr: report.YearMonth(report.Col("order_date"))},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
						{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
						{Name: "month", Expr: report.Col("month")},
					},
					Aggs: []report.Aggregate{
						{Name: "current_month_orders", Fn: report.AggCount},
					},
				},
				Windows: []report.Window{
					{
						Name:        "prior_month_orders",
						Fn:          report.WinLag,
						Arg:         report.Col("current_month_orders"),
						PartitionBy: []report.Expr{report.Col("restaurant_id")},
						OrderBy:     []report.SortKey{report.Asc(report.Col("month"))},
					},
				},
				Project: []report.Projection{
					{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
					{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
					{Name: "month", Expr: report.Col("month")},
					{Name: "current_month_orders", Expr: report.Col("current_month_orders")},
					{Name: "prior_month_orders", Expr: report.Col("prior_month_orders")},
					{
						Name: "growth_ratio",
						Expr: report.Mul(
							report.SafeDiv(
								report.Sub(report.Col("current_month_orders"), report.Col("prior_month_orders")),
								report.Col("prior_month_orders"),
							),
							report.Lit(100),
						),
					},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("restaurant_id")),
					report.Asc(report.Col("month")),
				},
			},
		},
	}
}

// №12. Сегментация GOLD/SILVER относительно среднего чека по всем заказам.
func customerSegmentation() Entry {
	perCustomer := report.Pipeline{
		From: report.From{Table: TableOrders},
		Group: &report.GroupBy{
			Keys: []report.Derived{
				{Name: "customer_id", Expr: report.Col("customer_id")},
			},
			Aggs: []report.Aggregate{
				{Name: "total_spent", Fn: report.AggSum, Arg: report.Col("total_amount")},
				{Name: "total_orders", Fn: report.AggCount},
			},
		},
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          12,
			Slug:        "customer-segmentation",
			Description: "Orders and revenue per GOLD/SILVER customer segment",
			Columns: []entities.ReportColumn{
				{Name: "segment", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
				{Name: "total_revenue", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   12,
			Slug: "customer-segmentation",
			Bindings: []report.Binding{
				{
					Name:   "avg_order_value",
					Column: "avg_order_value",
					Pipeline: report.Pipeline{
						From: report.From{Table: TableOrders},
						Group: &report.GroupBy{
							Aggs: []report.Aggregate{
								{Name: "avg_order_value", Fn: report.AggAvg, Arg: report.Col("total_amount")},
							},
						},
					},
				},
			},
			Pipeline: report.Pipeline{
				From: report.From{Sub: &perCustomer},
				Derive: []report.Derived{
					{
						Name: "segment",
						Expr: report.Case(
							[]report.When{
								{
									Cond: report.Gt(report.Col("total_spent"), report.Param("avg_order_value")),
									Then: report.Lit(SegmentGold),
								},
							},
							report.Lit(SegmentSilver),
						),
					},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "segment", Expr: report.Col("segment")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggSum, Arg: report.Col("total_orders")},
						{Name: "total_revenue", Fn: report.AggSum, Arg: report.Col("total_spent")},
					},
				},
				OrderBy: []report.SortKey{report.Asc(report.Col("segment"))},
			},
		},
	}
}

// №13. Помесячный заработок курьера: 8% от суммы доставленных заказов.
func riderMonthlyEarnings() Entry {
	base := deliveredOrdersWithRiders()
	base.Derive = []report.Derived{
		{Name: "month", Expr: report.YearMonth(report.Col("order_date"))},
	}
	base.Group = &report.GroupBy{
		Keys: []report.Derived{
			{Name: "rider_id", Expr: report.Col("rider_id")},
			{Name: "rider_name", Expr: report.Col("rider_name")},
			{Name: "month", Expr: report.Col("month")},
		},
		Aggs: []report.Aggregate{
			{Name: "month_revenue", Fn: report.AggSum, Arg: report.Col("total_amount")},
		},
	}
	base.Project = []report.Projection{
		{Name: "rider_id", Expr: report.Col("rider_id")},
		{Name: "rider_name", Expr: report.Col("rider_name")},
		{Name: "month", Expr: report.Col("month")},
		{Name: "earnings", Expr: report.Mul(report.Col("month_revenue"), report.Lit(0.08))},
	}
	base.OrderBy = []report.SortKey{
		report.Asc(report.Col("rider_id")),
		report.Asc(report.Col("month")),
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          13,
			Slug:        "rider-monthly-earnings",
			Description: "Monthly rider earnings at 8% of delivered order value",
			Columns: []entities.ReportColumn{
				{Name: "rider_id", Type: entities.ColumnInt},
				{Name: "rider_name", Type: entities.ColumnString},
				{Name: "month", Type: entities.ColumnString},
				{Name: "earnings", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{ID: 13, Slug: "rider-monthly-earnings", Pipeline: base},
	}
}

// №14. Рейтинг курьеров по времени доставки: <15 мин — 5 звёзд,
// 15-20 — 4, дольше — 3.
func riderRatingAnalysis() Entry {
	base := deliveredOrdersWithRiders()
	base.Derive = []report.Derived{
		{
			Name: "delivery_minutes",
			Expr: report.ElapsedMinutes(report.Col("delivery_time"), report.Col("order_time")),
		},
		{
			Name: "stars",
			Expr: report.Case(
				[]report.When{
					{
						Cond: report.Lt(report.Col("delivery_minutes"), report.Lit(15.0)),
						Then: report.Lit("5 star"),
					},
					{
						Cond: report.Le(report.Col("delivery_minutes"), report.Lit(20.0)),
						Then: report.Lit("4 star"),
					},
				},
				report.Lit("3 star"),
			),
		},
	}
	base.Group = &report.GroupBy{
		Keys: []report.Derived{
			{Name: "rider_id", Expr: report.Col("rider_id")},
			{Name: "rider_name", Expr: report.Col("rider_name")},
			{Name: "stars", Expr: report.Col("stars")},
		},
		Aggs: []report.Aggregate{
			{Name: "total_ratings", Fn: report.AggCount},
		},
	}
	base.OrderBy = []report.SortKey{
		report.Asc(report.Col("rider_id")),
		report.Desc(report.Col("stars")),
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          14,
			Slug:        "rider-rating-analysis",
			Description: "Star ratings per rider derived from delivery minutes",
			Columns: []entities.ReportColumn{
				{Name: "rider_id", Type: entities.ColumnInt},
				{Name: "rider_name", Type: entities.ColumnString},
				{Name: "stars", Type: entities.ColumnString},
				{Name: "total_ratings", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{ID: 14, Slug: "rider-rating-analysis", Pipeline: base},
	}
}

// №15. Пиковый день недели каждого ресторана.
func orderFrequencyByDay() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          15,
			Slug:        "order-frequency-by-day",
			Description: "Peak order day of week per restaurant",
			Columns: []entities.ReportColumn{
				{Name: "restaurant_id", Type: entities.ColumnInt},
				{Name: "restaurant_name", Type: entities.ColumnString},
				{Name: "day_of_week", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   15,
			Slug: "order-frequency-by-day",
			Pipeline: report.Pipeline{
				From:  report.From{Table: TableOrders},
				Joins: []report.Join{joinRestaurants()},
				Derive: []report.Derived{
					{Name: "day_of_week", Expr: report.DayOfWeek(report.Col("order_date"))},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
						{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
						{Name: "day_of_week", Expr: report.Col("day_of_week")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggCount},
					},
				},
				Windows: []report.Window{
					{
						Name:        "rank",
						Fn:          report.WinRank,
						PartitionBy: []report.Expr{report.Col("restaurant_id")},
						OrderBy:     []report.SortKey{report.Desc(report.Col("total_orders"))},
					},
				},
				PostWhere: report.Eq(report.Col("rank"), report.Lit(1)),
				Project: []report.Projection{
					{Name: "restaurant_id", Expr: report.Col("restaurant_id")},
					{Name: "restaurant_name", Expr: report.Col("restaurant_name")},
					{Name: "day_of_week", Expr: report.Col("day_of_week")},
					{Name: "total_orders", Expr: report.Col("total_orders")},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("restaurant_id")),
					report.Asc(report.Col("day_of_week")),
				},
			},
		},
	}
}

// №16. Пожизненная выручка с клиента.
func customerLifetimeValue() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          16,
			Slug:        "customer-lifetime-value",
			Description: "Total revenue generated by each customer",
			Columns: []entities.ReportColumn{
				{Name: "customer_id", Type: entities.ColumnInt},
				{Name: "customer_name", Type: entities.ColumnString},
				{Name: "lifetime_value", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   16,
			Slug: "customer-lifetime-value",
			Pipeline: report.Pipeline{
				From:  fromOrders(),
				Joins: []report.Join{joinCustomers()},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "customer_id", Expr: report.Col("customer_id")},
						{Name: "customer_name", Expr: report.Col("customer_name")},
					},
					Aggs: []report.Aggregate{
						{Name: "lifetime_value", Fn: report.AggSum, Arg: report.Col("total_amount")},
					},
				},
				OrderBy: []report.SortKey{
					report.Desc(report.Col("lifetime_value")),
					report.Asc(report.Col("customer_id")),
				},
			},
		},
	}
}

// №17. Помесячная динамика продаж с прошлым месяцем через LAG.
func monthlySalesTrend() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          17,
			Slug:        "monthly-sales-trend",
			Description: "Month-over-month sales totals",
			Columns: []entities.ReportColumn{
				{Name: "month", Type: entities.ColumnString},
				{Name: "total_sales", Type: entities.ColumnFloat},
				{Name: "prior_month_sales", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   17,
			Slug: "monthly-sales-trend",
			Pipeline: report.Pipeline{
				From: report.From{Table: TableOrders},
				Derive: []report.Derived{
					{Name: "month", Expr: report.YearMonth(report.Col("order_date"))},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "month", Expr: report.Col("month")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_sales", Fn: report.AggSum, Arg: report.Col("total_amount")},
					},
				},
				Windows: []report.Window{
					{
						Name:    "prior_month_sales",
						Fn:      report.WinLag,
						Arg:     report.Col("total_sales"),
						OrderBy: []report.SortKey{report.Asc(report.Col("month"))},
					},
				},
				OrderBy: []report.SortKey{report.Asc(report.Col("month"))},
			},
		},
	}
}

// №18. Эффективность курьеров: разброс средних времён доставки.
func riderEfficiency() Entry {
	perRider := deliveredOrdersWithRiders()
	perRider.Derive = []report.Derived{
		{
			Name: "delivery_minutes",
			Expr: report.ElapsedMinutes(report.Col("delivery_time"), report.Col("order_time")),
		},
	}
	perRider.Group = &report.GroupBy{
		Keys: []report.Derived{
			{Name: "rider_id", Expr: report.Col("rider_id")},
			{Name: "rider_name", Expr: report.Col("rider_name")},
		},
		Aggs: []report.Aggregate{
			{Name: "avg_delivery_minutes", Fn: report.AggAvg, Arg: report.Col("delivery_minutes")},
		},
	}

	return Entry{
		Info: entities.ReportInfo{
			ID:          18,
			Slug:        "rider-efficiency",
			Description: "Best and worst average delivery minutes across riders",
			Columns: []entities.ReportColumn{
				{Name: "min_avg_delivery_minutes", Type: entities.ColumnFloat},
				{Name: "max_avg_delivery_minutes", Type: entities.ColumnFloat},
			},
		},
		Spec: report.Spec{
			ID:   18,
			Slug: "rider-efficiency",
			Pipeline: report.Pipeline{
				From: report.From{Sub: &perRider},
				Group: &report.GroupBy{
					Aggs: []report.Aggregate{
						{Name: "min_avg_delivery_minutes", Fn: report.AggMin, Arg: report.Col("avg_delivery_minutes")},
						{Name: "max_avg_delivery_minutes", Fn: report.AggMax, Arg: report.Col("avg_delivery_minutes")},
					},
				},
			},
		},
	}
}

// №19. Сезонность блюд.
func seasonalItemPopularity() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          19,
			Slug:        "seasonal-item-popularity",
			Description: "Order counts per dish and season",
			Columns: []entities.ReportColumn{
				{Name: "dish", Type: entities.ColumnString},
				{Name: "season", Type: entities.ColumnString},
				{Name: "total_orders", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   19,
			Slug: "seasonal-item-popularity",
			Pipeline: report.Pipeline{
				From: report.From{Table: TableOrders},
				Derive: []report.Derived{
					{Name: "season", Expr: report.Season(report.Col("order_date"))},
				},
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "dish", Expr: report.Col("order_item")},
						{Name: "season", Expr: report.Col("season")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_orders", Fn: report.AggCount},
					},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("dish")),
					report.Desc(report.Col("total_orders")),
					report.Asc(report.Col("season")),
				},
			},
		},
	}
}

// №20. Ранг городов по выручке текущего года.
func cityRevenueRank() Entry {
	return Entry{
		Info: entities.ReportInfo{
			ID:          20,
			Slug:        "city-revenue-rank",
			Description: "Cities ranked by current-year revenue",
			Columns: []entities.ReportColumn{
				{Name: "city", Type: entities.ColumnString},
				{Name: "total_revenue", Type: entities.ColumnFloat},
				{Name: "city_rank", Type: entities.ColumnInt},
			},
		},
		Spec: report.Spec{
			ID:   20,
			Slug: "city-revenue-rank",
			Pipeline: report.Pipeline{
				From:  report.From{Table: TableOrders},
				Joins: []report.Join{joinRestaurants()},
				Where: report.Eq(report.Year(report.Col("order_date")), report.Year(report.AsOf())),
				Group: &report.GroupBy{
					Keys: []report.Derived{
						{Name: "city", Expr: report.Col("city")},
					},
					Aggs: []report.Aggregate{
						{Name: "total_revenue", Fn: report.AggSum, Arg: report.Col("total_amount")},
					},
				},
				Windows: []report.Window{
					{
						Name:    "city_rank",
						Fn:      report.WinRank,
						OrderBy: []report.SortKey{report.Desc(report.Col("total_revenue"))},
					},
				},
				OrderBy: []report.SortKey{
					report.Asc(report.Col("city_rank")),
					report.Asc(report.Col("city")),
				},
			},
		},
	}
}
