package dataset

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"reporting/internal/entities"
)

func ToCustomerDomain(c *CustomerDB) entities.Customer {
	return entities.Customer{
		ID:      c.ID,
		Name:    c.Name,
		RegDate: c.RegDate,
	}
}

func ToRestaurantDomain(r *RestaurantDB) entities.Restaurant {
	return entities.Restaurant{
		ID:           r.ID,
		Name:         r.Name,
		City:         r.City,
		OpeningHours: r.OpeningHours,
	}
}

func ToRiderDomain(r *RiderDB) entities.Rider {
	return entities.Rider{
		ID:     r.ID,
		Name:   r.Name,
		SignUp: r.SignUp,
	}
}

func ToOrderDomain(o *OrderDB) entities.Order {
	return entities.Order{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		OrderItem:    o.OrderItem,
		Status:       entities.OrderStatusType(o.Status),
		TotalAmount:  o.TotalAmount,
		OrderDate:    o.OrderDate,
		OrderTime:    timeOfDay(o.OrderTime),
	}
}

func ToDeliveryDomain(d *DeliveryDB) entities.Delivery {
	return entities.Delivery{
		ID:           d.ID,
		OrderID:      d.OrderID,
		RiderID:      d.RiderID,
		Status:       entities.DeliveryStatusType(d.Status),
		DeliveryTime: timeOfDay(d.DeliveryTime),
	}
}

// timeOfDay переводит колонку TIME в смещение от полуночи.
func timeOfDay(t pgtype.Time) time.Duration {
	if !t.Valid {
		return 0
	}
	return time.Duration(t.Microseconds) * time.Microsecond
}
