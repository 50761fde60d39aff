package entities

import "time"

type Order struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	OrderItem    string
	Status       OrderStatusType
	TotalAmount  float64
	OrderDate    time.Time
	// OrderTime — время суток размещения заказа, смещение от полуночи.
	OrderTime time.Duration
}

type OrderStatusType string

const (
	OrderCompleted    OrderStatusType = "Completed"
	OrderNotFulfilled OrderStatusType = "Not Fulfilled"
)

func (s OrderStatusType) String() string {
	return string(s)
}
