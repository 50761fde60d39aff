package entities

import "time"

type Delivery struct {
	ID      int64
	OrderID int64
	RiderID int64
	Status  DeliveryStatusType
	// DeliveryTime — время суток вручения заказа. Может перейти за полночь
	// относительно Order.OrderTime.
	DeliveryTime time.Duration
}

type DeliveryStatusType string

const (
	DeliveryDelivered    DeliveryStatusType = "Delivered"
	DeliveryNotDelivered DeliveryStatusType = "Not Delivered"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}
