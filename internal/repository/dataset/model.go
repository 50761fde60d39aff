package dataset

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerDB struct {
	ID      int64
	Name    string
	RegDate time.Time
}

type RestaurantDB struct {
	ID           int64
	Name         string
	City         string
	OpeningHours string
}

type RiderDB struct {
	ID     int64
	Name   string
	SignUp time.Time
}

type OrderDB struct {
	ID           int64
	CustomerID   int64
	RestaurantID int64
	OrderItem    string
	Status       string
	TotalAmount  float64
	OrderDate    time.Time
	OrderTime    pgtype.Time
}

type DeliveryDB struct {
	ID           int64
	OrderID      int64
	RiderID      int64
	Status       string
	DeliveryTime pgtype.Time
}
