package entities

// Snapshot — неизменяемый срез всех пяти таблиц на момент загрузки.
// Все отчёты считаются относительно одного снапшота.
type Snapshot struct {
	Customers   []Customer
	Restaurants []Restaurant
	Riders      []Rider
	Orders      []Order
	Deliveries  []Delivery
}
