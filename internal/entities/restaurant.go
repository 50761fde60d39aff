package entities

type Restaurant struct {
	ID           int64
	Name         string
	City         string
	OpeningHours string
}
