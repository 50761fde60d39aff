package entities

import "time"

type Rider struct {
	ID     int64
	Name   string
	SignUp time.Time
}
