package entities

import "time"

type Customer struct {
	ID      int64
	Name    string
	RegDate time.Time
}
