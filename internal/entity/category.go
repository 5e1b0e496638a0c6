package entity

import "time"

// Category - a named group of subscriptions with display attributes
type Category struct {
	ID        int64
	Name      string
	Color     string
	Icon      string
	CreatedAt time.Time
}
