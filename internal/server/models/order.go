package models

import "time"

// Order is a single order row. UserID references the owning account and is
// always stamped server-side from the verified identity.
type Order struct {
	ID          string
	UserID      string
	ProductName string
	Quantity    int32
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderPatch carries the updatable order fields. Nil pointers mean
// "leave unchanged".
type OrderPatch struct {
	ProductName *string
	Quantity    *int32
	Price       *float64
}
