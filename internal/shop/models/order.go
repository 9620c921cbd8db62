package models

import "time"

// Order is an immutable record of a completed purchase line. Price is a
// snapshot taken at checkout time; later catalog price changes must not
// alter historical orders.
type Order struct {
	ID           string
	Account      string
	ProductID    string
	Quantity     int
	Price        float64
	CheckoutTime time.Time
}

// OrderView joins an order with current product display data and includes
// the computed line total (quantity x snapshotted price).
type OrderView struct {
	OrderID      string
	ProductID    string
	Name         string
	Image        string
	Tier         string
	Quantity     int
	Price        float64
	Total        float64
	CheckoutTime time.Time
}
