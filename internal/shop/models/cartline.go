package models

import "time"

// CartLine is one (account, product) pairing with a desired quantity,
// pending checkout. At most one line exists per pair; repeated adds merge
// by summing quantities.
type CartLine struct {
	ID        string
	Account   string
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// CartLineView joins a cart line with current product data so a client can
// render "N in cart, M in stock" without a second round trip.
type CartLineView struct {
	CartLineID string
	ProductID  string
	Name       string
	Image      string
	Tier       string
	Price      float64
	Quantity   int
	Subtotal   float64
	Stock      int
}
