package models

// Product is a catalog item. Stock is the only numeric field mutated after
// creation: the checkout engine decrements it and the stock-reset job sets
// it back to a default. It never goes below zero in a committed transaction.
type Product struct {
	ID          string
	Name        string
	Image       string
	Tier        string
	Category    string
	Description string
	Price       float64
	Stock       int
}
