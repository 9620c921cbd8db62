// Package services contains the shop's business logic: account registration
// and login, catalog reads, stock-aware cart mutation, the transactional
// checkout engine, and order history.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection is returned by Checkout before any store access when
	// the caller selected nothing.
	ErrEmptySelection = errors.New("empty selection")

	// ErrCheckoutFailed covers store/transaction failures during checkout.
	// Nothing was committed; the caller may retry the same batch as-is.
	ErrCheckoutFailed = errors.New("checkout failed")
)

// InvalidQuantityError rejects a non-positive quantity. The whole batch the
// quantity belonged to is rejected.
type InvalidQuantityError struct {
	ProductID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity for product %s", e.ProductID)
}

// ProductNotFoundError rejects an operation referencing a product that does
// not exist in the catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s does not exist", e.ProductID)
}

// StockInsufficientError rejects a request for more units than the product
// currently has in stock.
type StockInsufficientError struct {
	ProductID string
	Requested int
	Available int
}

func (e *StockInsufficientError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// isCallerError reports whether err is a caller-input or state-conflict
// error, as opposed to an infrastructure failure.
func isCallerError(err error) bool {
	var (
		iq *InvalidQuantityError
		nf *ProductNotFoundError
		si *StockInsufficientError
	)
	return errors.Is(err, ErrEmptySelection) ||
		errors.As(err, &iq) || errors.As(err, &nf) || errors.As(err, &si)
}
