package commands

import (
	"errors"
	"math"
	"strings"

	"printstream/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrProductIDIsRequired     = errors.New("productId is required")
	ErrDesignDataURIIsRequired = errors.New("designDataUri is required")
	ErrDesignDataURIIsInvalid  = errors.New("designDataUri must be a data URI")
	ErrColorIsRequired         = errors.New("color is required")
	ErrSizeIsRequired          = errors.New("size is required")
	ErrPriceIsNotFinite        = errors.New("price must be a finite number")
)

// PlaceOrderCommand represents a customer's request to place a print-on-demand
// order. Encapsulates the submitted design, garment options, and price.
//
// All validation happens in the constructor, before any persistence access:
// a malformed command never reaches the store.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand("tshirt-standard", "data:image/png;base64,AAAA", "Red", "XXL", 18.49)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, policy, defaults)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	productID     string
	designDataURI string
	color         string
	size          string
	price         float64

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that all strings are non-empty, the design payload is a data URI,
// and the price is a finite number. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	productID string,
	designDataURI string,
	color string,
	size string,
	price float64,
) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setProductID(productID),
		orderCommand.setDesignDataURI(designDataURI),
		orderCommand.setColor(color),
		orderCommand.setSize(size),
		orderCommand.setPrice(price),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ProductID returns the catalog product identifier.
func (c PlaceOrderCommand) ProductID() string {
	return c.productID
}

// DesignDataURI returns the submitted design as a base64 data URI.
func (c PlaceOrderCommand) DesignDataURI() string {
	return c.designDataURI
}

// Color returns the chosen garment color.
func (c PlaceOrderCommand) Color() string {
	return c.color
}

// Size returns the chosen garment size.
func (c PlaceOrderCommand) Size() string {
	return c.size
}

// Price returns the order price.
func (c PlaceOrderCommand) Price() float64 {
	return c.price
}

func (c *PlaceOrderCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *PlaceOrderCommand) setDesignDataURI(designDataURI string) error {
	if designDataURI == "" {
		return ErrDesignDataURIIsRequired
	}
	if !strings.HasPrefix(designDataURI, "data:") {
		return ErrDesignDataURIIsInvalid
	}

	c.designDataURI = designDataURI
	return nil
}

func (c *PlaceOrderCommand) setColor(color string) error {
	if color == "" {
		return ErrColorIsRequired
	}

	c.color = color
	return nil
}

func (c *PlaceOrderCommand) setSize(size string) error {
	if size == "" {
		return ErrSizeIsRequired
	}

	c.size = size
	return nil
}

func (c *PlaceOrderCommand) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrPriceIsNotFinite
	}

	c.price = price
	return nil
}
