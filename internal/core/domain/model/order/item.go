package order

import (
	"errors"
	"fmt"

	"printstream/internal/pkg/errs"
)

// Item is a single product line within an Order. It is created together with
// its parent order and is immutable once created.
//
// Item follows these invariants:
//   - Product identifier, color, and size must be non-empty
//   - Quantity must be positive
type Item struct {
	// productID identifies the catalog product for this line
	productID string

	// color is the garment color chosen by the customer
	color string

	// size is the garment size chosen by the customer
	size string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a new order line with validation.
func NewItem(productID, color, size string, quantity int) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setColor(color),
		item.setSize(size),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Color returns the chosen garment color.
func (i Item) Color() string {
	return i.color
}

// Size returns the chosen garment size.
func (i Item) Size() string {
	return i.size
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setColor(color string) error {
	if color == "" {
		return errs.NewValueIsRequiredError("color")
	}
	i.color = color
	return nil
}

func (i *Item) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	i.size = size
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
