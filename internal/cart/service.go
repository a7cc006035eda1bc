package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bharatcart/shop-backend/internal/catalog"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
)

// ProductSource provides the catalog lookups the cart needs for joins.
type ProductSource interface {
	GetByID(id int) (catalog.Product, error)
}

// Service orchestrates cart operations against the line store and the catalog.
type Service struct {
	repo     Repository
	products ProductSource
}

func NewService(repo Repository, products ProductSource) *Service {
	return &Service{repo: repo, products: products}
}

// AddItem puts quantity units of a product into the cart. When a line for the
// product already exists its quantity is incremented instead of creating a
// duplicate. Returns the resulting line joined with its product.
func (s *Service) AddItem(productID, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return Item{}, err
	}

	line, err := s.repo.GetByProduct(productID)
	switch {
	case err == nil:
		line.Quantity += quantity
		if err := s.repo.UpdateQuantity(line.ID, line.Quantity); err != nil {
			return Item{}, fmt.Errorf("update quantity: %w", err)
		}
	case errors.Is(err, ErrNotFound):
		line, err = s.repo.Insert(Line{ProductID: productID, Quantity: quantity})
		if err != nil {
			return Item{}, fmt.Errorf("insert line: %w", err)
		}
	default:
		return Item{}, err
	}

	return joinItem(line, p), nil
}

// RemoveItem deletes a cart line by id. It succeeds even when the id does not
// exist, so repeated removals are harmless.
func (s *Service) RemoveItem(id int) error {
	return s.repo.Delete(id)
}

// View joins every cart line with its product and computes the line and cart
// totals. A line whose product has vanished from the catalog is an error; the
// cart never papers over dangling references.
func (s *Service) View() (View, error) {
	lines, err := s.repo.List()
	if err != nil {
		return View{}, err
	}

	items := make([]Item, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		p, err := s.products.GetByID(l.ProductID)
		if err != nil {
			return View{}, fmt.Errorf("product %d referenced by cart line %d: %w", l.ProductID, l.ID, err)
		}
		items = append(items, joinItem(l, p))
		total = total.Add(lineTotal(p.Price, l.Quantity))
	}

	return View{Items: items, Total: total.Round(2).InexactFloat64()}, nil
}

// RemoveLines bulk-deletes the given line ids; used by checkout to clear the
// lines it snapshotted.
func (s *Service) RemoveLines(ids []int) error {
	return s.repo.DeleteByIDs(ids)
}

func joinItem(l Line, p catalog.Product) Item {
	return Item{
		ID:       l.ID,
		Product:  p,
		Quantity: l.Quantity,
		Total:    lineTotal(p.Price, l.Quantity).InexactFloat64(),
	}
}

// lineTotal multiplies in decimals so fractional prices do not accumulate
// binary floating point error across the cart.
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
