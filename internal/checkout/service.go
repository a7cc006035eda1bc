package checkout

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bharatcart/shop-backend/internal/cart"
)

// CartSource exposes the cart operations checkout needs: reading the joined
// view and deleting the lines it snapshotted.
type CartSource interface {
	View() (cart.View, error)
	RemoveLines(ids []int) error
}

// Service turns the current cart into a receipt.
type Service struct {
	carts CartSource
}

func NewService(carts CartSource) *Service {
	return &Service{carts: carts}
}

// Checkout snapshots the cart into a Receipt, clears the snapshotted lines
// and returns the receipt. The clear is scoped to the lines captured in the
// snapshot, so an add that lands mid-checkout stays in the cart. There is no
// rollback: a failed clear leaves the cart intact and no receipt is issued.
func (s *Service) Checkout(customer Customer) (Receipt, error) {
	view, err := s.carts.View()
	if err != nil {
		return Receipt{}, fmt.Errorf("read cart: %w", err)
	}

	items := make([]ReceiptItem, 0, len(view.Items))
	ids := make([]int, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, ReceiptItem{
			Name:     it.Product.Name,
			Price:    it.Product.Price,
			Quantity: it.Quantity,
			Total:    it.Total,
		})
		ids = append(ids, it.ID)
	}

	if err := s.carts.RemoveLines(ids); err != nil {
		return Receipt{}, fmt.Errorf("clear cart: %w", err)
	}

	return Receipt{
		OrderID:   newOrderID(),
		Customer:  customer,
		Items:     items,
		Total:     view.Total,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    StatusCompleted,
	}, nil
}

// newOrderID returns a short uppercase token. Collisions are tolerable:
// receipts are never persisted, so the id only has to look unique on screen.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:9])
}
