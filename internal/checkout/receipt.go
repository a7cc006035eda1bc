package checkout

// Customer identifies the buyer on a receipt. Only presence is validated.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReceiptItem is a cart line frozen at checkout time.
type ReceiptItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// Receipt is the immutable snapshot produced by checkout. It is never stored
// server-side; the response is the only copy the customer gets.
type Receipt struct {
	OrderID   string        `json:"orderId"`
	Customer  Customer      `json:"customer"`
	Items     []ReceiptItem `json:"items"`
	Total     float64       `json:"total"`
	Timestamp string        `json:"timestamp"`
	Status    string        `json:"status"`
}

// StatusCompleted is the only status a receipt ever carries; there is no
// order lifecycle behind it.
const StatusCompleted = "completed"
