package events

type Topic string

const (
	TopicCartItemAdded        Topic = "cart.item_added"
	TopicCheckoutOpened       Topic = "checkout.opened"
	TopicOrderPaid            Topic = "order.paid"
	TopicCommercialOrderSaved Topic = "commercial_order.saved"
	TopicReceiptSent          Topic = "receipt.sent"
)

type Event interface {
	Topic() Topic
}

// CartItemAdded asks the UI to open the cart drawer when OpenCart is set.
type CartItemAdded struct {
	SessionID string `json:"session_id"`
	LineID    string `json:"line_id"`
	Quantity  int    `json:"quantity"`
	OpenCart  bool   `json:"open_cart"`
}

func (CartItemAdded) Topic() Topic { return TopicCartItemAdded }

type CheckoutOpened struct {
	SessionID string `json:"session_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
	Gateway   string `json:"gateway"`
}

func (CheckoutOpened) Topic() Topic { return TopicCheckoutOpened }

type OrderPaid struct {
	SessionID string `json:"session_id"`
	OrderID   string `json:"order_id"`
	Amount    int64  `json:"amount"`
}

func (OrderPaid) Topic() Topic { return TopicOrderPaid }

type CommercialOrderSaved struct {
	OrderID int64  `json:"order_id"`
	Agent   string `json:"agent"`
	Total   string `json:"total"`
}

func (CommercialOrderSaved) Topic() Topic { return TopicCommercialOrderSaved }

type ReceiptSent struct {
	OrderID string `json:"order_id"`
	Resend  bool   `json:"resend"`
}

func (ReceiptSent) Topic() Topic { return TopicReceiptSent }
