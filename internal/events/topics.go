package events

// Topic constants for domain events.
const (
	TopicOrderAccepted = "order.accepted"
)

// OrderAccepted is the payload of TopicOrderAccepted.
type OrderAccepted struct {
	OrderID   string `json:"orderId"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Subtotal  string `json:"subtotal"`
	Currency  string `json:"currency"`
	ItemCount int    `json:"itemCount"`
}
