package event

const StatusChangedTopic = "order_status_events"

// StatusChangedEvent is emitted at most once per reconciliation or user
// action, and only when the fulfillment status actually moved.
type StatusChangedEvent struct {
	OrderID   int64  `json:"orderID"`
	OrderSN   string `json:"orderSN"`
	BuyerID   int64  `json:"buyerID"`
	OldStatus uint8  `json:"oldStatus"`
	NewStatus uint8  `json:"newStatus"`
}
