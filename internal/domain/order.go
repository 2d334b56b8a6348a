package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in-progress"
	OrderCompleted  OrderStatus = "completed"
)

// Order is a billable, dated transaction. Amount is kept to two decimal
// places at the service edges.
type Order struct {
	ID     int64       `json:"id"`
	Date   time.Time   `json:"date"`
	Amount float64     `json:"amount"`
	Status OrderStatus `json:"status"`
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted:
		return true
	}
	return false
}
