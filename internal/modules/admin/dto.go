package admin

// SetLeadStatusRequest sets an advisory workflow state. Any of the known
// statuses can be set directly; transitions are not enforced.
type SetLeadStatusRequest struct {
	Status string `form:"status" json:"status"`
}

// CreateQuoteRequest records a quote taken over the phone or in person.
// Field rules are the same as the public quote form; no notification is
// sent for staff-entered quotes.
type CreateQuoteRequest struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Details string `form:"details" json:"details"`
}

type CreateOrderRequest struct {
	Date   string  `form:"date" json:"date"` // YYYY-MM-DD
	Amount float64 `form:"amount" json:"amount"`
	Status string  `form:"status" json:"status"`
}

type UpdateOrderRequest struct {
	Date   string  `form:"date" json:"date"`
	Amount float64 `form:"amount" json:"amount"`
	Status string  `form:"status" json:"status"`
}

type CreateProjectRequest struct {
	WindowStyle string `form:"window_style" json:"window_style"`
	Status      string `form:"status" json:"status"`
}

type SetProjectStatusRequest struct {
	Status string `form:"status" json:"status"`
}
