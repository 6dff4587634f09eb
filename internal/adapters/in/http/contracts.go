package http

import "time"

// Request bodies.

// ApproveOrderRequest is the body of POST /api/v1/orders/:id/approve.
type ApproveOrderRequest struct {
	Note string `json:"note"`
}

// RejectOrderRequest is the body of POST /api/v1/orders/:id/reject.
type RejectOrderRequest struct {
	Reason string `json:"reason"`
}

// AdvanceProductionRequest is the body of POST /api/v1/orders/:id/advance.
// From names the status the caller last observed; the transition is refused
// with a conflict when the order has moved on since.
type AdvanceProductionRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Note string `json:"note"`
}

// SetChecklistStageRequest is the body of POST /api/v1/orders/:id/checklist.
type SetChecklistStageRequest struct {
	Stage string `json:"stage"`
	Done  bool   `json:"done"`
}

// Response bodies.

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Checklist mirrors the four production stage flags.
type Checklist struct {
	Cut          bool `json:"cut"`
	Sewing       bool `json:"sewing"`
	Finishing    bool `json:"finishing"`
	QualityCheck bool `json:"quality_check"`
}

// AdvanceProductionResponse reports the outcome of a production transition.
// Checklist is present when the order entered production, ElapsedMinutes when
// it finished.
type AdvanceProductionResponse struct {
	Status         string     `json:"status"`
	ElapsedMinutes *int       `json:"elapsed_minutes,omitempty"`
	Checklist      *Checklist `json:"checklist,omitempty"`
}

// SetChecklistStageResponse reports checklist progress after a stage toggle.
type SetChecklistStageResponse struct {
	Checklist Checklist `json:"checklist"`
	Complete  bool      `json:"complete"`
}

// Commission is the payout record for one delivered order.
type Commission struct {
	OrderID              string     `json:"order_id"`
	SalesRepID           string     `json:"sales_rep_id"`
	OrderValueCents      int64      `json:"order_value_cents"`
	Rate                 float64    `json:"rate"`
	CommissionValueCents int64      `json:"commission_value_cents"`
	PaymentStatus        string     `json:"payment_status"`
	PaidAt               *time.Time `json:"paid_at,omitempty"`
}

// HistoryEntry is one recorded status transition of an order.
type HistoryEntry struct {
	Status    string    `json:"status"`
	ActorID   string    `json:"actor_id"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderInProduction is one order on the production floor with its progress.
type OrderInProduction struct {
	ID                      string     `json:"id"`
	FinalValueCents         int64      `json:"final_value_cents"`
	ProductionStartedAt     *time.Time `json:"production_started_at,omitempty"`
	ProductionResponsibleID *string    `json:"production_responsible_id,omitempty"`
	Checklist               Checklist  `json:"checklist"`
}

// UnpaidCommission is one delivered order whose sales commission is still owed.
type UnpaidCommission struct {
	OrderID            string    `json:"order_id"`
	SalesRepID         string    `json:"sales_rep_id"`
	OrderValueCents    int64     `json:"order_value_cents"`
	CommissionDueCents int64     `json:"commission_due_cents"`
	DeliveredAt        time.Time `json:"delivered_at"`
}
