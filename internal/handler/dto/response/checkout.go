package response

import (
	"time"

	"storefront-engine/internal/domain/checkout"

	"github.com/google/uuid"
)

type LineOutcomeResponse struct {
	ItemID            int64  `json:"itemId"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	Result            string `json:"result"`
	QuantityPurchased int    `json:"quantityPurchased,omitempty"`
	Reason            string `json:"reason,omitempty"`
	Detail            string `json:"detail,omitempty"`
}

type CheckoutResponse struct {
	AttemptID  uuid.UUID             `json:"attemptId"`
	Status     string                `json:"status"`
	Message    string                `json:"message"`
	Committed  int                   `json:"committed"`
	Lines      []LineOutcomeResponse `json:"lines"`
	Cart       CartResponse          `json:"cart"`
	StartedAt  time.Time             `json:"startedAt"`
	FinishedAt time.Time             `json:"finishedAt"`
}

func FromAttempt(a *checkout.Attempt, cartResp CartResponse) CheckoutResponse {
	lines := a.Lines()
	results := a.Results()
	outcomes := make([]LineOutcomeResponse, len(lines))
	for i, l := range lines {
		o := LineOutcomeResponse{
			ItemID:   int64(l.ItemID()),
			Name:     l.Snapshot().Name(),
			Quantity: l.Quantity(),
		}
		if i < len(results) {
			r := results[i]
			o.Result = string(r.Kind())
			o.QuantityPurchased = r.QuantityPurchased()
			o.Reason = string(r.Reason())
			o.Detail = r.Detail()
		}
		outcomes[i] = o
	}
	return CheckoutResponse{
		AttemptID:  a.ID(),
		Status:     a.Status().String(),
		Message:    a.Message(),
		Committed:  a.CommittedCount(),
		Lines:      outcomes,
		Cart:       cartResp,
		StartedAt:  a.StartedAt(),
		FinishedAt: a.FinishedAt(),
	}
}
