package checkout

type Status string

const (
	StatusIdle               Status = "IDLE"
	StatusInProgress         Status = "IN_PROGRESS"
	StatusAllCommitted       Status = "ALL_COMMITTED"
	StatusPartiallyCommitted Status = "PARTIALLY_COMMITTED"
	StatusNoneCommitted      Status = "NONE_COMMITTED"
	StatusAbortedFatal       Status = "ABORTED_FATAL"
)

var transitions = map[Status][]Status{
	StatusIdle:       {StatusInProgress},
	StatusInProgress: {StatusAllCommitted, StatusPartiallyCommitted, StatusNoneCommitted, StatusAbortedFatal},
}

func CanTransitionTo(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusAllCommitted, StatusPartiallyCommitted, StatusNoneCommitted, StatusAbortedFatal:
		return true
	default:
		return false
	}
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

type ResultKind string

const (
	ResultCommitted    ResultKind = "committed"
	ResultRejected     ResultKind = "rejected"
	ResultNotAttempted ResultKind = "not_attempted"
)

// Reason classifies why the inventory service refused a line.
type Reason string

const (
	ReasonInsufficientStock  Reason = "insufficient_stock"
	ReasonUnauthorized       Reason = "unauthorized"
	ReasonItemNotFound       Reason = "item_not_found"
	ReasonServiceUnavailable Reason = "service_unavailable"
	ReasonNetwork            Reason = "network_error"
	ReasonRejected           Reason = "request_rejected"
)

// IsFatal reports whether the remaining lines should be abandoned. Only a
// stock shortage is local to one line.
func (r Reason) IsFatal() bool {
	return r != ReasonInsufficientStock
}

type LineResult struct {
	kind              ResultKind
	quantityPurchased int
	reason            Reason
	detail            string
}

func Committed(quantity int) LineResult {
	return LineResult{kind: ResultCommitted, quantityPurchased: quantity}
}

func Rejected(reason Reason, detail string) LineResult {
	return LineResult{kind: ResultRejected, reason: reason, detail: detail}
}

func NotAttempted() LineResult {
	return LineResult{kind: ResultNotAttempted}
}

func (r LineResult) Kind() ResultKind        { return r.kind }
func (r LineResult) QuantityPurchased() int  { return r.quantityPurchased }
func (r LineResult) Reason() Reason          { return r.reason }
func (r LineResult) Detail() string          { return r.detail }
func (r LineResult) IsCommitted() bool       { return r.kind == ResultCommitted }
func (r LineResult) Equal(o LineResult) bool { return r == o }
