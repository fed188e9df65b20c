package order

// Status is the order lifecycle state. Orders only ever move forward along
// the chain, one step at a time.
type Status string

const (
	StatusUnderReview Status = "UNDER_REVIEW"
	StatusPaid        Status = "PAID"
	StatusProcessing  Status = "PROCESSING"
	StatusShipped     Status = "SHIPPED"
	StatusDelivered   Status = "DELIVERED"
	StatusCompleted   Status = "COMPLETED"
)

// Actor is the party triggering a transition.
type Actor string

const (
	ActorBuyer   Actor = "buyer"
	ActorSeller  Actor = "seller"
	ActorGateway Actor = "gateway"
	ActorSystem  Actor = "system"
)

var statusRank = map[Status]int{
	StatusUnderReview: 0,
	StatusPaid:        1,
	StatusProcessing:  2,
	StatusShipped:     3,
	StatusDelivered:   4,
	StatusCompleted:   5,
}

// validNext names the single legal successor of each status.
var validNext = map[Status]Status{
	StatusUnderReview: StatusPaid,
	StatusPaid:        StatusProcessing,
	StatusProcessing:  StatusShipped,
	StatusShipped:     StatusDelivered,
	StatusDelivered:   StatusCompleted,
}

// transitionActors names who may move an order INTO each status. PAID is
// gateway-only; the seller owns the fulfilment steps; delivery confirmation
// and completion belong to the buyer, with the system completing on the
// buyer's behalf when the satisfaction window lapses.
var transitionActors = map[Status][]Actor{
	StatusPaid:       {ActorGateway},
	StatusProcessing: {ActorSeller},
	StatusShipped:    {ActorSeller},
	StatusDelivered:  {ActorBuyer},
	StatusCompleted:  {ActorBuyer, ActorSystem},
}

// ParseStatus maps a wire string onto a known status.
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	_, ok := statusRank[st]
	return st, ok
}

// CanTransition reports whether to is the adjacent forward step from from.
func CanTransition(from, to Status) bool {
	next, ok := validNext[from]
	return ok && next == to
}

// ValidateTransition rejects unknown statuses, backward or skipping moves,
// and moves triggered by the wrong party.
func ValidateTransition(actor Actor, from, to Status) error {
	fromRank, ok := statusRank[from]
	if !ok {
		return ErrInvalidTransition
	}
	toRank, ok := statusRank[to]
	if !ok {
		return ErrInvalidTransition
	}
	if toRank <= fromRank {
		return ErrInvalidTransition
	}
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	for _, a := range transitionActors[to] {
		if a == actor {
			return nil
		}
	}
	return ErrForbidden
}

// SellerChoices is the constrained forward menu offered to the seller.
func SellerChoices(from Status) []Status {
	next, ok := validNext[from]
	if !ok {
		return nil
	}
	for _, a := range transitionActors[next] {
		if a == ActorSeller {
			return []Status{next}
		}
	}
	return nil
}
