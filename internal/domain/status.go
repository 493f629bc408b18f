package domain

import "strings"

// FulfillmentState is the canonical shipment state parsed from the raw
// status strings the API returns.
type FulfillmentState int

const (
	FulfillmentUnfulfilled FulfillmentState = iota
	FulfillmentPartial
	FulfillmentFulfilled
	FulfillmentUnknown
)

// PaymentState is the canonical payment state.
type PaymentState int

const (
	PaymentPaid PaymentState = iota
	PaymentPending
	PaymentUnknown
)

var fulfillmentStates = map[string]FulfillmentState{
	"UNFULFILLED": FulfillmentUnfulfilled,
	"NONE":        FulfillmentUnfulfilled,
	"PARTIAL":     FulfillmentPartial,
	"FULFILLED":   FulfillmentFulfilled,
	"COMPLETE":    FulfillmentFulfilled,
}

var paymentStates = map[string]PaymentState{
	"PAID":             PaymentPaid,
	"PARTIALLY_PAID":   PaymentPaid,
	"AUTHORIZED":       PaymentPaid,
	"PENDING":          PaymentPending,
	"NONE":             PaymentPending,
	"UNPAID":           PaymentPending,
	"AWAITING_PAYMENT": PaymentPending,
	"UNAUTHORIZED":     PaymentPending,
}

// ParseFulfillmentState maps a raw fulfillment status to its canonical
// state. Missing or empty input means the order has not shipped.
func ParseFulfillmentState(raw string) FulfillmentState {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return FulfillmentUnfulfilled
	}
	if state, ok := fulfillmentStates[s]; ok {
		return state
	}
	return FulfillmentUnknown
}

// ParsePaymentState maps a raw financial status to its canonical state.
func ParsePaymentState(raw string) PaymentState {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if state, ok := paymentStates[s]; ok {
		return state
	}
	return PaymentUnknown
}

// ActionBucket is the mutually exclusive pending-action assignment for
// an order.
type ActionBucket string

const (
	ActionToFulfill        ActionBucket = "to_fulfill"
	ActionPaymentToCapture ActionBucket = "payment_to_capture"
	ActionNone             ActionBucket = "none"
)

// ClassifyAction assigns exactly one bucket. Unshipped orders always
// need fulfillment regardless of payment state; shipped but unpaid
// orders need their payment captured.
func ClassifyAction(fulfillment FulfillmentState, payment PaymentState) ActionBucket {
	switch fulfillment {
	case FulfillmentUnfulfilled, FulfillmentPartial:
		return ActionToFulfill
	case FulfillmentFulfilled:
		if payment == PaymentPending {
			return ActionPaymentToCapture
		}
	}
	return ActionNone
}
