package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFulfillmentState(t *testing.T) {
	tests := []struct {
		raw  string
		want FulfillmentState
	}{
		{"", FulfillmentUnfulfilled},
		{"   ", FulfillmentUnfulfilled},
		{"UNFULFILLED", FulfillmentUnfulfilled},
		{"unfulfilled", FulfillmentUnfulfilled},
		{"None", FulfillmentUnfulfilled},
		{"PARTIAL", FulfillmentPartial},
		{"partial", FulfillmentPartial},
		{"FULFILLED", FulfillmentFulfilled},
		{"fulfilled", FulfillmentFulfilled},
		{"Complete", FulfillmentFulfilled},
		{"IN_TRANSIT", FulfillmentUnknown},
		{"whatever", FulfillmentUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFulfillmentState(tt.raw), "raw=%q", tt.raw)
	}
}

func TestParsePaymentState(t *testing.T) {
	tests := []struct {
		raw  string
		want PaymentState
	}{
		{"PAID", PaymentPaid},
		{"paid", PaymentPaid},
		{"Partially_Paid", PaymentPaid},
		{"AUTHORIZED", PaymentPaid},
		{"PENDING", PaymentPending},
		{"pending", PaymentPending},
		{"NONE", PaymentPending},
		{"UNPAID", PaymentPending},
		{"awaiting_payment", PaymentPending},
		{"UNAUTHORIZED", PaymentPending},
		{"", PaymentUnknown},
		{"REFUNDED", PaymentUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePaymentState(tt.raw), "raw=%q", tt.raw)
	}
}

func TestClassifyAction(t *testing.T) {
	tests := []struct {
		name        string
		fulfillment FulfillmentState
		payment     PaymentState
		want        ActionBucket
	}{
		{"unfulfilled and paid", FulfillmentUnfulfilled, PaymentPaid, ActionToFulfill},
		{"unfulfilled and pending", FulfillmentUnfulfilled, PaymentPending, ActionToFulfill},
		{"partial and paid", FulfillmentPartial, PaymentPaid, ActionToFulfill},
		{"partial and pending", FulfillmentPartial, PaymentPending, ActionToFulfill},
		{"fulfilled and pending", FulfillmentFulfilled, PaymentPending, ActionPaymentToCapture},
		{"fulfilled and paid", FulfillmentFulfilled, PaymentPaid, ActionNone},
		{"fulfilled and unknown payment", FulfillmentFulfilled, PaymentUnknown, ActionNone},
		{"unknown fulfillment", FulfillmentUnknown, PaymentPending, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyAction(tt.fulfillment, tt.payment))
		})
	}
}

// Fulfillment need takes priority: an order that is both unshipped and
// unpaid lands in exactly one bucket.
func TestClassifyActionMutuallyExclusive(t *testing.T) {
	bucket := ClassifyAction(FulfillmentUnfulfilled, PaymentPending)
	assert.Equal(t, ActionToFulfill, bucket)
	assert.NotEqual(t, ActionPaymentToCapture, bucket)
}
