//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"promo-bonus-service/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleID_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    request.FlexibleID
		wantErr bool
	}{
		{name: "string", raw: `{"id":"A-17"}`, want: "A-17"},
		{name: "padded string", raw: `{"id":"  42 "}`, want: "42"},
		{name: "integer", raw: `{"id":1001}`, want: "1001"},
		{name: "large integer keeps digits", raw: `{"id":9007199254740993}`, want: "9007199254740993"},
		{name: "null", raw: `{"id":null}`, want: ""},
		{name: "missing", raw: `{}`, want: ""},
		{name: "object", raw: `{"id":{"x":1}}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v struct {
				ID request.FlexibleID `json:"id"`
			}
			err := json.Unmarshal([]byte(tc.raw), &v)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v.ID)
		})
	}
}

func TestWebhookRequest_ToEvent(t *testing.T) {
	raw := `{
		"event": "order.create",
		"context": {
			"id": 555,
			"buyer": {"phone": "+380501234567"},
			"promocode": "BONUS",
			"discount_amount": 120.5,
			"products_total": 1000,
			"grand_total": 879.5,
			"status_group": "new"
		}
	}`

	var req request.WebhookRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))

	ev := req.ToEvent()
	assert.Equal(t, "order.create", ev.Event)
	assert.Equal(t, "555", ev.OrderID)
	assert.Equal(t, "+380501234567", ev.Phone)
	assert.Equal(t, "BONUS", ev.Promocode)
	assert.InDelta(t, 120.5, ev.DiscountAmount, 1e-9)
	assert.InDelta(t, 1000, ev.ProductsTotal, 1e-9)
	assert.InDelta(t, 879.5, ev.GrandTotal, 1e-9)
	assert.Equal(t, "new", ev.StatusGroup)
}
