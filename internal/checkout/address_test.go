package checkout

import (
	"testing"

	"storefront-api/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestResolveAddress(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		expected model.ShippingAddress
	}{
		{
			name: "nested shippingAddress wins over flat fields",
			payload: map[string]any{
				"shippingAddress": map[string]any{
					"street":  "1 Nested St",
					"city":    "Nestedville",
					"state":   "NS",
					"zipCode": "11111",
					"country": "Canada",
					"phone":   "555-0100",
				},
				"address": "2 Flat St",
				"city":    "Flatville",
			},
			expected: model.ShippingAddress{
				Street: "1 Nested St", City: "Nestedville", State: "NS",
				ZipCode: "11111", Country: "Canada", Phone: "555-0100",
			},
		},
		{
			name: "flat fields fill nested gaps",
			payload: map[string]any{
				"shippingAddress": map[string]any{"street": "1 Nested St"},
				"city":            "Flatville",
				"zipCode":         "22222",
			},
			expected: model.ShippingAddress{
				Street: "1 Nested St", City: "Flatville", State: "Not provided",
				ZipCode: "22222", Country: "United States", Phone: "Not provided",
			},
		},
		{
			name:    "empty payload gets full defaults",
			payload: map[string]any{},
			expected: model.ShippingAddress{
				Street: "Not provided", City: "Not provided", State: "Not provided",
				ZipCode: "00000", Country: "United States", Phone: "Not provided",
			},
		},
		{
			name: "empty strings treated as absent",
			payload: map[string]any{
				"shippingAddress": map[string]any{"country": ""},
				"country":         "",
			},
			expected: model.ShippingAddress{
				Street: "Not provided", City: "Not provided", State: "Not provided",
				ZipCode: "00000", Country: "United States", Phone: "Not provided",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveAddress(tt.payload))
		})
	}
}
