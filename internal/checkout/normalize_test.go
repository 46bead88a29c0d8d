package checkout

import (
	"testing"

	"storefront-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItems_Aliases(t *testing.T) {
	item := map[string]any{"name": "Shirt", "qty": float64(2), "price": float64(30)}

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{
			name:    "items key",
			payload: map[string]any{"items": []any{item}},
		},
		{
			name:    "orderItems key",
			payload: map[string]any{"orderItems": []any{item}},
		},
		{
			name: "nested order.items key",
			payload: map[string]any{
				"order": map[string]any{"items": []any{item}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := NormalizeItems(tt.payload)
			require.Len(t, items, 1)
			assert.Equal(t, "Shirt", items[0].Name)
			assert.Equal(t, 2, items[0].Quantity)
			assert.Equal(t, 30.0, items[0].Price)
		})
	}
}

func TestNormalizeItems_AliasPrecedence(t *testing.T) {
	payload := map[string]any{
		"items":      []any{map[string]any{"name": "FromItems", "price": float64(1)}},
		"orderItems": []any{map[string]any{"name": "FromOrderItems", "price": float64(2)}},
	}

	items := NormalizeItems(payload)
	require.Len(t, items, 1)
	assert.Equal(t, "FromItems", items[0].Name)
}

func TestNormalizeItems_FieldDefaults(t *testing.T) {
	tests := []struct {
		name     string
		entry    map[string]any
		expected model.OrderItem
	}{
		{
			name:     "productName fallback",
			entry:    map[string]any{"productName": "Hat", "qty": float64(1), "price": float64(15)},
			expected: model.OrderItem{Name: "Hat", Quantity: 1, Price: 15},
		},
		{
			name:     "missing name",
			entry:    map[string]any{"qty": float64(1), "price": float64(5)},
			expected: model.OrderItem{Name: "Unknown Product", Quantity: 1, Price: 5},
		},
		{
			name:     "quantity alias",
			entry:    map[string]any{"name": "Socks", "quantity": float64(3), "price": float64(4)},
			expected: model.OrderItem{Name: "Socks", Quantity: 3, Price: 4},
		},
		{
			name:     "zero quantity floored to one",
			entry:    map[string]any{"name": "Socks", "qty": float64(0), "price": float64(4)},
			expected: model.OrderItem{Name: "Socks", Quantity: 1, Price: 4},
		},
		{
			name:     "negative price clamped to zero",
			entry:    map[string]any{"name": "Socks", "qty": float64(1), "price": float64(-5)},
			expected: model.OrderItem{Name: "Socks", Quantity: 1, Price: 0},
		},
		{
			name:     "numeric strings coerced",
			entry:    map[string]any{"name": "Belt", "qty": "2", "price": "19.99"},
			expected: model.OrderItem{Name: "Belt", Quantity: 2, Price: 19.99},
		},
		{
			name:  "size colour and product reference kept",
			entry: map[string]any{"name": "Tee", "qty": float64(1), "price": float64(9), "size": "M", "color": "red", "productId": "PROD-00001"},
			expected: model.OrderItem{
				Name: "Tee", Quantity: 1, Price: 9,
				Size: "M", Color: "red", ProductID: "PROD-00001",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := NormalizeItems(map[string]any{"items": []any{tt.entry}})
			require.Len(t, items, 1)
			assert.Equal(t, tt.expected, items[0])
		})
	}
}

func TestNormalizeItems_DropsNonObjectEntries(t *testing.T) {
	payload := map[string]any{
		"items": []any{
			"garbage",
			float64(42),
			map[string]any{"name": "Valid", "qty": float64(1), "price": float64(10)},
		},
	}

	items := NormalizeItems(payload)
	require.Len(t, items, 1)
	assert.Equal(t, "Valid", items[0].Name)
}

func TestNormalizeItems_EmptyPayload(t *testing.T) {
	assert.Empty(t, NormalizeItems(map[string]any{}))
	assert.Empty(t, NormalizeItems(map[string]any{"items": "not-a-list"}))
	assert.Empty(t, NormalizeItems(map[string]any{"items": []any{}}))
}
