// Package checkout turns raw cart payloads into canonical order data.
// Everything in this package is a pure function over decoded JSON; no store
// or HTTP types appear here.
package checkout

import (
	"math"
	"strconv"

	"storefront-api/internal/model"
)

// fallbackProductName is used when an entry carries no usable name.
const fallbackProductName = "Unknown Product"

// NormalizeItems extracts a canonical line-item list from a raw checkout
// payload. The item list is accepted under "items", "orderItems", or nested
// "order.items", in that order of precedence. Entries that are not objects
// are dropped. An empty result is returned as-is; rejecting it is the
// caller's decision.
func NormalizeItems(payload map[string]any) []model.OrderItem {
	raw := rawItemList(payload)

	items := make([]model.OrderItem, 0, len(raw))
	for _, entry := range raw {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, normalizeItem(obj))
	}
	return items
}

// rawItemList resolves the item-list aliases against the payload.
func rawItemList(payload map[string]any) []any {
	if list, ok := payload["items"].([]any); ok {
		return list
	}
	if list, ok := payload["orderItems"].([]any); ok {
		return list
	}
	if order, ok := payload["order"].(map[string]any); ok {
		if list, ok := order["items"].([]any); ok {
			return list
		}
	}
	return nil
}

func normalizeItem(obj map[string]any) model.OrderItem {
	name := stringValue(obj, "name", "productName")
	if name == "" {
		name = fallbackProductName
	}

	qty := intValue(obj, "qty", "quantity")
	if qty < 1 {
		qty = 1
	}

	price := floatValue(obj, "price")
	if price < 0 {
		price = 0
	}

	return model.OrderItem{
		Name:      name,
		Quantity:  qty,
		Price:     price,
		Size:      stringValue(obj, "size"),
		Color:     stringValue(obj, "color"),
		ProductID: stringValue(obj, "productId"),
	}
}

// stringValue returns the first non-empty string found under keys.
func stringValue(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// intValue returns the first value under keys coercible to an integer.
// Fractional numbers are truncated, matching the permissive intake contract.
func intValue(obj map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case float64:
			return int(v)
		case int:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return int(f)
			}
		}
	}
	return 0
}

// floatValue returns the first value under keys coercible to a float.
func floatValue(obj map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case float64:
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				return v
			}
		case int:
			return float64(v)
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		}
	}
	return 0
}
