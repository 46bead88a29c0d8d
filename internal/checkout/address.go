package checkout

import "storefront-api/internal/model"

// Address defaults applied when neither the nested nor the flat form
// supplies a field. The output is always fully populated.
const (
	defaultAddressText = "Not provided"
	defaultCountry     = "United States"
	defaultZipCode     = "00000"
)

// ResolveAddress produces a complete shipping address from a checkout
// payload. A nested "shippingAddress" object takes precedence over the flat
// top-level fields (address, city, state, zipCode, country, phone).
func ResolveAddress(payload map[string]any) model.ShippingAddress {
	nested, _ := payload["shippingAddress"].(map[string]any)

	return model.ShippingAddress{
		Street:  addressField(nested, "street", payload, "address", defaultAddressText),
		City:    addressField(nested, "city", payload, "city", defaultAddressText),
		State:   addressField(nested, "state", payload, "state", defaultAddressText),
		ZipCode: addressField(nested, "zipCode", payload, "zipCode", defaultZipCode),
		Country: addressField(nested, "country", payload, "country", defaultCountry),
		Phone:   addressField(nested, "phone", payload, "phone", defaultAddressText),
	}
}

// addressField resolves one field: nested key wins, then the flat key, then
// the default.
func addressField(nested map[string]any, nestedKey string, payload map[string]any, flatKey, fallback string) string {
	if s, ok := nested[nestedKey].(string); ok && s != "" {
		return s
	}
	if s, ok := payload[flatKey].(string); ok && s != "" {
		return s
	}
	return fallback
}
