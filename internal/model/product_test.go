package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"name":        "Fedora",
		"description": "A red hat",
		"price":       "12.50",
		"available":   true,
		"category":    "CLOTHS",
	}
}

func TestProduct_String(t *testing.T) {
	product := Product{Name: "Fedora"}
	assert.Equal(t, "<Product Fedora id=[None]>", product.String())

	product.ID = uuid.MustParse("a8098c1a-f86e-11da-bd1a-00112444be1e")
	assert.Equal(t, "<Product Fedora id=[a8098c1a-f86e-11da-bd1a-00112444be1e]>", product.String())
}

func TestProduct_Deserialize(t *testing.T) {
	var product Product
	err := product.Deserialize(validPayload())
	require.NoError(t, err)

	assert.Equal(t, uuid.Nil, product.ID)
	assert.Equal(t, "Fedora", product.Name)
	assert.Equal(t, "A red hat", product.Description)
	assert.True(t, product.Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, product.Available)
	assert.Equal(t, CategoryCloths, product.Category)
}

func TestProduct_DeserializeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{
			name:    "Nil payload",
			payload: nil,
		},
		{
			name:    "Non-map payload",
			payload: "not a product",
		},
		{
			name: "Missing name",
			payload: map[string]any{
				"description": "Missing name",
				"price":       "10",
				"available":   true,
				"category":    "FOOD",
			},
		},
		{
			name: "Empty name",
			payload: map[string]any{
				"name":      "",
				"price":     "10",
				"available": true,
				"category":  "FOOD",
			},
		},
		{
			name: "Missing price",
			payload: map[string]any{
				"name":      "Test",
				"available": true,
				"category":  "FOOD",
			},
		},
		{
			name: "Missing available",
			payload: map[string]any{
				"name":     "Test",
				"price":    "10",
				"category": "FOOD",
			},
		},
		{
			name: "Available as string is rejected",
			payload: map[string]any{
				"name":      "Test",
				"price":     "10",
				"available": "yes",
				"category":  "FOOD",
			},
		},
		{
			name: "Available as number is rejected",
			payload: map[string]any{
				"name":      "Test",
				"price":     "10",
				"available": float64(1),
				"category":  "FOOD",
			},
		},
		{
			name: "Unknown category",
			payload: map[string]any{
				"name":      "Test",
				"price":     "10",
				"available": true,
				"category":  "INVALID",
			},
		},
		{
			name: "Price with bad format",
			payload: map[string]any{
				"name":      "Test",
				"price":     "ten dollars",
				"available": true,
				"category":  "FOOD",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var product Product
			err := product.Deserialize(tt.payload)
			require.Error(t, err)
			assert.True(t, IsDataValidation(err), "expected DataValidationError, got %T", err)
		})
	}
}

func TestProduct_SerializeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		price any
	}{
		{
			name:  "Price given as string",
			price: "19.99",
		},
		{
			name:  "Price given as json.Number",
			price: json.Number("19.99"),
		},
		{
			name:  "Price given as float",
			price: 19.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			payload["price"] = tt.price

			var product Product
			require.NoError(t, product.Deserialize(payload))

			out := product.Serialize()
			assert.Nil(t, out["id"])
			assert.Equal(t, payload["name"], out["name"])
			assert.Equal(t, payload["description"], out["description"])
			assert.Equal(t, payload["available"], out["available"])
			assert.Equal(t, payload["category"], out["category"])

			price, err := decimal.NewFromString(out["price"].(string))
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString("19.99")))
		})
	}
}

func TestProduct_SerializeWithID(t *testing.T) {
	id := uuid.New()
	product := Product{
		ID:        id,
		Name:      "Hammer",
		Price:     decimal.RequireFromString("9.75"),
		Available: false,
		Category:  CategoryTools,
	}

	out := product.Serialize()
	assert.Equal(t, id.String(), out["id"])
	assert.Equal(t, "9.75", out["price"])
	assert.Equal(t, false, out["available"])
	assert.Equal(t, "TOOLS", out["category"])
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCategory("GADGETS")
	require.Error(t, err)
	assert.True(t, IsDataValidation(err))

	// Name matching is exact; lowercase names are not members.
	_, err = ParseCategory("food")
	require.Error(t, err)
	assert.True(t, IsDataValidation(err))
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
		wantErr  bool
	}{
		{name: "Decimal value", value: decimal.RequireFromString("2.50"), expected: "2.50"},
		{name: "Decimal string", value: "2.50", expected: "2.50"},
		{name: "json.Number", value: json.Number("100.05"), expected: "100.05"},
		{name: "Float", value: 12.5, expected: "12.5"},
		{name: "Int", value: 42, expected: "42"},
		{name: "Bad string", value: "two fifty", wantErr: true},
		{name: "Bool", value: true, wantErr: true},
		{name: "Nil", value: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := ParsePrice(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsDataValidation(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, price.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, price)
		})
	}
}
