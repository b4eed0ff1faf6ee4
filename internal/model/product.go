package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a single item in the catalogue. A product with a
// nil ID has never been persisted; the store assigns the ID on create
// and it is stable for the lifetime of the record.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Available   bool
	Category    Category
}

// String returns a diagnostic rendering for logs. It is not a data
// contract.
func (p *Product) String() string {
	id := "None"
	if p.ID != uuid.Nil {
		id = p.ID.String()
	}
	return fmt.Sprintf("<Product %s id=[%s]>", p.Name, id)
}

// Serialize projects the product into the untyped payload shape used on
// the wire. The price is rendered as a decimal string so no precision
// is lost crossing the boundary; the category is rendered by name.
func (p *Product) Serialize() map[string]any {
	var id any
	if p.ID != uuid.Nil {
		id = p.ID.String()
	}
	return map[string]any{
		"id":          id,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price.String(),
		"available":   p.Available,
		"category":    p.Category.String(),
	}
}

// Deserialize populates the product from an untyped payload, checking
// each field's presence and runtime type. All failures are reported as
// *DataValidationError. On failure the product is left in a partial
// state and must be discarded by the caller.
func (p *Product) Deserialize(data any) error {
	payload, ok := data.(map[string]any)
	if !ok {
		return NewDataValidationError("invalid product: body contained bad or no data (%T)", data)
	}

	name, err := requireString(payload, "name")
	if err != nil {
		return err
	}
	if name == "" {
		return NewDataValidationError("invalid product: missing name")
	}
	p.Name = name

	if desc, ok := payload["description"]; ok {
		s, ok := desc.(string)
		if !ok {
			return NewDataValidationError("invalid type for string [description]: %T", desc)
		}
		p.Description = s
	} else {
		p.Description = ""
	}

	rawPrice, ok := payload["price"]
	if !ok {
		return NewDataValidationError("invalid product: missing price")
	}
	price, err := ParsePrice(rawPrice)
	if err != nil {
		return err
	}
	p.Price = price

	rawAvailable, ok := payload["available"]
	if !ok {
		return NewDataValidationError("invalid product: missing available")
	}
	available, ok := rawAvailable.(bool)
	if !ok {
		return NewDataValidationError("invalid type for boolean [available]: %T", rawAvailable)
	}
	p.Available = available

	rawCategory, err := requireString(payload, "category")
	if err != nil {
		return err
	}
	category, err := ParseCategory(rawCategory)
	if err != nil {
		return err
	}
	p.Category = category

	return nil
}

// ParsePrice normalises a wire price value to an exact decimal. It
// accepts a decimal value, a decimal-formatted string, a json.Number,
// or a plain numeric type; anything else fails with a
// *DataValidationError.
func ParsePrice(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Decimal{}, NewDataValidationError("invalid price %q: %v", v, err)
		}
		return d, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, NewDataValidationError("invalid price %q: %v", v.String(), err)
		}
		return d, nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Decimal{}, NewDataValidationError("invalid type for price: %T", value)
	}
}

// requireString looks up a mandatory string field in the payload.
func requireString(payload map[string]any, key string) (string, error) {
	raw, ok := payload[key]
	if !ok {
		return "", NewDataValidationError("invalid product: missing %s", key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", NewDataValidationError("invalid type for string [%s]: %T", key, raw)
	}
	return s, nil
}
