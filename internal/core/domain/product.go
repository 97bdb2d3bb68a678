package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type idKind uint8

const (
	idNone idKind = iota
	idString
	idNumber
)

// ProductID is a product identifier that may be a JSON string or a JSON
// number. The JSON kind is kept: StringID("1") and NumberID(1) are
// different ids, but both render as "1" through String.
type ProductID struct {
	kind  idKind
	value string
}

// StringID returns a string-kind identifier.
func StringID(s string) ProductID {
	return ProductID{kind: idString, value: s}
}

// NumberID returns a number-kind identifier.
func NumberID(f float64) ProductID {
	return ProductID{kind: idNumber, value: formatNumber(f)}
}

func (id ProductID) IsZero() bool { return id.kind == idNone }

// IsBlank reports whether the id is absent or an empty string. Blank ids are
// never stored.
func (id ProductID) IsBlank() bool { return id.value == "" }

func (id ProductID) IsNumber() bool { return id.kind == idNumber }

// String returns the identifier the way it is compared at checkout.
func (id ProductID) String() string { return id.value }

// Equal is strict: both the kind and the value must match.
func (id ProductID) Equal(other ProductID) bool {
	return id.kind == other.kind && id.value == other.value
}

func (id ProductID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case idNumber:
		return []byte(id.value), nil
	case idString:
		return json.Marshal(id.value)
	default:
		return []byte("null"), nil
	}
}

func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*id = ProductID{}
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("product id must be a string or a number, got %s", data)
	}
	*id = NumberID(f)
	return nil
}

// UnmarshalParam lets echo bind form and query values, which are always strings.
func (id *ProductID) UnmarshalParam(param string) error {
	*id = StringID(param)
	return nil
}

// formatNumber renders f the way JavaScript converts a number to a string:
// shortest round-trip digits, plain decimals in [1e-6, 1e21) and exponent
// form outside it. Negative zero renders as "0".
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		// Go pads the exponent to two digits: "1e-07" becomes "1e-7".
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Product is a catalog entry.
type Product struct {
	ID       ProductID `json:"id" validate:"required" swaggertype:"string"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Category string    `json:"category"`
}
