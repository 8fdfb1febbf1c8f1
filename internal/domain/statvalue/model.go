package statvalue

import (
	"bytes"
	"encoding/json"

	sonic "github.com/bytedance/sonic"
)

// Decoder attempts one representation of a loosely typed numeric payload.
type Decoder func(raw []byte) (float64, bool)

// Chain is the fallback order used by Decode: plain float, integer coerced
// to float, then an object carrying a "total" field.
var Chain = []Decoder{
	DecodeFloat,
	DecodeInteger,
	DecodeObjectTotal,
}

// Decode resolves raw JSON into a number using Chain. Anything that no
// decoder accepts, including null, strings and booleans, yields zero.
func Decode(raw []byte) float64 {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0
	}
	for _, decode := range Chain {
		if value, ok := decode(trimmed); ok {
			return value
		}
	}
	return 0
}

func DecodeFloat(raw []byte) (float64, bool) {
	var out float64
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return 0, false
	}
	return out, true
}

func DecodeInteger(raw []byte) (float64, bool) {
	var out int64
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return 0, false
	}
	return float64(out), true
}

func DecodeObjectTotal(raw []byte) (float64, bool) {
	if len(raw) == 0 || raw[0] != '{' {
		return 0, false
	}
	var wrapped struct {
		Total json.RawMessage `json:"total"`
	}
	if err := sonic.Unmarshal(raw, &wrapped); err != nil || len(wrapped.Total) == 0 {
		return 0, false
	}
	if value, ok := DecodeFloat(wrapped.Total); ok {
		return value, true
	}
	return DecodeInteger(wrapped.Total)
}

// Value is a number decoded with Decode. It accepts any JSON shape and
// never fails to unmarshal.
type Value float64

func (v *Value) UnmarshalJSON(data []byte) error {
	*v = Value(Decode(data))
	return nil
}

func (v Value) Float64() float64 {
	return float64(v)
}

// Wrapped is the {"value": ...} envelope SportMonks uses for fixture
// statistics and lineup details.
type Wrapped struct {
	Value Value `json:"value"`
}
