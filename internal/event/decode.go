package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns the payload of an event as T.
//
// Events published on the in-process bus carry T or *T directly. Payloads
// replayed from the dead-letter file arrive as generic maps and are converted
// through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("nil %T payload", out)
		}
		return *v, nil
	case nil:
		return out, fmt.Errorf("missing %T payload", out)
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("encode %T payload: %w", out, err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, nil
}
