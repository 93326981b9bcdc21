package validator

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Int is an integer body field that also accepts its decimal string form,
// which is how HTML number inputs are usually posted. Values that are not an
// integer do not fail decoding: they are kept as Invalid and reported by
// Validate against the field.
type Int struct {
	Value   int64
	Set     bool
	Invalid bool
}

// UnmarshalJSON accepts 3, "3" and " 3 ". null and "" leave the field unset.
func (i *Int) UnmarshalJSON(data []byte) error {
	*i = Int{}

	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			i.Set, i.Invalid = true, true

			return nil
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return nil
		}
	}

	i.Set = true
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		i.Invalid = true

		return nil
	}
	i.Value = v

	return nil
}

// Ptr returns the value, or nil when the field was absent.
func (i Int) Ptr() *int64 {
	if !i.Set {
		return nil
	}
	v := i.Value

	return &v
}

// NewTypeError reports a body field whose JSON type does not match the request.
func NewTypeError(field string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: messageFor(field, ruleType)}}}
}
