package event

import "fmt"

// Attributes is an open-ended named map attached to a Candidate.
// Values are float64, bool or string; integers are stored as float64.
type Attributes map[string]any

// Set stores value under key after normalizing integer types to float64.
// Unsupported types are rejected with ErrAttributeType and leave the map unchanged.
func (a Attributes) Set(key string, value any) error {
	norm, err := normalizeValue(value)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", key, err)
	}
	a[key] = norm

	return nil
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a[key]

	return ok
}

// Float returns the numeric value stored under key.
func (a Attributes) Float(key string) (float64, bool) {
	f, ok := a[key].(float64)

	return f, ok
}

// Bool returns the boolean value stored under key.
func (a Attributes) Bool(key string) (bool, bool) {
	b, ok := a[key].(bool)

	return b, ok
}

// String returns the string value stored under key.
func (a Attributes) String(key string) (string, bool) {
	s, ok := a[key].(string)

	return s, ok
}

// Clone returns an independent copy. Values are scalars, so a shallow copy
// of the map is a deep copy of the attributes.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	cp := make(Attributes, len(a))
	for k, v := range a {
		cp[k] = v
	}

	return cp
}

func normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case float64, bool, string:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrAttributeType, value)
	}
}
