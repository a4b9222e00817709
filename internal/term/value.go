package term

import "fmt"

// Value is a sealed interface over the evaluator's boundary values.
// Only Num and Bool implement it; there is no null and no float.
type Value interface {
	termValue() // sealed
}

// Num is a natural-number value. The int64 carrier mirrors godel.Nat.
type Num int64

func (Num) termValue() {}

// Bool is a boolean value, produced only by the predicate functions.
type Bool bool

func (Bool) termValue() {}

// String renders the value the way a scenario file writes it.
func String(v Value) string {
	switch val := v.(type) {
	case Num:
		return fmt.Sprintf("%d", int64(val))
	case Bool:
		return fmt.Sprintf("%t", bool(val))
	default:
		return fmt.Sprintf("<invalid %T>", v)
	}
}

// Equal reports strict equality: same kind, same value.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Num:
		bv, ok := b.(Num)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	default:
		return false
	}
}

// FromAny converts a decoded YAML/JSON scalar into a Value. Integers of the
// usual decoder types and bools are accepted; everything else (floats,
// strings, nulls, containers) is rejected.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case int:
		return Num(val), nil
	case int64:
		return Num(val), nil
	case uint64:
		if val > 1<<62 {
			return nil, fmt.Errorf("integer out of range: %d", val)
		}
		return Num(val), nil
	case float32, float64:
		return nil, fmt.Errorf("floats are not representable: %v", val)
	case nil:
		return nil, fmt.Errorf("null is not a value")
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}
