package termco

import "fmt"

// OutOfBoundsError signals a component or index value outside the valid
// range of a terminal color type.
type OutOfBoundsError struct {
	Value uint8
	Min   uint8
	Max   uint8
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%d does not fit into range %d..%d", e.Value, e.Min, e.Max)
}

func outOfBounds(value, min, max uint8) error {
	return &OutOfBoundsError{Value: value, Min: min, Max: max}
}
