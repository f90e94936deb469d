package systolic

import "fmt"

// InputShapeError reports an operand sequence whose length does not match
// the engine shape. It is the only recoverable error the engine raises;
// arithmetic overflow is defined behavior, not an error.
type InputShapeError struct {
	Operand string
	Want    int
	Got     int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("operand %s has %d elements, want %d",
		e.Operand, e.Got, e.Want)
}

// CheckA validates the length of a flattened A operand matrix.
func CheckA(s Shape, a []uint8) error {
	if len(a) != s.ASize() {
		return &InputShapeError{Operand: "A", Want: s.ASize(), Got: len(a)}
	}
	return nil
}

// CheckB validates the length of a flattened B operand matrix.
func CheckB(s Shape, b []uint8) error {
	if len(b) != s.BSize() {
		return &InputShapeError{Operand: "B", Want: s.BSize(), Got: len(b)}
	}
	return nil
}

// CheckVector validates one stimulus vector against the engine shape.
func CheckVector(s Shape, v Vector) error {
	if err := CheckA(s, v.A); err != nil {
		return err
	}
	return CheckB(s, v.B)
}
