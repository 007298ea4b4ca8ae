//calltrace:trace
package fix // want `3 functions can be instrumented`

import (
	"fmt"
)

// Point is a point.
type Point struct{ X, Y int }

func add(a, b int) int {
	return a + b
}

// Move moves the point.
func (p *Point) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

//calltrace:trace(ignore)
func skipped() int {
	return 0
}

func divide(a, b int) (q int, err error) {
	if b == 0 {
		return 0, fmt.Errorf("division of %d by zero", a)
	}

	return a / b, nil
}
