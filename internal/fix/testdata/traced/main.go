//calltrace:trace
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func add(a, b int) int {
	return a + b
}

func compose(f, g func(int) int) func(int) int {
	return func(x int) int { return g(f(x)) }
}

func sum(xs ...int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}

func recovered() (msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			msg, err = fmt.Sprint("recovered: ", r), errors.New("panicked")
		}
	}()

	panic("boom")
}

// Box holds a value.
type Box[T any] struct{ v T }

func (b *Box[T]) Get() T {
	return b.v
}

//calltrace:trace(ignore)
func main() {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(os.Stdout)

	fmt.Println("add", add(1, 2))
	fmt.Println("compose", compose(func(x int) int { return x + 1 }, func(x int) int { return 2 * x })(3))
	fmt.Println("sum", sum(1, 2, 3))

	msg, err := recovered()
	fmt.Println("recovered", msg, err)

	fmt.Println("get", (&Box[string]{v: "boxed"}).Get())
	fmt.Println("again", add(2, 2))
}
