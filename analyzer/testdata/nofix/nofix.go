//calltrace:trace
package nofix // want `2 functions can be instrumented`

func first() {}

func second(n int) int {
	return n * 2
}
