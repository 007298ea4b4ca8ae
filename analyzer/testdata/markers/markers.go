package markers

//calltrace:trace(verbose) // want `invalid option "verbose": unknown option`
func unknown() {}

//calltrace:trace(ignore = true) // want `invalid option "ignore": takes no value`
func valued() {}

//calltrace:trace(ignore ignore) // want `invalid option "ignore": expected ','`
func malformed() {}

//calltrace:trace // want `misplaced marker: var declaration`
var counter int

//calltrace:trace // want `misplaced marker: const declaration`
const limit = 10

func body() int {
	//calltrace:trace // want `misplaced marker: not attached to a declaration`
	return counter + limit
}

//calltrace:trace(ignore)
func ignored() {}

//calltrace:trace(verbose) // want `invalid option "verbose": unknown option`
type lonely int

//calltrace:trace // want `misplaced marker: interface type declaration`
type shape interface{ area() float64 }
