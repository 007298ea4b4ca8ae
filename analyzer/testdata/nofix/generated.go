// Code generated by hand. DO NOT EDIT.

package nofix // want `1 functions can be instrumented`

//calltrace:trace
func generated() {}
