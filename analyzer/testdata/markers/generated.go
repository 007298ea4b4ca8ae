// Code generated by hand. DO NOT EDIT.

package markers

//calltrace:trace(verbose)
func generated() {}
