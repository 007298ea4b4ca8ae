//nolint:calltrace
package markers

//calltrace:trace(verbose)
func silenced() {}
