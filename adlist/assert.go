//go:build !adlistdebug

package adlist

// assert checks caller preconditions. Build with -tags adlistdebug to have
// violations logged and turned into panics.
func assert(cond bool, format string, args ...interface{}) {}
