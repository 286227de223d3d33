package tree

import "fmt"

// DebugChecks gates the tree's internal consistency assertions. It mirrors
// CommonB2Settings.go's B2DEBUG: every public operation in this package is
// a trusted, in-process call, and every violated precondition here is a
// programmer error, not a recoverable failure — so instead of returning an
// error, debugAssert panics, exactly like B2Assert does.
var DebugChecks = true

func debugAssert(cond bool, format string, args ...any) {
	if !DebugChecks || cond {
		return
	}
	panic(fmt.Sprintf("tree: assertion failed: "+format, args...))
}

func assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Sprintf("tree: assertion failed: "+format, args...))
}
