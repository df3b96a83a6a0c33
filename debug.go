//go:build debug

package gochart

// debugAssert panics when cond is false. Only debug builds carry the check.
func debugAssert(cond bool, msg string) {
	if !cond {
		panic("gochart: " + msg)
	}
}
