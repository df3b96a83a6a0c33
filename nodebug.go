//go:build !debug

package gochart

func debugAssert(cond bool, msg string) {
	if !cond {
		logger.Warn("assertion failed", "msg", msg)
	}
}
