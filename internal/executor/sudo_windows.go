//go:build windows

package executor

// Windows has no sudo equivalent that applies here. The supported
// backends on Windows manage their own elevation.
func isRoot() bool {
	return false
}
