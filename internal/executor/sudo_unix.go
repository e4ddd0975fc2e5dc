//go:build !windows

package executor

import "os"

func isRoot() bool {
	return os.Geteuid() == 0
}
