//go:build !unix

package process

import (
	"os"
	"os/exec"
)

// setKillGroup keeps the exec.CommandContext default of killing only the
// direct child.
func setKillGroup(*exec.Cmd) {}

// exitedOnItsOwn always reports false: without signals a killed process
// cannot be told apart from one that exited, so cancellation wins.
func exitedOnItsOwn(*os.ProcessState) bool {
	return false
}
