//go:build unix

package process

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// setKillGroup starts the command in a new process group and makes context
// cancellation kill the whole group.
func setKillGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
		if errors.Is(err, unix.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}

// exitedOnItsOwn reports whether the process called exit rather than being
// terminated by a signal.
func exitedOnItsOwn(ps *os.ProcessState) bool {
	return ps != nil && ps.Exited()
}
