//go:build unix

package benchmark

import (
	"os/exec"
	"syscall"
)

// configureProcessGroup puts the child in its own process group so that a
// cancelled run also kills the solution binary spawned by "go run".
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
