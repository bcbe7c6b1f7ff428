//go:build !unix

package benchmark

import "os/exec"

func configureProcessGroup(cmd *exec.Cmd) {}
