// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build unix

package repair

import (
	"os/exec"
	"syscall"
)

// killGroupOnCancel starts the tool in its own process group and kills the
// whole group on cancellation, so wrapper scripts take their children down.
func killGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
