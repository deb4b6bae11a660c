// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !unix

package repair

import "os/exec"

// killGroupOnCancel keeps the default cancellation, which kills only the
// direct child; WaitDelay still bounds the wait for its descendants.
func killGroupOnCancel(cmd *exec.Cmd) {}
