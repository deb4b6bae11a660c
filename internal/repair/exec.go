// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package repair

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// waitDelay bounds how long Run waits for output pipes to close after the
// tool is killed. Descendants that inherited the pipes can otherwise hold
// Wait open until they exit on their own.
const waitDelay = time.Second

// executor abstracts subprocess execution for testing.
type executor interface {
	// Run starts name with args, waits for it, and returns its captured
	// output. A non-zero exit is reported through err.
	Run(ctx context.Context, name string, args []string) (stdout, stderr []byte, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) Run(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay
	killGroupOnCancel(cmd)
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
