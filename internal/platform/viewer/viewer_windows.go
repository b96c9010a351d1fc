//go:build windows

package viewer

import (
	"context"
	"os/exec"
)

type shellOpener struct{}

// Open starts the file association handler without waiting for the viewer
// to exit. The handler outlives the run, so it is not tied to the context.
func (shellOpener) Open(_ context.Context, path string) error {
	cmd := shellCommand(path)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

func shellCommand(path string) *exec.Cmd {
	return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
}

func platformOpener() Opener {
	return shellOpener{}
}
