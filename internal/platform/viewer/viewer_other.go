//go:build !windows

package viewer

func platformOpener() Opener {
	return Nop{}
}
