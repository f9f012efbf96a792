//go:build unix

package terminal

import "syscall"

// suspendProcess stops the process with SIGTSTP and returns after SIGCONT.
func suspendProcess() error {
	return syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
