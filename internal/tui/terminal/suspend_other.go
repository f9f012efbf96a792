//go:build !unix

package terminal

func suspendProcess() error {
	return nil
}
