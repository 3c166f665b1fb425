package client

import "github.com/atotto/clipboard"

// systemClipboard writes to the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
