//go:build !windows

package platform

import "os"

// MessageBox has no native dialog outside Windows and writes to stderr.
type MessageBox struct {
	Title string
}

// Notify writes the message to stderr.
func (m MessageBox) Notify(message string) {
	WriterNotifier{W: os.Stderr, Title: m.Title}.Notify(message)
}
