//go:build windows

package platform

import "golang.org/x/sys/windows"

// mbOK shows a single OK button.
const mbOK = 0x00000000

// MessageBox shows each message in a modal MessageBoxW owned by no window.
type MessageBox struct {
	Title string
}

// Notify blocks until the user dismisses the box.
func (m MessageBox) Notify(message string) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(m.Title)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, text, caption, mbOK)
}
