package platform

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/stephen-fox/libspook/internal/branding"
	"github.com/stephen-fox/libspook/internal/loader"
)

// ErrUnsupported is returned by loaders on platforms that cannot load
// native libraries.
var ErrUnsupported = errors.New("loading native libraries is not supported on this platform")

// Notifier kinds accepted by NewNotifier.
const (
	NotifierMessageBox = "messagebox"
	NotifierStderr     = "stderr"
)

// WriterNotifier writes one line per message to W.
type WriterNotifier struct {
	W     io.Writer
	Title string
}

// Notify writes "title: message". Write errors are ignored.
func (n WriterNotifier) Notify(message string) {
	if n.Title == "" {
		fmt.Fprintln(n.W, message)
		return
	}
	fmt.Fprintf(n.W, "%s: %s\n", n.Title, message)
}

// NewNotifier returns the notifier for kind. An empty kind selects the
// message box.
func NewNotifier(kind string) (loader.Notifier, error) {
	switch kind {
	case "", NotifierMessageBox:
		return MessageBox{Title: branding.LibName()}, nil
	case NotifierStderr:
		return WriterNotifier{W: os.Stderr, Title: branding.LibName()}, nil
	default:
		return nil, fmt.Errorf("unknown notifier %q: supported notifiers are %q and %q",
			kind, NotifierMessageBox, NotifierStderr)
	}
}
