// Command libspook is the hook library. Build it as a shared library:
//
//	go build -buildmode=c-shared -o libspook.dll ./cmd/libspook
//
// and arrange for the host process to load it. The Go runtime runs init on
// its own thread once the library is mapped, outside the platform loader
// lock, so the attach routine may load further libraries from there.
package main

import "github.com/stephen-fox/libspook/internal/attach"

func init() {
	attach.Hook()
}

func main() {}
