// Package crud keeps a record list, its modal editor and the record service
// consistent across create, update and delete.
//
// A Controller owns the displayed rows and never holds on to an editor. It
// opens a Session per edit, subscribes to that session's Hub and re-reads the
// whole collection from the Service whenever the session reports a
// successful commit. Widgets stay behind the Surface, Form and Window
// interfaces so the package has no toolkit dependency.
//
// All methods are meant to be called from the UI goroutine.
package crud
