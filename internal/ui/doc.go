package ui

// Package ui contains the Fyne-based desktop interface: the alternatives
// list window, the modal alternative editor and the settings dialog. It is
// the rendering surface of the crud controller; it never talks to the store
// except through the record services handed to it. All UI strings are
// localized via Localization.
