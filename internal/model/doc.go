package model

// Package model defines the quiz records managed by the application:
// questions and their answer alternatives. Records are plain values so the
// editor can work on its own copy while the list keeps what the store returned.
