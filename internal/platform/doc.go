package platform

// Package platform contains OS integration: where application data lives on
// each platform and filesystem helpers for creating it.
