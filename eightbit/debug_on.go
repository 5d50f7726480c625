//go:build strkit_debug

package eightbit

const debugChecks = true
