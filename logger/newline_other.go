//go:build !windows

package logger

const lineEnding = "\n"
