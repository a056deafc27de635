package main

const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Config file missing or invalid
	ExitScriptError = 3 // Script file missing or malformed
)
