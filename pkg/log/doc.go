// Package log provides per service loggers for the loggedprint tools.
//
// Every logger is a printer.Printer with the prefix `[name>]`, so diagnostic
// lines end up in a shared log store that can be read back like the output of
// any other printer.
//
// Basic Usage
//
//	l := log.ForService("config")
//	l.Infof("loaded %d printers", n)
//	l.Debugf("raw: %v", cfg) // printed only when debug is on for "config"
//
// Debug output can be enabled globally (SetGlobalDebug) or per service
// (EnableDebugFor / DisableDebugFor).
//
// Output Routing
//
// SetOutput changes the console writer of every logger, existing or future.
// Tests pass a bytes.Buffer to assert on log contents.
//
// Reading Back
//
// Store returns the store shared by all service loggers.
//
// The package name collides with the standard library log package; alias one
// of them when both are needed.
package log
