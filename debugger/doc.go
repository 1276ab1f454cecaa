// Package debugger holds the development facilities activated by debug
// directives: tracing topics, spy points and the interactive fallback flag.
//
// All registries are safe for concurrent use. They are normally written once
// during startup and read by application code afterwards.
package debugger
