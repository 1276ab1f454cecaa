// Package argvopts converts raw command line arguments into structured options
// following a flat long-option convention for quick option handling in scripts.
//
// Every token starting with "--" becomes an Option. Other tokens are returned
// unchanged as positional arguments. Use package directive to interpret the
// reserved debug options before handing the rest to application logic.
package argvopts
