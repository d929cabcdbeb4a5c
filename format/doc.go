// Package format names the document formats the command line tools read
// and write: JSON, handled by packages parse and encode, and YAML, handled
// through package gomap.
package format
