// Package domain contains the error vocabulary shared by dateselect packages.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, logging, CLI) and holds only the
// sentinel errors that the public packages re-export.
package domain
