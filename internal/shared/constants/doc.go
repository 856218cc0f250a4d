// Package constants centralizes defaults shared across the CLI.
//
// File permissions, the scanned filesystem roots, and the ldd marker live
// here so cmd/ and internal/ agree on them without import cycles.
package constants
