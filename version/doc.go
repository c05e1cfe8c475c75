// Package version provides version information and build metadata for
// the hutu CLI.
//
// It supports both compile-time version injection via build flags and
// runtime detection from Go's build info, so version reporting works in
// development, CI, and release builds alike.
//
// Build integration injects values with:
//
//	-ldflags "-X github.com/hutulabs/hutugo/version.Version=v1.0.0 ..."
package version
