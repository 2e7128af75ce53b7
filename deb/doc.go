// Package deb reads metadata out of Debian binary package (.deb) files.
//
// # Design Philosophy
//
// The package operates on streams (io.Reader) and never shells out to 'dpkg'
// or 'ar', making it usable on any platform and in any sandbox. A .deb file
// is an ar archive whose members include 'debian-binary', a compressed
// control archive (control.tar.gz, control.tar.xz or control.tar.zst) and a
// data archive. Extraction unwraps these layers in order:
//
//  1. parse the outer ar container,
//  2. locate the control archive member,
//  3. decompress it (gzip, xz or zstd) and unpack the embedded tar,
//  4. parse and validate the 'control' header block.
//
// Only the control archive is read; the data archive is never touched.
//
// # Features
//
//   - Extract control metadata from any io.Reader or file path.
//   - All three control archive compressions: gzip, xz, zstd.
//   - Ordered, case-preserving header access with case-insensitive lookup.
//   - Required-header validation (Package, Version, Architecture), with an
//     opt-out for tolerant callers.
//   - Streaming md5/sha1/sha256/size digests of package files.
//
// Extraction calls are independent and safe to run concurrently as long as
// each receives its own reader. Debug tracing is emitted through the
// logr.Logger found in the context, if any.
package deb
