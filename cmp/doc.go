// Package cmp decodes and encodes CMP images: a big-endian binary grid of
// code points rendered as text cells.
//
// Layout:
//
//	0-1   magic "CM"
//	2-3   width (uint16)
//	4-5   height (uint16)
//	6     flags: bit0 colored, bit1 utf16, bit2 utf32, bit3 transparent
//	7-    transparency marker, 1/2/4 bytes (plain/utf16/utf32), only if bit3
//	16-   width*height code points, 2 (utf16) or 4 (utf32) bytes each
//
// Only monochrome utf16 and utf32 payloads are implemented. Colored images and
// single-byte payloads are rejected with *NotSupportedError.
package cmp
