package constants

import "strings"

// ImageExtensions holds the file extensions treated as scanned DTR images.
var ImageExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"bmp":  {},
	"tif":  {},
	"tiff": {},
	"heic": {},
	"heif": {},
}

// TextExtensions holds the extensions treated as already-recognized text.
var TextExtensions = map[string]struct{}{
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageExt reports whether ext names a supported image document.
func IsImageExt(ext string) bool {
	_, ok := ImageExtensions[NormalizeExt(ext)]
	return ok
}

// IsTextExt reports whether ext names a plain-text document.
func IsTextExt(ext string) bool {
	_, ok := TextExtensions[NormalizeExt(ext)]
	return ok
}
