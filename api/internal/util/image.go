package util

import (
	"path/filepath"
	"strings"
)

// SniffMimeHTTP detects the MIME type of an uploaded image by magic bytes.
func SniffMimeHTTP(b []byte) string {
	// JPEG: FF D8
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	// PNG
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	// GIF87a / GIF89a
	if len(b) >= 4 && b[0] == 'G' && b[1] == 'I' && b[2] == 'F' && b[3] == '8' {
		return "image/gif"
	}
	return "application/octet-stream"
}

// SniffImageFormat returns the bare format name the Gemini image part wants.
func SniffImageFormat(b []byte) string {
	switch SniffMimeHTTP(b) {
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	}
	return "jpeg"
}

var allowedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImageName reports whether the uploaded filename carries one of the
// accepted image extensions.
func AllowedImageName(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}
