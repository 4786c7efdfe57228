package domain

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

// mimeByExt covers the formats the preview boundary cares about. Anything
// else falls back to application/octet-stream.
var mimeByExt = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
	".bmp":  "image/bmp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".rtf":  "application/rtf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// MimeForName returns the MIME type inferred from a file name's
// extension.
func MimeForName(name string) string {
	if m, ok := mimeByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return m
	}
	return "application/octet-stream"
}

// DataURL encodes raw bytes as a data URL with the MIME type inferred
// from the file name.
func DataURL(name string, data []byte) string {
	return "data:" + MimeForName(name) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
