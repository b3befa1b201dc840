package chat

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Attachment is a single inline blob sent alongside a user turn.
type Attachment struct {
	Data     string // base64 payload, no data-URI prefix
	MimeType string
}

// LoadAttachment reads a local file and prepares it for inline submission.
// The MIME type comes from the extension when recognizable, otherwise from
// content sniffing.
func LoadAttachment(path string) (*Attachment, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read attachment: %w", err)
	}

	mimeType := mimeTypeFor(path, raw)

	return &Attachment{
		Data:     base64.StdEncoding.EncodeToString(raw),
		MimeType: mimeType,
	}, filepath.Base(path), nil
}

// DataURI renders the attachment as a data URI for transcript storage.
func (a *Attachment) DataURI() string {
	return "data:" + a.MimeType + ";base64," + a.Data
}

// IsImage reports whether the attachment is an image.
func (a *Attachment) IsImage() bool {
	return strings.HasPrefix(a.MimeType, "image/")
}

// SplitDataURI strips the "data:<mime>;base64," prefix from a data URI,
// returning the raw base64 payload and the MIME type. A bare base64 string
// passes through unchanged with an empty MIME type.
func SplitDataURI(uri string) (data, mimeType string) {
	if !strings.HasPrefix(uri, "data:") {
		return uri, ""
	}
	rest := strings.TrimPrefix(uri, "data:")
	comma := strings.IndexByte(rest, ',')
	if comma < 0 {
		return uri, ""
	}
	meta := rest[:comma]
	data = rest[comma+1:]
	mimeType = strings.TrimSuffix(meta, ";base64")
	return data, mimeType
}

func mimeTypeFor(path string, raw []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	}
	return http.DetectContentType(raw)
}
