package usecase

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"central-gpt/internal/chat"
	"central-gpt/pkg/keyrotation"
)

// decodeImage accepts raw base64 or a base64 data URL and returns the bytes
// with their image mime type. Undetectable raw payloads are sent as JPEG.
func decodeImage(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)

	var declared string
	if strings.HasPrefix(raw, "data:") {
		header, payload, ok := strings.Cut(raw, ",")
		if !ok {
			return nil, "", chat.ErrInvalidImage
		}
		meta, isBase64 := strings.CutSuffix(strings.TrimPrefix(header, "data:"), ";base64")
		if !isBase64 {
			return nil, "", chat.ErrInvalidImage
		}
		declared = strings.ToLower(meta)
		raw = payload
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return nil, "", chat.ErrInvalidImage
		}
	}
	if len(data) == 0 {
		return nil, "", chat.ErrInvalidImage
	}

	if declared != "" {
		if !strings.HasPrefix(declared, "image/") {
			return nil, "", chat.ErrInvalidImage
		}
		return data, declared, nil
	}

	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return data, m.String(), nil
		}
	}
	return data, keyrotation.DefaultImageMimeType, nil
}
