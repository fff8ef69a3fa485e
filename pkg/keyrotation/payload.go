package keyrotation

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultImageMimeType is used when an image type cannot be determined.
const DefaultImageMimeType = "image/jpeg"

// BuildInstruction joins persona and prompt into the single instruction text sent upstream.
func BuildInstruction(persona, prompt string) string {
	return persona + "\n\nUser: " + prompt + "\n\nAI Response:"
}

func buildPayload(req Request) Payload {
	p := Payload{Instruction: BuildInstruction(req.persona, req.prompt)}
	if len(req.image) > 0 {
		p.Image = &InlineData{
			MimeType: imageMimeType(req.image, req.mimeType),
			Data:     req.image,
		}
	}
	return p
}

func imageMimeType(data []byte, declared string) string {
	if declared = strings.TrimSpace(declared); declared != "" {
		return declared
	}
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "image/") {
			return m.String()
		}
	}
	return DefaultImageMimeType
}
