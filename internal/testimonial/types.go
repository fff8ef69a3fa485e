package testimonial

import "time"

// MaxImageBytes caps the decoded size of a testimonial screenshot.
const MaxImageBytes = 2 << 20

// Testimonial is a user quote shown on the public landing screen.
type Testimonial struct {
	ID        string
	Text      string
	Image     string // data URL, empty when no picture was attached
	CreatedAt time.Time
}

type CreateInput struct {
	Text  string
	Image string
}

type ListInput struct {
	Limit int
}
