package repository

type CreateTestimonialOptions struct {
	ID    string
	Text  string
	Image string
}

type ListTestimonialsOptions struct {
	Limit int
}
