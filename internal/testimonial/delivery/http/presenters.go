package http

import (
	"central-gpt/internal/testimonial"
	"central-gpt/pkg/response"
)

type createReq struct {
	Text  string `json:"text" binding:"required"`
	Image string `json:"image"`
}

func (r createReq) toInput() testimonial.CreateInput {
	return testimonial.CreateInput{Text: r.Text, Image: r.Image}
}

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type itemResp struct {
	ID        string            `json:"id"`
	Text      string            `json:"text"`
	Image     string            `json:"image,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newItemResp(t testimonial.Testimonial) itemResp {
	return itemResp{
		ID:        t.ID,
		Text:      t.Text,
		Image:     t.Image,
		CreatedAt: response.DateTime(t.CreatedAt),
	}
}

type listResp struct {
	Testimonials []itemResp `json:"testimonials"`
}

func newListResp(items []testimonial.Testimonial) listResp {
	out := make([]itemResp, 0, len(items))
	for _, t := range items {
		out = append(out, newItemResp(t))
	}
	return listResp{Testimonials: out}
}
