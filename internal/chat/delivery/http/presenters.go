package http

import (
	"central-gpt/internal/chat"
	"central-gpt/pkg/response"
)

type sendReq struct {
	Message string `json:"message"`
	// Image is raw base64 or a data URL.
	Image string `json:"image"`
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{Message: r.Message, Image: r.Image}
}

type sendResp struct {
	Reply     string            `json:"reply"`
	Source    string            `json:"source"`
	AIName    string            `json:"ai_name"`
	Timestamp response.DateTime `json:"timestamp"`
}

func newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		Reply:     out.Reply,
		Source:    string(out.Source),
		AIName:    out.AIName,
		Timestamp: response.DateTime(out.Timestamp),
	}
}

type diagnosticResp struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func newDiagnosticResp(d chat.Diagnostic) diagnosticResp {
	return diagnosticResp{Code: string(d.Code), Title: d.Title, Message: d.Message}
}

type entryResp struct {
	Username    string            `json:"username"`
	AIName      string            `json:"ai_name"`
	UserMessage string            `json:"user_message"`
	AIResponse  string            `json:"ai_response"`
	HasImage    bool              `json:"has_image"`
	Failed      bool              `json:"failed"`
	Timestamp   response.DateTime `json:"timestamp"`
}

type historyResp struct {
	Entries []entryResp `json:"entries"`
}

func newHistoryResp(entries []chat.Entry) historyResp {
	out := make([]entryResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResp{
			Username:    e.Username,
			AIName:      e.AIName,
			UserMessage: e.UserMessage,
			AIResponse:  e.AIResponse,
			HasImage:    e.HasImage,
			Failed:      e.Failed,
			Timestamp:   response.DateTime(e.Timestamp),
		})
	}
	return historyResp{Entries: out}
}
