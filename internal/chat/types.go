package chat

import "time"

// Source names who produced a reply.
type Source string

const (
	SourceGemini   Source = "gemini"
	SourceDeepseek Source = "deepseek"
	SourceCanned   Source = "canned"
)

type SendInput struct {
	Message string
	// Image is raw base64 or a data URL such as data:image/png;base64,...
	Image string
}

type SendOutput struct {
	Reply     string
	Source    Source
	AIName    string
	Timestamp time.Time
}

// Entry is one recorded conversation turn. Failed turns carry the error text
// in AIResponse prefixed with "ERROR: ".
type Entry struct {
	Username    string
	AIName      string
	UserMessage string
	AIResponse  string
	HasImage    bool
	Failed      bool
	Timestamp   time.Time
}

// DiagnosticCode groups generation failures for the user-facing message.
type DiagnosticCode string

const (
	DiagnosticRateLimit     DiagnosticCode = "rate_limit"
	DiagnosticKeyConfig     DiagnosticCode = "key_config"
	DiagnosticNotConfigured DiagnosticCode = "not_configured"
	DiagnosticSystem        DiagnosticCode = "system"
)

// Diagnostic is a failure explained for the person at the terminal.
type Diagnostic struct {
	Code    DiagnosticCode
	Title   string
	Message string
}
