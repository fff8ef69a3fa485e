package chat

import "strings"

// Placeholders substituted into persona and dev-info templates.
const (
	PlaceholderAIName  = "{{AI_NAME}}"
	PlaceholderDevName = "{{DEV_NAME}}"
)

const (
	DefaultPersonaTemplate = "You are " + PlaceholderAIName + ", a sharp and friendly AI assistant built by " + PlaceholderDevName + ". " +
		"Reply in the same language the user writes in. Keep answers clear and direct, use code blocks for code, " +
		"and never claim to have been created by anyone other than " + PlaceholderDevName + "."

	DefaultDevInfoTemplate = "I am " + PlaceholderAIName + ". I was designed, built and am maintained by " + PlaceholderDevName + ". " +
		"Any questions about this system can be directed to " + PlaceholderDevName + "."
)

var devTriggers = []string{"dev", "siapa pencipta", "created you", "who created"}

// IsDevQuestion reports whether message asks who built the assistant.
func IsDevQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, t := range devTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// Render fills the name placeholders in tmpl.
func Render(tmpl, aiName, devName string) string {
	return strings.NewReplacer(PlaceholderAIName, aiName, PlaceholderDevName, devName).Replace(tmpl)
}
