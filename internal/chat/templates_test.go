package chat

import "testing"

func TestIsDevQuestion(t *testing.T) {
	tests := map[string]bool{
		"Who created you?":            true,
		"siapa pencipta kamu":         true,
		"tell me about the dev":       true,
		"hello there":                 false,
		"what is the capital of Peru": false,
	}
	for msg, want := range tests {
		if got := IsDevQuestion(msg); got != want {
			t.Errorf("IsDevQuestion(%q) = %v, want %v", msg, got, want)
		}
	}
}

func TestRender(t *testing.T) {
	got := Render("I am {{AI_NAME}} by {{DEV_NAME}}, ask {{DEV_NAME}}", "Nova", "Zed")
	if want := "I am Nova by Zed, ask Zed"; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}
