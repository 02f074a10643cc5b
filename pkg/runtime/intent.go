package runtime

import (
	"strings"

	"github.com/opencane/edged/pkg/protocol"
)

// taskIntentPrefixes are transcript openers that signal a delegated errand
// rather than a conversational question.
var taskIntentPrefixes = []string{
	"帮我",
	"请帮我",
	"替我",
	"请替我",
	"帮我去",
	"帮我查",
	"帮我预约",
	"帮我挂号",
	"帮我订",
	"帮我买",
}

var taskIntentKeywords = []string{
	"help me",
	"book",
	"reserve",
	"register",
	"schedule",
	"order",
}

// KeywordIntentClassifier routes transcripts to the digital task service on
// an explicit payload marker or a keyword match. The zero value uses the
// built-in prefix and keyword lists.
type KeywordIntentClassifier struct {
	ExtraPrefixes []string
	ExtraKeywords []string
}

// IsDigitalTask implements IntentClassifier.
func (c *KeywordIntentClassifier) IsDigitalTask(transcript string, payload map[string]any) bool {
	if strings.ToLower(strings.TrimSpace(protocol.PayloadString(payload, "intent"))) == "digital_task" {
		return true
	}
	if protocol.PayloadBool(payload, false, "digital_task") {
		return true
	}
	text := strings.ToLower(strings.TrimSpace(transcript))
	if text == "" {
		return false
	}
	for _, prefix := range append(taskIntentPrefixes, c.ExtraPrefixes...) {
		if strings.HasPrefix(text, strings.ToLower(prefix)) {
			return true
		}
	}
	for _, keyword := range append(taskIntentKeywords, c.ExtraKeywords...) {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
