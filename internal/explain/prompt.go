package explain

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a professor specializing in the student's field. You provide comprehensive academic explanations in a formal, educational tone, structured exactly as requested.`

func buildUserMessage(topic, background string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)
	if background != "" {
		fmt.Fprintf(&b, "Context: %s\n", background)
	}

	b.WriteString(`
Provide a comprehensive academic explanation of this topic:
1. An "overview": a professional 2-3 sentence executive summary.
2. "sections": an ordered list where each entry has a clear, academic
   subheading ("point", e.g. "Theoretical Framework") and a detailed
   explanation ("detail") suitable for a university-level student,
   2-3 paragraphs long.

Maintain a formal, educational tone.`)

	return b.String()
}
