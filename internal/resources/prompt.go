package resources

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an academic librarian who finds authoritative, current study resources using live web search and summarizes why they are relevant.`

func buildUserMessage(topic, courseContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Find authoritative academic resources, certification courses, and high-quality educational content for learning %q.\n", topic)
	if courseContext != "" {
		fmt.Fprintf(&b, "Context: The student is studying %s.\n", courseContext)
	}

	b.WriteString(`
Prioritize:
1. University-backed content (MIT OpenCourseWare, Harvard Online, etc.)
2. Professional Certifications (Coursera, edX, Google Career Certificates)
3. Reputable technical documentation or tutorials.

Return a professional summary of why these resources are relevant.`)

	return b.String()
}
