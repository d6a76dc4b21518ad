package insights

import (
	"fmt"
	"strings"
)

// assembles the system prompt for the insight writer
func buildSystemPrompt() string {
	return `You are a fragrance consultant writing a short, personal note for someone
who just finished a scent preference quiz.

Guidelines:
- Write 2-3 short paragraphs, warm but not gushing
- Explain what their archetype says about their taste in plain language
- Mention at most three of the recommended fragrances by name, and say in one
  clause why each fits
- Suggest trying samples before committing to a full bottle
- No markdown headings, no bullet lists, no emoji
- Never invent fragrances that are not in the provided list
`
}

// renders the quiz outcome as the user message
func buildUserPrompt(req Request) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Archetype: %s (%s)\n", req.ArchetypeName, req.ArchetypeTagline))
	builder.WriteString(fmt.Sprintf("Taste profile: %s\n\n", req.ProfileText))
	builder.WriteString("Recommended fragrances:\n")

	for i, rec := range req.Recommendations {
		f := rec.Fragrance
		builder.WriteString(fmt.Sprintf("%d. %s by %s", i+1, f.Name, f.BrandName))

		if len(f.Accords) > 0 {
			builder.WriteString(fmt.Sprintf(" (accords: %s)", strings.Join(f.Accords, ", ")))
		}

		builder.WriteString("\n")
	}

	return builder.String()
}
