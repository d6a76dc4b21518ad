package insights

import (
	"fmt"
	"strings"
)

// buildFallbackText renders a deterministic insight when no generator is
// available. Same shape as the AI version, just assembled from the data.
func buildFallbackText(req Request) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("You matched %s: %s.", req.ArchetypeName, strings.ToLower(req.ArchetypeTagline)))

	if len(req.Recommendations) > 0 {
		first := req.Recommendations[0].Fragrance
		builder.WriteString(fmt.Sprintf(" Based on your answers, a great place to start is %s by %s", first.Name, first.BrandName))

		if len(first.Accords) > 0 {
			builder.WriteString(fmt.Sprintf(", built around %s notes", joinAccords(first.Accords)))
		}

		builder.WriteString(".")

		if len(req.Recommendations) > 1 {
			second := req.Recommendations[1].Fragrance
			builder.WriteString(fmt.Sprintf(" If you want something a little different, try %s by %s.", second.Name, second.BrandName))
		}
	}

	builder.WriteString(" Samples are the smart way in: wear each for a full day before deciding on a bottle.")

	return builder.String()
}

// joinAccords renders up to three accords as a natural phrase
func joinAccords(accords []string) string {
	if len(accords) > 3 {
		accords = accords[:3]
	}

	switch len(accords) {
	case 1:
		return accords[0]
	case 2:
		return accords[0] + " and " + accords[1]
	default:
		return strings.Join(accords[:len(accords)-1], ", ") + " and " + accords[len(accords)-1]
	}
}
