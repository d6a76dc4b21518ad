package quiz

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// questions that must be answered before analysis can run
var requiredQuestions = []string{QuestionGender, QuestionFamilies}

const profileAccordCount = 5

// ValidateAnswer checks a submitted answer against the question definition
func ValidateAnswer(questionID string, values []string) error {
	question, ok := questionByID(questionID)
	if !ok {
		return fmt.Errorf("unknown question: %s", questionID)
	}

	if len(values) == 0 {
		return fmt.Errorf("question %s requires at least one selection", questionID)
	}

	if !question.MultiSelect && len(values) > 1 {
		return fmt.Errorf("question %s accepts a single selection", questionID)
	}

	if question.MaxChoices > 0 && len(values) > question.MaxChoices {
		return fmt.Errorf("question %s accepts at most %d selections", questionID, question.MaxChoices)
	}

	for _, value := range values {
		if !slices.ContainsFunc(question.Options, func(o Option) bool { return o.Value == value }) {
			return fmt.Errorf("invalid option %q for question %s", value, questionID)
		}
	}

	return nil
}

// MissingQuestions lists required questions absent from the answer set
func MissingQuestions(answers map[string][]string) []string {
	var missing []string

	for _, id := range requiredQuestions {
		if len(answers[id]) == 0 {
			missing = append(missing, id)
		}
	}

	return missing
}

// Analyze scores a completed answer set into an archetype and taste profile
func Analyze(answers map[string][]string) (*Analysis, error) {
	if missing := MissingQuestions(answers); len(missing) > 0 {
		return nil, fmt.Errorf("unanswered questions: %s", strings.Join(missing, ", "))
	}

	weights := accordWeights(answers)
	archetype := classify(weights)

	gender := "unisex"
	if values := answers[QuestionGender]; len(values) > 0 {
		gender = values[0]
	}

	return &Analysis{
		Archetype:     archetype,
		Gender:        gender,
		AccordWeights: weights,
		ProfileText:   buildProfileText(gender, weights, answers),
	}, nil
}

// accordWeights accumulates option weights across every answered question
func accordWeights(answers map[string][]string) map[string]float32 {
	weights := make(map[string]float32)

	for questionID, values := range answers {
		question, ok := questionByID(questionID)
		if !ok {
			continue
		}

		for _, value := range values {
			for _, option := range question.Options {
				if option.Value != value {
					continue
				}

				for accord, weight := range option.accords {
					weights[accord] += weight
				}
			}
		}
	}

	return weights
}

// buildProfileText renders the answer set as a sentence in the same register
// as fragrance documents, so profile and catalog embeddings live in one space
func buildProfileText(gender string, weights map[string]float32, answers map[string][]string) string {
	var sb strings.Builder

	sb.WriteString("A ")
	sb.WriteString(gender)
	sb.WriteString(" fragrance with ")
	sb.WriteString(strings.Join(topAccords(weights, profileAccordCount), ", "))
	sb.WriteString(" accords")

	if occasions := answers[QuestionOccasions]; len(occasions) > 0 {
		sb.WriteString(", worn for ")
		sb.WriteString(strings.Join(occasions, " and "))
	}

	if seasons := answers[QuestionSeasons]; len(seasons) > 0 {
		sb.WriteString(" in ")
		sb.WriteString(strings.Join(seasons, " and "))
	}

	if intensity := answers[QuestionIntensity]; len(intensity) > 0 {
		sb.WriteString(", with ")
		sb.WriteString(intensity[0])
		sb.WriteString(" projection")
	}

	sb.WriteString(".")

	return sb.String()
}

// topAccords returns the n heaviest accords, name-sorted on equal weight
func topAccords(weights map[string]float32, n int) []string {
	accords := make([]string, 0, len(weights))
	for accord := range weights {
		accords = append(accords, accord)
	}

	slices.SortFunc(accords, func(a, b string) int {
		if c := cmp.Compare(weights[b], weights[a]); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})

	if len(accords) > n {
		accords = accords[:n]
	}

	return accords
}
