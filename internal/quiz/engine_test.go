package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAnswer(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		values     []string
		wantErr    bool
	}{
		{
			name:       "valid single select",
			questionID: QuestionGender,
			values:     []string{"men"},
		},
		{
			name:       "valid multi select",
			questionID: QuestionFamilies,
			values:     []string{"fresh", "woody"},
		},
		{
			name:       "unknown question",
			questionID: "favorite_color",
			values:     []string{"blue"},
			wantErr:    true,
		},
		{
			name:       "empty values",
			questionID: QuestionGender,
			values:     nil,
			wantErr:    true,
		},
		{
			name:       "multiple values on single select",
			questionID: QuestionGender,
			values:     []string{"men", "women"},
			wantErr:    true,
		},
		{
			name:       "too many choices",
			questionID: QuestionFamilies,
			values:     []string{"fresh", "citrus", "floral", "woody"},
			wantErr:    true,
		},
		{
			name:       "invalid option",
			questionID: QuestionFamilies,
			values:     []string{"metallic"},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(tt.questionID, tt.values)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeRequiresGenderAndFamilies(t *testing.T) {
	_, err := Analyze(map[string][]string{
		QuestionGender: {"women"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), QuestionFamilies)
}

func TestAnalyzeFreshAnswers(t *testing.T) {
	analysis, err := Analyze(map[string][]string{
		QuestionGender:    {"men"},
		QuestionFamilies:  {"fresh", "citrus", "aquatic"},
		QuestionOccasions: {"daily"},
		QuestionIntensity: {"light"},
		QuestionSeasons:   {"summer"},
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh_minimalist", analysis.Archetype.ID)
	assert.Equal(t, "men", analysis.Gender)
	assert.Greater(t, analysis.AccordWeights["citrus"], analysis.AccordWeights["amber"])
}

func TestAnalyzeAmberAnswers(t *testing.T) {
	analysis, err := Analyze(map[string][]string{
		QuestionGender:    {"women"},
		QuestionFamilies:  {"amber", "sweet", "spicy"},
		QuestionOccasions: {"evening", "special"},
		QuestionIntensity: {"strong"},
		QuestionSeasons:   {"winter"},
	})

	require.NoError(t, err)
	assert.Equal(t, "amber_enigma", analysis.Archetype.ID)
}

func TestClassifyTieBreaksByDefinitionOrder(t *testing.T) {
	// equal pull toward fresh_minimalist and woodland_wanderer
	weights := map[string]float32{
		"fresh": 1,
		"woody": 1,
	}

	archetype := classify(weights)

	assert.Equal(t, "fresh_minimalist", archetype.ID)
}

func TestClassifyEmptyWeights(t *testing.T) {
	archetype := classify(map[string]float32{})

	// nothing scores, so the first archetype wins
	assert.Equal(t, archetypes[0].ID, archetype.ID)
}

func TestBuildProfileText(t *testing.T) {
	analysis, err := Analyze(map[string][]string{
		QuestionGender:    {"men"},
		QuestionFamilies:  {"woody"},
		QuestionOccasions: {"office"},
		QuestionIntensity: {"moderate"},
		QuestionSeasons:   {"fall"},
	})

	require.NoError(t, err)
	assert.Contains(t, analysis.ProfileText, "A men fragrance")
	assert.Contains(t, analysis.ProfileText, "woody")
	assert.Contains(t, analysis.ProfileText, "worn for office")
	assert.Contains(t, analysis.ProfileText, "in fall")
	assert.Contains(t, analysis.ProfileText, "moderate projection")
}

func TestTopAccordsDeterministicOrder(t *testing.T) {
	weights := map[string]float32{
		"woody": 0.5,
		"amber": 0.5,
		"fresh": 1.0,
	}

	top := topAccords(weights, 3)

	assert.Equal(t, []string{"fresh", "amber", "woody"}, top)
}

func TestQuestionsHaveUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)

	for _, q := range Questions() {
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Options)
	}
}
