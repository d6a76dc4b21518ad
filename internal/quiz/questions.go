package quiz

// question ids referenced by handlers and stored responses
const (
	QuestionGender    = "gender"
	QuestionFamilies  = "families"
	QuestionOccasions = "occasions"
	QuestionIntensity = "intensity"
	QuestionSeasons   = "seasons"
)

// the fixed question set, in presentation order
var questions = []Question{
	{
		ID:     QuestionGender,
		Prompt: "Who will be wearing these fragrances?",
		Options: []Option{
			{Value: "men", Label: "Men's fragrances"},
			{Value: "women", Label: "Women's fragrances"},
			{Value: "unisex", Label: "Show me everything"},
		},
	},
	{
		ID:          QuestionFamilies,
		Prompt:      "Which scent families draw you in?",
		MultiSelect: true,
		MaxChoices:  3,
		Options: []Option{
			{Value: "fresh", Label: "Fresh and clean", accords: map[string]float32{"fresh": 1, "citrus": 0.6, "aquatic": 0.5}},
			{Value: "citrus", Label: "Zesty citrus", accords: map[string]float32{"citrus": 1, "fresh": 0.5}},
			{Value: "floral", Label: "Blooming florals", accords: map[string]float32{"floral": 1, "powdery": 0.4}},
			{Value: "woody", Label: "Warm woods", accords: map[string]float32{"woody": 1, "earthy": 0.5}},
			{Value: "amber", Label: "Rich amber and resins", accords: map[string]float32{"amber": 1, "spicy": 0.5}},
			{Value: "sweet", Label: "Sweet and dessert-like", accords: map[string]float32{"sweet": 1, "vanilla": 0.6, "gourmand": 0.6}},
			{Value: "spicy", Label: "Bold spices", accords: map[string]float32{"spicy": 1, "aromatic": 0.4}},
			{Value: "green", Label: "Green and herbal", accords: map[string]float32{"green": 1, "aromatic": 0.5}},
			{Value: "aquatic", Label: "Ocean air", accords: map[string]float32{"aquatic": 1, "fresh": 0.5}},
			{Value: "musky", Label: "Soft skin musk", accords: map[string]float32{"musky": 1, "powdery": 0.3}},
		},
	},
	{
		ID:          QuestionOccasions,
		Prompt:      "When do you reach for fragrance?",
		MultiSelect: true,
		Options: []Option{
			{Value: "daily", Label: "Every day", accords: map[string]float32{"fresh": 0.3, "citrus": 0.2}},
			{Value: "office", Label: "At work", accords: map[string]float32{"fresh": 0.2, "powdery": 0.2}},
			{Value: "evening", Label: "Nights out", accords: map[string]float32{"amber": 0.3, "musky": 0.3}},
			{Value: "date", Label: "Date nights", accords: map[string]float32{"sweet": 0.3, "musky": 0.3}},
			{Value: "special", Label: "Special occasions", accords: map[string]float32{"amber": 0.2, "leather": 0.2}},
		},
	},
	{
		ID:     QuestionIntensity,
		Prompt: "How noticeable should your scent be?",
		Options: []Option{
			{Value: "light", Label: "A whisper, close to the skin", accords: map[string]float32{"fresh": 0.4, "citrus": 0.3}},
			{Value: "moderate", Label: "Present but polite"},
			{Value: "strong", Label: "Fills the room", accords: map[string]float32{"amber": 0.4, "spicy": 0.3, "leather": 0.2}},
		},
	},
	{
		ID:          QuestionSeasons,
		Prompt:      "Which seasons are you shopping for?",
		MultiSelect: true,
		Options: []Option{
			{Value: "spring", Label: "Spring", accords: map[string]float32{"floral": 0.3, "green": 0.3}},
			{Value: "summer", Label: "Summer", accords: map[string]float32{"citrus": 0.4, "aquatic": 0.3}},
			{Value: "fall", Label: "Fall", accords: map[string]float32{"woody": 0.3, "spicy": 0.3}},
			{Value: "winter", Label: "Winter", accords: map[string]float32{"amber": 0.4, "vanilla": 0.3}},
		},
	},
}

// Questions returns the full question set in presentation order
func Questions() []Question {
	return questions
}

func questionByID(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}

	return Question{}, false
}
