package quiz

// a quiz question presented to the client
type Question struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	MultiSelect bool     `json:"multi_select"`
	MaxChoices  int      `json:"max_choices,omitempty"`
	Options     []Option `json:"options"`
}

// a selectable answer; accord weights drive scoring and stay server-side
type Option struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	accords map[string]float32
}

// a named scent personality derived from answers
type Archetype struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`

	accords []string
}

// the outcome of scoring a completed answer set
type Analysis struct {
	Archetype     Archetype
	Gender        string
	AccordWeights map[string]float32
	ProfileText   string
}
