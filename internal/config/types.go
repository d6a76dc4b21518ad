package config

type Config struct {
	DatabaseURL string
	RedisURL    string
	VoyageKey   string
	OpenAIKey   string
	JWTSecret   string
	Environment string
}

type Flags struct {
	Path      string
	Clear     bool
	BatchSize int
}
