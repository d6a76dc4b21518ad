package recommend

import (
	"os"
	"strconv"
)

// loadConfig reads optional tuning from environment variables
func loadConfig() *Config {
	topK := defaultTopK
	if topKStr := os.Getenv("RECOMMEND_TOP_K"); topKStr != "" {
		if val, err := strconv.Atoi(topKStr); err == nil && val > 0 {
			topK = val
		}
	}

	return &Config{TopK: topK}
}
