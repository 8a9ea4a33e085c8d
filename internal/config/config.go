package config

import (
	"os"
	"strconv"
)

// Backend names accepted in DATA_PROVIDER.
const (
	BackendMemory   = "memory"
	BackendMongo    = "mongo"
	BackendSupabase = "supabase"
)

// Config is the environment surface of the service, read once at startup.
// Nothing watches for changes afterwards.
type Config struct {
	Port string

	ProviderBackend string
	MongoURI        string
	MongoDatabase   string

	RabbitURI      string
	RabbitExchange string

	// Quiz behavior flags. RevealAnswers is practice mode: correctness and
	// explanation come back with each answer instead of only at the end.
	RevealAnswers   bool
	AutosaveEnabled bool
}

// Load reads the environment. Callers run godotenv first if they want .env
// support.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		ProviderBackend: getEnv("DATA_PROVIDER", BackendMemory),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   getEnv("MONGO_DB", "study_service"),
		RabbitURI:       os.Getenv("RABBITMQ_URI"),
		RabbitExchange:  os.Getenv("RABBITMQ_EXCHANGE"),
		RevealAnswers:   getEnvBool("QUIZ_REVEAL_ANSWERS", true),
		AutosaveEnabled: getEnvBool("QUIZ_AUTOSAVE", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
