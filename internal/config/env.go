package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AIAPIKey       string
	GenModel       string
	UploadDir      string
	AudioDir       string
	MaxUploadBytes int64
	OCRLanguage    string
	TTSBaseURL     string
	TTSLanguage    string
	AwsAccessKey   string
	AwsSecretKey   string
	AwsRegion      string
	BucketName     string
	BatchWorkers   int
	LogLevel       string
	LogFormat      string
}

// LoadConfig loads the environment variables and return config
func LoadConfig() *Config {

	_ = godotenv.Load()

	return &Config{
		AIAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GenModel:       getEnv("GEN_MODEL", "gemini-1.5-flash"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AudioDir:       getEnv("AUDIO_DIR", "static/audio"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 16*1024*1024)),
		OCRLanguage:    getEnv("OCR_LANGUAGE", "eng"),
		TTSBaseURL:     getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
		TTSLanguage:    getEnv("TTS_LANGUAGE", "en"),
		AwsAccessKey:   getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey:   getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:      getEnv("AWS_REGION", "us-east-2"),
		BucketName:     getEnv("BUCKET_NAME", ""),
		BatchWorkers:   getEnvInt("BATCH_WORKERS", 4),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
	}
}

// ObjectStorageEnabled reports whether enough AWS settings are present to talk to S3.
func (c *Config) ObjectStorageEnabled() bool {
	return c.AwsAccessKey != "" && c.AwsSecretKey != "" && c.BucketName != ""
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("not an int, using default")
		return def
	}
	return n
}
