package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string
	StaticDir       string
	StrictInput     bool
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
	Risk            RiskConfig
	Diet            DietConfig
}

// RiskConfig carries the classifier thresholds. The defaults reproduce the
// heuristic used to label the synthetic training data.
type RiskConfig struct {
	AgeThreshold       int
	BPThreshold        int
	CholThreshold      int
	ChestPainThreshold int
	Cutoff             int
}

// DietConfig carries the attribute bands that refine recommendations.
type DietConfig struct {
	AgeBand  int
	CholBand int
	BPBand   int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "5000"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		StaticDir:       getEnv("STATIC_DIR", ""),
		StrictInput:     getEnvBool("STRICT_INPUT", false),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Risk: RiskConfig{
			AgeThreshold:       getEnvInt("RISK_AGE_THRESHOLD", 50),
			BPThreshold:        getEnvInt("RISK_BP_THRESHOLD", 140),
			CholThreshold:      getEnvInt("RISK_CHOL_THRESHOLD", 240),
			ChestPainThreshold: getEnvInt("RISK_CHEST_PAIN_THRESHOLD", 1),
			Cutoff:             getEnvInt("RISK_CUTOFF", 5),
		},
		Diet: DietConfig{
			AgeBand:  getEnvInt("DIET_AGE_BAND", 50),
			CholBand: getEnvInt("DIET_CHOL_BAND", 200),
			BPBand:   getEnvInt("DIET_BP_BAND", 130),
		},
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid float %q, using %g", key, raw, def)
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("config %s invalid bool %q, using %t", key, raw, def)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config %s invalid duration %q, using %s", key, raw, def)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
