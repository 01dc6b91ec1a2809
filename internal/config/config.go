package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	GRPCPort           string
	HTTPPort           string
	LandmarkServiceURL string
	CORSOrigins        string

	MaxConnections   int
	MaxMessageSizeMB int
	LogLevel         string
	Environment      string

	// DBPath is the SQLite location for the within-run session store.
	// The default ":memory:" keeps nothing across restarts.
	DBPath string

	// Engine defaults; the runtime-mutable part lives in Settings.
	AlertThresholdFrames int
	AlertCooldown        time.Duration
	AlarmEnabled         bool
	AlarmVolume          float64
	CustomAlarmPath      string
	EnhancementEnabled   bool
	CameraTargetFPS      float64
}

func (c *Config) IsDev() bool {
	return c.Environment == "dev"
}

// InitialSettings builds the first runtime settings snapshot from the
// environment-derived defaults.
func (c *Config) InitialSettings() Settings {
	return Settings{
		AlarmEnabled:         c.AlarmEnabled,
		AlarmVolume:          c.AlarmVolume,
		CustomAlarmPath:      c.CustomAlarmPath,
		EnhancementEnabled:   c.EnhancementEnabled,
		AlertThresholdFrames: c.AlertThresholdFrames,
		AlertCooldown:        c.AlertCooldown,
	}
}

func LoadConfig() *Config {
	// .env is optional; system environment wins when the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		GRPCPort:             getEnv("GRPC_PORT", "50051"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LandmarkServiceURL:   getEnv("LANDMARK_SERVICE_URL", "localhost:9000"),
		CORSOrigins:          getEnv("CORS_ORIGINS", "*"),
		MaxConnections:       getEnvInt("MAX_CONNECTIONS", 1000),
		MaxMessageSizeMB:     getEnvInt("MAX_MESSAGE_SIZE_MB", 50),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		Environment:          getEnv("ENVIRONMENT", "production"),
		DBPath:               getEnv("DB_PATH", ":memory:"),
		AlertThresholdFrames: getEnvInt("ALERT_THRESHOLD_FRAMES", 30),
		AlertCooldown:        getEnvDuration("ALERT_COOLDOWN_SECONDS", 5*time.Second),
		AlarmEnabled:         getEnvBool("ALARM_ENABLED", true),
		AlarmVolume:          getEnvFloat("ALARM_VOLUME", 0.7),
		CustomAlarmPath:      getEnv("CUSTOM_ALARM_PATH", ""),
		EnhancementEnabled:   getEnvBool("ENHANCEMENT_ENABLED", true),
		CameraTargetFPS:      getEnvFloat("CAMERA_TARGET_FPS", 30),
	}

	if cfg.AlertThresholdFrames <= 0 {
		fmt.Println("WARNING: ALERT_THRESHOLD_FRAMES must be positive, using 30")
		cfg.AlertThresholdFrames = 30
	}
	if cfg.AlarmVolume < 0 || cfg.AlarmVolume > 1 {
		fmt.Println("WARNING: ALARM_VOLUME must be in [0,1], using 0.7")
		cfg.AlarmVolume = 0.7
	}

	return cfg
}

func getEnv(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if floatVal, err := strconv.ParseFloat(v, 64); err == nil {
			return floatVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}
	return defaultVal
}

// getEnvDuration reads a float number of seconds.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return defaultVal
}
