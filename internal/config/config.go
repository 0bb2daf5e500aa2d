package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
)

type Config struct {
	Port                 string
	AllowedOrigins       []string
	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	RedisURL             string
	RedisPassword        string
	CacheTTL             time.Duration
	RetentionDays        int
	BoardSize            int
	MaxRequestDepth      int
	Search               bot.Options
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// CORS: localhost for development plus CSV values
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := GetEnv("ALLOWED_ORIGINS", ""); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Database Config
	dbURL := GetEnv("DATABASE_URL", GetEnv("DATABASE_URI", ""))
	if dbURL != "" {
		if u, err := url.Parse(dbURL); err == nil {
			q := u.Query()
			if q.Get("sslmode") == "" && (u.Hostname() == "localhost" || u.Hostname() == "127.0.0.1") {
				q.Set("sslmode", "disable")
				u.RawQuery = q.Encode()
				dbURL = u.String()
			}
		}
	}

	weights := bot.DefaultWeights()
	weights.Win = GetEnvAsInt("BOT_WIN_SCORE", weights.Win)
	weights.FourWindow = GetEnvAsInt("BOT_FOUR_WINDOW_SCORE", weights.FourWindow)

	AppConfig = &Config{
		Port:                 port,
		AllowedOrigins:       allowedOrigins,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		RedisURL:             GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		CacheTTL:             time.Duration(GetEnvAsInt("CACHE_TTL_MINUTES", 60)) * time.Minute,
		RetentionDays:        GetEnvAsInt("ANALYSIS_RETENTION_DAYS", 30),
		BoardSize:            GetEnvAsInt("BOARD_SIZE", domain.DefaultSize),
		MaxRequestDepth:      GetEnvAsInt("BOT_MAX_DEPTH", 9),
		Search: bot.Options{
			MaxDepth: GetEnvAsInt("BOT_DEPTH", bot.DefaultDepth),
			Pruning:  GetEnvAsBool("BOT_PRUNING", true),
			Ordering: GetEnvAsBool("BOT_ORDERING", true),
			Weights:  weights,
		},
	}

	return AppConfig
}

// Validate rejects settings that would make the engine degenerate instead of
// letting it limp along.
func (c *Config) Validate() error {
	var errs []error
	if c.Search.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("BOT_DEPTH=%d: %w", c.Search.MaxDepth, bot.ErrInvalidDepth))
	}
	if c.MaxRequestDepth < c.Search.MaxDepth {
		errs = append(errs, fmt.Errorf("BOT_MAX_DEPTH=%d is below BOT_DEPTH=%d", c.MaxRequestDepth, c.Search.MaxDepth))
	}
	if c.BoardSize < domain.MinSize || c.BoardSize > domain.MaxSize {
		errs = append(errs, fmt.Errorf("BOARD_SIZE=%d outside [%d, %d]: %w", c.BoardSize, domain.MinSize, domain.MaxSize, domain.ErrInvalidSize))
	}
	w := c.Search.Weights
	if w.Win < w.FourWindow {
		errs = append(errs, fmt.Errorf("BOT_WIN_SCORE=%d is below BOT_FOUR_WINDOW_SCORE=%d", w.Win, w.FourWindow))
	}
	if bound := w.PositionalBound(max(c.BoardSize, domain.MinSize)); w.Win <= bound {
		errs = append(errs, fmt.Errorf("BOT_WIN_SCORE=%d must exceed the positional bound %d", w.Win, bound))
	}
	if c.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_TTL_MINUTES must be positive"))
	}
	if c.RetentionDays <= 0 {
		errs = append(errs, errors.New("ANALYSIS_RETENTION_DAYS must be positive"))
	}
	return errors.Join(errs...)
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
