package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config centralise la configuration du client.
type Config struct {
	AppName        string   `env:"APP_NAME"`
	HTTPPort       int      `env:"HTTP_PORT"`
	RunMode        string   `env:"RUN_MODE"`
	APIBaseURL     string   `env:"API_BASE_URL"`
	StorePath      string   `env:"STORE_PATH"`
	RequestTimeout int      `env:"REQUEST_TIMEOUT_MS"`
	UseFixtures    bool     `env:"USE_FIXTURES"`
	GuardFailOpen  bool     `env:"GUARD_FAIL_OPEN"`
	AllowOrigins   []string `env:"ALLOW_ORIGINS" envSeparator:","`
	LogLevel       string   `env:"LOG_LEVEL"`
}

// Timeout retourne le délai maximal d'une requête vers l'API.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

var (
	cfg  Config
	once sync.Once

	errAPIBaseURL = errors.New("API_BASE_URL non configuré")
)

// GetConfig retourne la configuration chargée depuis .env, app.conf puis l'environnement.
func GetConfig() Config {
	once.Do(func() {
		LoadDotEnv()
		loaded, err := LoadConfig()
		if err != nil {
			panic(err)
		}
		cfg = loaded
	})
	return cfg
}

// LoadConfig construit une Config sans passer par le singleton.
// Les valeurs de app.conf servent de défauts; les variables d'environnement les remplacent.
func LoadConfig() (Config, error) {
	c := Config{
		AppName:        confString("appname", "assistanat_client"),
		HTTPPort:       confInt("httpport", 8080),
		RunMode:        confString("runmode", "dev"),
		APIBaseURL:     confString("apibaseurl", "http://localhost:8000"),
		StorePath:      confString("storepath", "assistanat.db"),
		RequestTimeout: confInt("requesttimeoutms", 10000),
		UseFixtures:    confBool("usefixtures", false),
		GuardFailOpen:  confBool("guardfailopen", true),
		AllowOrigins:   splitList(confString("alloworigins", "http://localhost:5173")),
		LogLevel:       confString("loglevel", "info"),
	}
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	c.APIBaseURL = strings.TrimSuffix(strings.TrimSpace(c.APIBaseURL), "/")
	if c.APIBaseURL == "" {
		return Config{}, errAPIBaseURL
	}
	return c, nil
}

// LoadDotEnv charge .env.<RUN_MODE> puis .env s'ils existent.
// Les variables déjà présentes dans l'environnement ne sont pas écrasées.
func LoadDotEnv() {
	mode := strings.ToLower(strings.TrimSpace(os.Getenv("RUN_MODE")))
	files := []string{".env"}
	if mode != "" {
		files = append([]string{".env." + mode}, files...)
	}
	for _, f := range files {
		path := filepath.Clean(f)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			logs.Warn("config: lecture de %s impossible: %v", path, err)
		}
	}
}

func confString(key, def string) string {
	if val, err := beego.AppConfig.String(key); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func confInt(key string, def int) int {
	if val, err := beego.AppConfig.Int(key); err == nil {
		return val
	}
	return def
}

func confBool(key string, def bool) bool {
	if val, err := beego.AppConfig.Bool(key); err == nil {
		return val
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// BuildURL compose une URL en évitant les doubles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
