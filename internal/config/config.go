package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
		// Public URL of the frontend, used for links in emails.
		BaseURL string `yaml:"base_url"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Scanner struct {
		// Hour of day (UTC) the daily credential scan runs.
		RunHourUTC int `yaml:"run_hour_utc"`
	} `yaml:"scanner"`

	// Bootstrap admin credentials; seeding is skipped when empty.
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment
// variables when DATABASE_URL is set (test and container deploys).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")
	jwtSecret := os.Getenv("JWT_SECRET")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		AppConfig = &cfg
		return
	}

	log.Println("Loading configuration from environment variables")

	cfg.Database.DSN = dbURL
	cfg.Server.Env = serverEnv
	cfg.Server.Port, _ = strconv.Atoi(portStr)
	cfg.JWT.Secret = jwtSecret
	cfg.JWT.TTL = 60

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("SMTP_PORT"))
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	cfg.Email.FromEmail = os.Getenv("FROM_EMAIL")
	cfg.Email.FromName = "McCare Global ATS"
	cfg.Email.TemplatesDir = "templates"

	cfg.Scanner.RunHourUTC = 6

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
