package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	JWTExpiresMin int

	SuperuserEmail     string
	SuperuserPassword  string
	SuperuserFirstName string
	SuperuserLastName  string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	CareersInbox string

	NATSURL        string
	AllowedOrigins string
	TemplatesDir   string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "30"))
	smtpPort, _ := strconv.Atoi(get("SMTP_PORT", "587"))
	return Config{
		AppPort:       get("APP_PORT", "8080"),
		DBHost:        get("DB_HOST", "localhost"),
		DBPort:        get("DB_PORT", "5432"),
		DBUser:        get("DB_USER", "postgres"),
		DBPassword:    get("DB_PASSWORD", ""),
		DBName:        get("DB_NAME", "seven_healer"),
		JWTSecret:     must("JWT_SECRET"),
		JWTExpiresMin: expires,

		SuperuserEmail:     must("SUPERUSER_EMAIL"),
		SuperuserPassword:  must("SUPERUSER_PASSWORD"),
		SuperuserFirstName: get("SUPERUSER_FIRST_NAME", "Site"),
		SuperuserLastName:  get("SUPERUSER_LAST_NAME", "Admin"),

		SMTPHost:     get("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     smtpPort,
		SMTPUsername: get("SMTP_USERNAME", ""),
		SMTPPassword: get("SMTP_PASSWORD", ""),
		CareersInbox: get("CAREERS_INBOX", get("SMTP_USERNAME", "")),

		NATSURL:        get("NATS_URL", "nats://localhost:4222"),
		AllowedOrigins: get("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		TemplatesDir:   get("TEMPLATES_DIR", "templates"),
	}
}

func (c Config) DatabaseURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort + "/" + c.DBName + "?sslmode=disable"
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
