package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	// ProfileDefaults is the bootstrap identity used when the profile is
	// updated before it has ever been created. The values are configuration,
	// not business logic: override any of them per deployment.
	ProfileDefaults struct {
		Name             string `mapstructure:"name"`
		Greeting         string `mapstructure:"greeting"`
		Email            string `mapstructure:"email"`
		LinkedinURL      string `mapstructure:"linkedin_url"`
		WhatsappNumber   string `mapstructure:"whatsapp_number"`
		AboutDescription string `mapstructure:"about_description"`
	} `mapstructure:"profile_defaults"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	err = godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	viper.AddConfigPath(".")
	for _, p := range paths {
		viper.AddConfigPath(p)
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")

	viper.BindEnv("profile_defaults.name", "PROFILE_DEFAULT_NAME")
	viper.BindEnv("profile_defaults.greeting", "PROFILE_DEFAULT_GREETING")
	viper.BindEnv("profile_defaults.email", "PROFILE_DEFAULT_EMAIL")
	viper.BindEnv("profile_defaults.linkedin_url", "PROFILE_DEFAULT_LINKEDIN_URL")
	viper.BindEnv("profile_defaults.whatsapp_number", "PROFILE_DEFAULT_WHATSAPP_NUMBER")
	viper.BindEnv("profile_defaults.about_description", "PROFILE_DEFAULT_ABOUT_DESCRIPTION")

	viper.SetDefault("app.port", "2022")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("profile_defaults.name", "mufti")
	viper.SetDefault("profile_defaults.greeting", "Hello! I'm mufti.")
	viper.SetDefault("profile_defaults.email", "muftipurwa4@gmail.com")
	viper.SetDefault("profile_defaults.linkedin_url", "https://linkedin.com/in/mufti")
	viper.SetDefault("profile_defaults.whatsapp_number", "+1234567890")
	viper.SetDefault("profile_defaults.about_description", "I have a background in fine arts, which I later applied in IT support. This experience sparked my passion for web development, where I now focus on blending creativity with technology.")

	err = viper.Unmarshal(&cfg)
	return
}
