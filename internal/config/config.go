package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Database   Database `yaml:"database"`
	Feeds      Feeds    `yaml:"feeds"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:3000" validate:"required"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	// WriteTimeout must cover the populate handler, which waits on two
	// remote feed fetches before responding.
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"30s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
	StaticDir    string        `yaml:"static_dir" env-default:"./static"`
}

type Database struct {
	User     string `yaml:"user" env:"DB_USER" env-default:"root"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:""`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost:3306"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"games" validate:"required"`
}

type Feeds struct {
	IOSURL     string        `yaml:"ios_url" env:"FEED_IOS_URL" env-default:"https://interview-marketing-eng-dev.s3.eu-west-1.amazonaws.com/ios.top100.json" validate:"required,url"`
	AndroidURL string        `yaml:"android_url" env:"FEED_ANDROID_URL" env-default:"https://interview-marketing-eng-dev.s3.eu-west-1.amazonaws.com/android.top100.json" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout" env:"FEED_TIMEOUT" env-default:"10s"`
}

func (db Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4,utf8&parseTime=True&loc=Local",
		db.User, db.Password, db.Host, db.Name)
}

func MustLoad() *Config {
	var (
		cfg Config
		err error
	)

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		if _, err = os.Stat(configPath); err != nil {
			log.Fatalf("config file does not exist: %s", configPath)
		}

		err = cleanenv.ReadConfig(configPath, &cfg)
	}

	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	if err = validator.New().Struct(cfg); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	return &cfg
}
