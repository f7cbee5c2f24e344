package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/phoopyae1/OSS/pkg/auth"
	"github.com/phoopyae1/OSS/pkg/store"
	"github.com/phoopyae1/OSS/pkg/types"
)

// Options contains command-line configuration options for the portal server.
type Options struct {
	ConfigPath  string
	Port        string
	DatabaseDSN string
}

// NewOptions parses command-line flags and returns a new Options instance.
func NewOptions() *Options {
	opts := &Options{}

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to config file")
	flag.StringVar(&opts.Port, "port", "8080", "Port to listen on")
	flag.StringVar(&opts.DatabaseDSN, "dsn", "", "Database DSN, overrides the config file")
	flag.Parse()

	return opts
}

// Validate checks that all required options are provided and valid.
func (o *Options) Validate() error {
	if o.ConfigPath == "" {
		return errors.New("config path is required (use --config flag)")
	}

	if _, err := os.Stat(o.ConfigPath); os.IsNotExist(err) {
		return errors.New("config file does not exist: " + o.ConfigPath)
	}

	if o.Port == "" {
		return errors.New("port cannot be empty")
	}

	return nil
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

func loadConfig(log *logrus.Logger, configPath string) *types.Config {
	log.Infof("Loading config from %s", configPath)

	configFile, err := os.ReadFile(configPath)
	if err != nil {
		log.WithFields(logrus.Fields{
			"config_path": configPath,
			"error":       err,
		}).Fatal("Failed to read config file")
	}

	var config types.Config
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		log.WithFields(logrus.Fields{
			"config_path": configPath,
			"error":       err,
		}).Fatal("Failed to parse config file")
	}

	if config.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret must be set in the config file")
	}
	if config.Database.Driver == "" {
		config.Database.Driver = store.DriverPostgres
	}
	if config.Admin.Username == "" {
		config.Admin.Username = "admin"
	}

	return &config
}

func tokenTTL(log *logrus.Logger, config *types.Config) time.Duration {
	if config.Auth.TokenTTL == "" {
		return 24 * time.Hour
	}
	ttl, err := time.ParseDuration(config.Auth.TokenTTL)
	if err != nil {
		log.WithFields(logrus.Fields{
			"token_ttl": config.Auth.TokenTTL,
			"error":     err,
		}).Fatal("Failed to parse auth.token_ttl")
	}
	return ttl
}

func main() {
	log := setupLogger()
	opts := NewOptions()

	if err := opts.Validate(); err != nil {
		log.WithField("error", err).Fatal("Invalid command-line options")
	}

	config := loadConfig(log, opts.ConfigPath)

	dsn := config.Database.DSN
	if opts.DatabaseDSN != "" {
		dsn = opts.DatabaseDSN
	}

	st, err := store.Open(config.Database.Driver, dsn, log)
	if err != nil {
		log.WithField("error", err).Fatal("Failed to connect to database")
	}

	if config.Admin.Password != "" {
		if err := st.EnsureAdmin(config.Admin.Username, config.Admin.Password, log); err != nil {
			log.WithField("error", err).Fatal("Failed to seed admin user")
		}
	}

	tokens := auth.NewTokens(config.Auth.JWTSecret, tokenTTL(log, config))
	server := NewServer(st, tokens, log)

	addr := ":" + opts.Port
	if err := server.Start(addr); err != nil {
		log.WithFields(logrus.Fields{
			"address": addr,
			"error":   err,
		}).Fatal("Server failed to start")
	}
}
