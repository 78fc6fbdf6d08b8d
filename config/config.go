// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDBDrivers = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.public_url", "host_public_url")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.expires_in", "jwt_expires_in")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.user", "mail_user")
	v.BindEnv("mail.password", "mail_password")
	v.BindEnv("mail.from", "mail_from")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.local_dir", "storage_local_dir")
	v.BindEnv("storage.s3.endpoint", "storage_s3_endpoint")
	v.BindEnv("storage.s3.region", "storage_s3_region")
	v.BindEnv("storage.s3.bucket", "storage_s3_bucket")
	v.BindEnv("storage.s3.access_key_id", "storage_s3_access_key_id")
	v.BindEnv("storage.s3.secret_access_key", "storage_s3_secret_access_key")
	v.BindEnv("storage.s3.public_url", "storage_s3_public_url")

	v.BindEnv("upload.max_size", "upload_max_size")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 4000)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "contacts.db")

	v.SetDefault("jwt.expires_in", "50m")

	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "admin@example.com")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_dir", "public/avatars")

	v.SetDefault("upload.max_size", 5)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
		// No config.toml is fine, envs and defaults cover everything
	}

	if v.GetString("host.public_url") == "" {
		v.Set("host.public_url", fmt.Sprintf("http://%s:%d", v.GetString("host.domain"), v.GetInt("host.port")))
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDBDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetDuration("jwt.expires_in") <= 0 {
		return errors.New("jwt.expires_in must be a positive duration")
	}

	switch v.GetString("storage.type") {
	case "s3":
		if v.GetString("storage.s3.bucket") == "" {
			return errors.New("bucket can't be empty")
		}
		if v.GetString("storage.s3.access_key_id") == "" {
			return errors.New("access key id can't be empty")
		}
		if v.GetString("storage.s3.secret_access_key") == "" {
			return errors.New("secret access key can't be empty")
		}
		if v.GetString("storage.s3.public_url") == "" {
			return errors.New("s3 public url can't be empty")
		}
	case "local":
		if v.GetString("storage.local_dir") == "" {
			return errors.New("local storage directory can't be empty")
		}
	default:
		return errors.New("invalid storage type provided")
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("max upload size must be bigger than 0")
	}

	if v.GetString("mail.host") == "" {
		fmt.Println("[WARNING]: No mail.host configured, verification emails will not be sent")
	}

	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
