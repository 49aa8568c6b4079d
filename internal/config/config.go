package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Remote   RemoteConfig   `mapstructure:"remote"`
	Mirror   MirrorConfig   `mapstructure:"mirror"`
	Importer ImporterConfig `mapstructure:"importer"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// RemoteConfig points at the remote backend. When URI or database is left
// empty the application runs in local-only mode and never attempts a remote
// call.
type RemoteConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
	AnonKey  string `mapstructure:"anon_key"`
}

// Configured reports whether the remote backend credentials are complete.
func (c RemoteConfig) Configured() bool {
	return c.URI != "" && c.Database != ""
}

// MirrorConfig locates the local data mirror on disk.
type MirrorConfig struct {
	Dir string `mapstructure:"dir"`
}

// ImporterConfig points at the swimming federation results site used for
// performance imports.
type ImporterConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Configured reports whether the illustration bucket is usable.
func (c S3Config) Configured() bool {
	return c.BucketName != "" && c.AccessKeyID != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// nested keys map to env vars, e.g. remote.uri -> REMOTE_URI
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("mirror.dir", "data")
	viper.SetDefault("importer.timeout", "30s")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "24h")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// no file is fine, env vars and defaults carry the day
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}
	return config, nil
}
