package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret    string `env:"JWT_SECRET"`
	JWTAlgorithm string `env:"JWT_ALGORITHM,     default=HS256"`
	TokenTTLMin  int    `env:"TOKEN_TTL_MINUTES, default=60"`

	LoginMaxFailures   int64 `env:"LOGIN_MAX_FAILURES,   default=5"`
	LoginWindowMinutes int   `env:"LOGIN_WINDOW_MINUTES, default=15"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=social_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StorageConfig selects the image backend: S3 when Bucket is set, local
// disk otherwise.
type StorageConfig struct {
	UploadDir     string `env:"UPLOAD_DIR, default=./uploads"`
	S3Bucket      string `env:"S3_BUCKET"`
	S3Region      string `env:"S3_REGION,  default=us-east-1"`
	S3Endpoint    string `env:"S3_ENDPOINT"`
	S3AccessKey   string `env:"S3_ACCESS_KEY"`
	S3SecretKey   string `env:"S3_SECRET_KEY"`
	PublicBaseURL string `env:"STORAGE_PUBLIC_URL"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
