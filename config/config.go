// config/config.go
package config

import (
	"os"
	"time"
)

// Store driver selection. The memory driver keeps everything in-process and
// exists for local development and tests.
const (
	StoreDriverMongo  = "mongo"
	StoreDriverMemory = "memory"
)

var (
	Port          string
	MongoURI      string
	MongoDB       string
	StoreDriver   string
	JWTKey        []byte
	JWTExpiration time.Duration
	AdminEmail    string
	AdminPassword string
)

func LoadConfig() {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017"
	}

	MongoDB = os.Getenv("MONGO_DB")
	if MongoDB == "" {
		MongoDB = "inventory"
	}

	StoreDriver = os.Getenv("STORE_DRIVER")
	if StoreDriver == "" {
		StoreDriver = StoreDriverMongo
	}

	JWTKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTKey) == 0 {
		JWTKey = []byte("secret")
	}

	dur := 24 * time.Hour
	if expireStr := os.Getenv("JWT_EXPIRE"); expireStr != "" {
		if parsed, err := time.ParseDuration(expireStr); err == nil {
			dur = parsed
		}
	}
	JWTExpiration = dur

	AdminEmail = os.Getenv("ADMIN_EMAIL")
	AdminPassword = os.Getenv("ADMIN_PASSWORD")
}
