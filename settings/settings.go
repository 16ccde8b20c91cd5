package settings

import (
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

var lock = &sync.Mutex{}
var singleSettingsInstace *settings

type settings struct {
	MONGO_DB            string
	MONGO_ROOT_USERNAME string
	MONGO_ROOT_PASSWORD string
	MONGO_HOST          string
	MONGO_CONNECTION    string
	NATS_HOST           string
	ELS_HOST            string
	ELS_PASSWORD        string
	ELS_PORT            int
	ELS_USERNAME        string
	COLLEGE_NAME        string
	CLIENT_URL          string
	NODE_ENV            string
}

func newSettings() *settings {
	// Search is optional, a missing port disables it
	elsPort, err := strconv.Atoi(os.Getenv("ELS_PORT"))
	if err != nil {
		elsPort = 0
	}
	mongoConnection := os.Getenv("MONGO_CONNECTION")
	if mongoConnection == "" {
		mongoConnection = "mongodb"
	}
	return &settings{
		MONGO_DB:            os.Getenv("MONGO_DB"),
		MONGO_ROOT_USERNAME: os.Getenv("MONGO_ROOT_USERNAME"),
		MONGO_ROOT_PASSWORD: os.Getenv("MONGO_ROOT_PASSWORD"),
		MONGO_HOST:          os.Getenv("MONGO_HOST"),
		MONGO_CONNECTION:    mongoConnection,
		NATS_HOST:           os.Getenv("NATS_HOST"),
		ELS_HOST:            os.Getenv("ELS_HOST"),
		ELS_PORT:            elsPort,
		ELS_PASSWORD:        os.Getenv("ELS_PASSWORD"),
		ELS_USERNAME:        os.Getenv("ELS_USERNAME"),
		COLLEGE_NAME:        os.Getenv("COLLEGE_NAME"),
		CLIENT_URL:          os.Getenv("CLIENT_URL"),
		NODE_ENV:            os.Getenv("NODE_ENV"),
	}
}

// Load reads the .env file outside production. Servers call it once
// before GetSettings.
func Load() {
	if os.Getenv("NODE_ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			log.Fatalf("No .env file found")
		}
	}
}

func GetSettings() *settings {
	lock.Lock()
	defer lock.Unlock()
	if singleSettingsInstace == nil {
		singleSettingsInstace = newSettings()
	}
	return singleSettingsInstace
}

// SearchEnabled reports whether an Elasticsearch host is configured.
func (s *settings) SearchEnabled() bool {
	return s.ELS_HOST != "" && s.ELS_PORT != 0
}
