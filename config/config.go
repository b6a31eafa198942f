package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultWordsFile = "words.txt"
	DefaultPort      = "8080"
)

// Config holds the defaults used by the command line flags.
type Config struct {
	WordsFile string
	Port      string
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: loading .env: %v", err)
	}

	return Config{
		WordsFile: getEnvString("VOWELSWAP_WORDS", DefaultWordsFile),
		Port:      getEnvString("VOWELSWAP_PORT", DefaultPort),
	}
}

func getEnvString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
