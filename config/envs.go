package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every value has a
// default so the tool runs with no environment at all.
type Config struct {
	MazeWidth  int    // Number of cell columns in the generated maze
	MazeHeight int    // Number of cell rows in the generated maze
	TextPath   string // Destination of the generated maze text file
	DocPath    string // Destination of the exported JSON document
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one is present.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:  getEnvWithDefaultAsInt("MAZE_WIDTH", 10),
		MazeHeight: getEnvWithDefaultAsInt("MAZE_HEIGHT", 10),
		TextPath:   getEnvWithDefault("MAZE_TEXT_PATH", "output/maze.txt"),
		DocPath:    getEnvWithDefault("MAZE_DOC_PATH", "output/maze.json"),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns
// a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvWithDefaultAsInt retrieves the value of an environment variable as an
// integer, or logs a fatal error if it is set but cannot be parsed.
func getEnvWithDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
