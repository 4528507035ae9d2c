// Package config loads process-wide startup configuration.
//
// Values are merged in increasing precedence: built-in defaults,
// config/app.json, .env, then real environment variables. The result is an
// immutable Config struct handed to internal/server at startup; nothing
// reads configuration ambiently after that.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	defaultAppPort   = "5000"
	defaultAppEnv    = "local"
	defaultMongoURI  = "mongodb://localhost:27017"
	defaultMongoDB   = "ecommerce"
	defaultJWTSecret = "change-me-in-production"
	defaultRedisAddr = "localhost:6379"
)

// Config is the immutable startup configuration.
type Config struct {
	AppPort       string
	AppEnv        string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	LogToMongo    bool
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.AppPort
}

// Production reports whether the app runs with production settings.
func (c *Config) Production() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// Load reads configuration from the conventional locations.
func Load() (*Config, error) {
	return LoadFrom("config/app.json", ".env")
}

// LoadFrom reads configuration from explicit file paths. Missing files are
// not an error; malformed files are.
func LoadFrom(jsonPath, envPath string) (*Config, error) {
	values := defaultValues()

	if err := mergeJSONConfig(jsonPath, values); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := mergeDotEnv(envPath, values); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	for key := range values {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			values[key] = v
		}
	}

	return &Config{
		AppPort:       values["APP_PORT"],
		AppEnv:        values["APP_ENV"],
		MongoURI:      values["MONGO_URI"],
		MongoDB:       values["MONGO_DB"],
		JWTSecret:     values["JWT_SECRET"],
		RedisAddr:     values["REDIS_ADDR"],
		RedisPassword: values["REDIS_PASSWORD"],
		LogToMongo:    isTruthy(values["LOG_TO_MONGO"]),
	}, nil
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":       defaultAppPort,
		"APP_ENV":        defaultAppEnv,
		"MONGO_URI":      defaultMongoURI,
		"MONGO_DB":       defaultMongoDB,
		"JWT_SECRET":     defaultJWTSecret,
		"REDIS_ADDR":     defaultRedisAddr,
		"REDIS_PASSWORD": "",
		"LOG_TO_MONGO":   "",
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}
