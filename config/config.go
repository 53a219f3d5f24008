package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultPort          = "8000"
	defaultScrapeTimeout = 10 * time.Second
	defaultMaxProducts   = 20
	defaultSearchBaseURL = "https://www.flipkart.com"
	defaultAuthSecret    = "quickkart-demo-secret"
)

type Config struct {
	config *viper.Viper
}

func Load() (*Config, error) {

	env := os.Getenv(keyEnv)
	if len(env) == 0 {
		env = envLocal
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetPort() string {
	port := c.config.GetString("PORT")
	if len(port) == 0 {
		port = c.config.GetString("server.port")
	}
	if len(port) == 0 {
		port = defaultPort
	}

	return port
}

func (c *Config) GetSearchBaseURL() string {
	baseURL := c.config.GetString("SEARCH_BASE_URL")
	if len(baseURL) == 0 {
		baseURL = c.config.GetString("scraper.base_url")
	}
	if len(baseURL) == 0 {
		baseURL = defaultSearchBaseURL
	}

	return baseURL
}

func (c *Config) GetScrapeTimeout() time.Duration {
	seconds := c.config.GetInt("SCRAPE_TIMEOUT")
	if seconds == 0 {
		seconds = c.config.GetInt("scraper.timeout_seconds")
	}
	if seconds == 0 {
		return defaultScrapeTimeout
	}

	return time.Duration(seconds) * time.Second
}

func (c *Config) GetMaxProducts() int {
	maxProducts := c.config.GetInt("MAX_PRODUCTS")
	if maxProducts == 0 {
		maxProducts = c.config.GetInt("scraper.max_products")
	}
	if maxProducts == 0 {
		maxProducts = defaultMaxProducts
	}

	return maxProducts
}

func (c *Config) GetAuthSecret() string {
	secret := c.config.GetString("AUTH_SECRET")
	if len(secret) == 0 {
		secret = c.config.GetString("auth.secret")
	}
	if len(secret) == 0 {
		secret = defaultAuthSecret
	}

	return secret
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
