package e2etest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/z-marketing/sb1-fn7ghc/config"
)

// createTestConfig creates a test configuration and returns the path to the file
func createTestConfig(mockURL, port string) (string, error) {
	tempDir, err := os.MkdirTemp("", "coin-proxy-test")
	if err != nil {
		return "", err
	}

	configContent := fmt.Sprintf(`
port: "%s"

coinmarketcap:
  api_key: "%s"
  override_base_url: "%s"   # mock server
  retry:
    max_retries: 1          # no retries, call counts stay exact
    base_backoff: 10ms
  rate_limit:
    rate_limit_per_minute: 6000
    burst: 100
  timeouts:
    connection: 1s
    request: 2s

coins_list:
  ttl: 5m
  limit: 100

crypto_data:
  ttl: 1s                   # short TTL so expiry can be observed

cache:
  single_flight: true
`, port, testAPIKey, mockURL)

	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		os.RemoveAll(tempDir)
		return "", err
	}

	return configPath, nil
}

// loadTestConfig creates and loads test configuration
func loadTestConfig(mockURL, port string) (*config.Config, string, error) {
	configPath, err := createTestConfig(mockURL, port)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		os.RemoveAll(filepath.Dir(configPath))
		return nil, "", err
	}

	return cfg, configPath, nil
}

// cleanupTestConfig removes the temporary directory with configuration
func cleanupTestConfig(configPath string) {
	os.RemoveAll(filepath.Dir(configPath))
}
