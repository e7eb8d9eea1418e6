package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Heston Monte Carlo Pricer Configuration

[model]
# Mean-reversion speed of the variance process
alpha = 2.0
# Long-run variance level
b = 0.01
# Volatility of variance
sigma = 0.1
# Correlation between price and variance shocks, in [-1, 1]
rho = 0.0
# Drift of the price process
mu = 0.0
# Initial variance
v0 = 0.01
# Initial price
s0 = 105.0

[grid]
# Simulated time interval [start, end] in years
start = 0.0
end = 1.0
# Number of uniform time steps
steps = 1000

[simulation]
# Number of Monte Carlo paths
paths = 30000
# Random seed; the same seed reproduces the same path batch
seed = 1234

[store]
# Persist pricing runs to SQLite
enabled = true

[ui]
# Enable colored output
color_enabled = true
# Decimal places for printed prices
precision = 4
`

// createTemplateConfig writes a commented default config.toml so a
// first run leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}
	return nil
}
