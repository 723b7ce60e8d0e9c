package probe

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Faucet-ATM/Avalanche-Faucet/internal/config"
)

const probeTimeout = 5 * time.Second

// runProbe hits a management endpoint of the locally running server and
// exits non-zero unless it answers 200.
func runProbe(path string, verbose bool) {
	cfg := config.DefaultServiceConfigFromEnv()

	address := cfg.Echo.ListenAddress
	if strings.HasPrefix(address, ":") {
		address = "127.0.0.1" + address
	}

	client := &http.Client{Timeout: probeTimeout}

	res, err := client.Get(fmt.Sprintf("http://%s%s", address, path))
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Probe request failed")
		os.Exit(1)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read probe response")
		os.Exit(1)
	}

	if verbose {
		fmt.Println(string(body))
	}

	if res.StatusCode != http.StatusOK {
		log.Error().Int("status", res.StatusCode).Str("path", path).Msg("Probe failed")
		os.Exit(1)
	}
}
