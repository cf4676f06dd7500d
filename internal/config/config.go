package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr                string        // status API bind address, e.g. "127.0.0.1:8080" or ":8080" (Docker)
	LogDir              string        // logs directory; empty logs to stdout
	LogLevel            string        // debug, info, warn, error
	InstancesFile       string        // YAML file with init_config + instances
	CheckInterval       time.Duration // time between probe passes; 0 disables the runner
	MaxConcurrentChecks int           // endpoints probed in parallel per pass
	EventBuffer         int           // recent emissions kept for the status API
	APIKeys             []string      // keys accepted by /api; empty leaves it open
}

func FromEnv() Config {
	// Bind address (Windows-friendly default)
	addr := os.Getenv("API_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	// Logs
	logDir, ok := os.LookupEnv("LOG_DIR")
	if !ok {
		logDir = "logs"
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	instances := os.Getenv("INSTANCES_FILE")
	if instances == "" {
		instances = "conf.d/custom_http.yaml"
	}

	// Runner tuning
	interval := 15 * time.Second
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	concurrency := 4
	if v := os.Getenv("MAX_CONCURRENT_CHECKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			concurrency = n
		}
	}

	buffer := 200
	if v := os.Getenv("EVENT_BUFFER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			buffer = n
		}
	}

	return Config{
		Addr:                addr,
		LogDir:              logDir,
		LogLevel:            logLevel,
		InstancesFile:       instances,
		CheckInterval:       interval,
		MaxConcurrentChecks: concurrency,
		EventBuffer:         buffer,
		APIKeys:             splitList(os.Getenv("API_KEYS")),
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
