package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Dashboard struct {
		PageSize         int    `yaml:"page_size"`
		Recruiter        string `yaml:"recruiter"`
		StrictValidation bool   `yaml:"strict_validation"`
	} `yaml:"dashboard"`

	Lookup struct {
		Delay      time.Duration `yaml:"delay"`
		MaxResults int           `yaml:"max_results"`
	} `yaml:"lookup"`

	RateLimit struct {
		RequestsPerMinute int `yaml:"requests_per_minute"`
		Burst             int `yaml:"burst"`
	} `yaml:"rate_limit"`

	Storage struct {
		Backend string `yaml:"backend"` // "redis" or "memory"
		Key     string `yaml:"key"`
		Redis   struct {
			URL      string        `yaml:"url"`
			Password string        `yaml:"password"`
			DB       int           `yaml:"db"`
			Timeout  time.Duration `yaml:"timeout"`
		} `yaml:"redis"`
	} `yaml:"storage"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Dashboard.PageSize = 10
	config.Dashboard.Recruiter = "Current User"
	config.Dashboard.StrictValidation = false

	config.Lookup.Delay = 300 * time.Millisecond
	config.Lookup.MaxResults = 100

	config.RateLimit.RequestsPerMinute = 300
	config.RateLimit.Burst = 30

	config.Storage.Backend = "redis"
	config.Storage.Key = "jobPostings"
	config.Storage.Redis.URL = "redis://localhost:6379"
	config.Storage.Redis.DB = 0
	config.Storage.Redis.Timeout = 5 * time.Second

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if recruiter := os.Getenv("DASHBOARD_RECRUITER"); recruiter != "" {
		c.Dashboard.Recruiter = recruiter
	}

	if pageSize := os.Getenv("DASHBOARD_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			c.Dashboard.PageSize = size
		}
	}

	if strict := os.Getenv("DASHBOARD_STRICT_VALIDATION"); strict != "" {
		c.Dashboard.StrictValidation = strict == "true" || strict == "1"
	}

	if delay := os.Getenv("LOOKUP_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			c.Lookup.Delay = d
		}
	}

	if maxResults := os.Getenv("LOOKUP_MAX_RESULTS"); maxResults != "" {
		if n, err := strconv.Atoi(maxResults); err == nil && n > 0 {
			c.Lookup.MaxResults = n
		}
	}

	if rpm := os.Getenv("RATE_LIMIT_RPM"); rpm != "" {
		if n, err := strconv.Atoi(rpm); err == nil && n > 0 {
			c.RateLimit.RequestsPerMinute = n
		}
	}

	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}

	if key := os.Getenv("STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Storage.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Storage.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Storage.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Storage.Redis.Timeout = timeout
		}
	}
}
