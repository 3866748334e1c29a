package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-phoneform/components/countries"
)

// Validate checks the loaded configuration and normalises enum values. Load
// calls it automatically.
func (c *Config) Validate() error {
	c.Form.DefaultCountry = strings.ToUpper(strings.TrimSpace(c.Form.DefaultCountry))
	if _, ok := countries.Find(c.Form.DefaultCountry); !ok {
		return fmt.Errorf("form.default_country %q is not in the country directory", c.Form.DefaultCountry)
	}
	if strings.TrimSpace(c.Form.Kind) == "" && strings.TrimSpace(c.Form.Path) == "" {
		return fmt.Errorf("form: either kind or path must be set")
	}

	if err := c.Submission.validate(); err != nil {
		return fmt.Errorf("submission: %w", err)
	}
	if err := c.Drafts.validate(); err != nil {
		return fmt.Errorf("drafts: %w", err)
	}
	if c.Intake.Enabled && !strings.HasPrefix(c.Intake.Path, "/") {
		return fmt.Errorf("intake.path must start with / (got %q)", c.Intake.Path)
	}
	return nil
}

func (s *SubmissionConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))
	switch s.Backend {
	case BackendWebhook, BackendScript:
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", BackendWebhook, BackendScript, s.Backend)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %s)", s.Timeout)
	}
	if s.URL == "" {
		return nil
	}
	parsed, err := url.Parse(s.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("url %q must be absolute", s.URL)
	}
	return nil
}

func (d *DraftsConfig) validate() error {
	d.Backend = strings.ToLower(strings.TrimSpace(d.Backend))
	switch d.Backend {
	case DraftsMemory:
	case DraftsFile:
		if strings.TrimSpace(d.Dir) == "" {
			return fmt.Errorf("dir is required for the file backend")
		}
	case DraftsRedis:
		if strings.TrimSpace(d.Redis.Addr) == "" {
			return fmt.Errorf("redis.addr is required for the redis backend")
		}
		if d.Redis.DB < 0 {
			return fmt.Errorf("redis.db must be >= 0 (got %d)", d.Redis.DB)
		}
	default:
		return fmt.Errorf("backend must be one of memory, file, redis (got %q)", d.Backend)
	}
	return nil
}
