package config

import (
	"fmt"
	"strings"
)

// AdminConfig holds the allow-listed administrator identity. A single
// configured address mirrors the original storefront's behavior; it is an
// access gate for the admin UI surface, not a security boundary.
type AdminConfig struct {
	Email string `koanf:"email"`
}

// String returns a string representation of the admin configuration.
func (c *AdminConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Admin ---\n")
	b.WriteString(fmt.Sprintf("  email: %s\n", c.Email))
	return b.String()
}

func (c *AdminConfig) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("admin email is not configured")
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("admin email is not a valid address: %s", c.Email)
	}
	return nil
}
