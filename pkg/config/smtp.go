package config

import (
	"fmt"
	"strings"
)

type SMTPConfig struct {
	Host      string `koanf:"host"`
	Port      int    `koanf:"port"`
	Username  string `koanf:"username"`
	Password  string `koanf:"password"`
	FromName  string `koanf:"fromname"`
	FromEmail string `koanf:"fromemail"`
	ToEmail   string `koanf:"toemail"`
}

// String returns a string representation of the SMTP configuration.
func (c *SMTPConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- SMTP ---\n")
	b.WriteString(fmt.Sprintf("  host: %s\n", c.Host))
	b.WriteString(fmt.Sprintf("  port: %d\n", c.Port))
	b.WriteString(fmt.Sprintf("  from: %s <%s>\n", c.FromName, c.FromEmail))
	b.WriteString(fmt.Sprintf("  to: %s\n", c.ToEmail))
	return b.String()
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is not configured")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("SMTP sender address is not configured")
	}
	if c.ToEmail == "" {
		return fmt.Errorf("SMTP recipient address is not configured")
	}
	return nil
}
