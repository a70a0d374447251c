package config

import (
	"fmt"
	"strings"
)

type StorageConfig struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"accesskey"`
	SecretKey string `koanf:"secretkey"`
	UseSSL    bool   `koanf:"usessl"`
	Bucket    string `koanf:"bucket"`
	PublicURL string `koanf:"publicurl"`
}

// String returns a string representation of the object storage configuration.
func (c *StorageConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Storage ---\n")
	b.WriteString(fmt.Sprintf("  endpoint: %s\n", c.Endpoint))
	b.WriteString(fmt.Sprintf("  bucket: %s\n", c.Bucket))
	b.WriteString(fmt.Sprintf("  ssl: %t\n", c.UseSSL))
	b.WriteString(fmt.Sprintf("  public_url: %s\n", c.PublicURL))
	return b.String()
}

func (c *StorageConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("storage endpoint is not configured")
	}
	if c.AccessKey == "" || c.SecretKey == "" {
		return fmt.Errorf("storage credentials are not configured")
	}
	if c.Bucket == "" {
		return fmt.Errorf("storage bucket is not configured")
	}
	return nil
}
