package config

import (
	"fmt"
	"strings"
	"time"
)

// MongoConfig describes how to reach the document store.
type MongoConfig struct {
	URI        string        `koanf:"uri"`
	Database   string        `koanf:"database"`
	Collection string        `koanf:"collection"`
	Timeout    time.Duration `koanf:"timeout"`
}

// String returns a string representation of the Mongo configuration with the URI masked.
func (c *MongoConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Mongo ---\n")
	b.WriteString(fmt.Sprintf("  uri: %s\n", MaskURI(c.URI)))
	b.WriteString(fmt.Sprintf("  database: %s\n", c.Database))
	b.WriteString(fmt.Sprintf("  collection: %s\n", c.Collection))
	b.WriteString(fmt.Sprintf("  connect.timeout: %s\n", c.Timeout))
	return b.String()
}

func (c *MongoConfig) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("mongo URI is not configured")
	}
	if !isValidMongoURI(c.URI) {
		return fmt.Errorf("mongo URI must start with 'mongodb://' or 'mongodb+srv://': %s", MaskURI(c.URI))
	}
	if c.Database == "" {
		return fmt.Errorf("mongo database name is not configured")
	}
	if c.Collection == "" {
		return fmt.Errorf("mongo collection name is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid mongo connect timeout: %v", c.Timeout)
	}
	return nil
}

// MaskURI hides the credentials part of a connection string.
func MaskURI(uri string) string {
	if uri == "" {
		return "<not configured>"
	}
	// keep the scheme and everything after the last "@"
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := ""
	if i := strings.Index(uri, "://"); i >= 0 && i < at {
		scheme = uri[:i+3]
	}
	return scheme + "****@" + uri[at+1:]
}

// isValidMongoURI checks if the provided URI uses one of the MongoDB schemes
func isValidMongoURI(uri string) bool {
	return strings.HasPrefix(uri, "mongodb://") ||
		strings.HasPrefix(uri, "mongodb+srv://")
}
