package database

import (
	"fmt"
	"net/url"
	"time"
)

// Config describes where the download history is stored. SQLite keeps it in
// a local file next to the assets; MySQL shares it between machines.
type Config struct {
	Enabled bool   `mapstructure:"enabled" default:"false"`
	Driver  string `mapstructure:"driver" default:"sqlite"`
	// Host, Port, User and Password are only read by the mysql driver.
	Host     string `mapstructure:"host" default:"localhost"`
	Port     int    `mapstructure:"port" default:"3306"`
	User     string `mapstructure:"user" default:"root"`
	Password string `mapstructure:"password" default:""`
	// Name is the schema for mysql and the file path for sqlite.
	Name           string `mapstructure:"name" default:"fad_history.db"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"10"`
}

// Timeout bounds connection setup and each read or write, 10s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MySQLDSN builds the go-sql-driver DSN. The password is URL encoded.
func (c Config) MySQLDSN() string {
	user := url.UserPassword(c.User, c.Password).String()
	timeout := c.Timeout().String()
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%s&readTimeout=%s&writeTimeout=%s",
		user, c.Host, c.Port, c.Name, timeout, timeout, timeout)
}
