package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Database fields are only required when
// the MySQL store driver is selected; Validate enforces that.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	StoreDriver string // blob store backend: "mysql", "redis" or "memory"
	DBUser      string // database username (mysql driver)
	DBPass      string // database password (optional)
	DBHost      string // database host address (mysql driver)
	DBPort      string // database port number (mysql driver)
	DBName      string // database name (mysql driver)
	JWTSecret   string // secret used to verify admin JWTs
}

// Load reads configuration values from environment variables and
// returns a Config.  Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:         getenv("APP_ENV", "dev"),         // environment (dev/test/prod)
		Port:        must("APP_PORT"),                 // port to bind the HTTP server
		StoreDriver: getenv("STORE_DRIVER", "memory"), // persistence backend
		DBUser:      os.Getenv("DB_USER"),             // database user
		DBPass:      os.Getenv("DB_PASS"),             // database password (empty allowed)
		DBHost:      os.Getenv("DB_HOST"),             // database host
		DBPort:      os.Getenv("DB_PORT"),             // database port
		DBName:      os.Getenv("DB_NAME"),             // database name
		JWTSecret:   must("JWT_SECRET"),               // secret for admin token verification
	}
}

// Validate checks cross-field requirements: the MySQL driver needs the
// connection variables that the other drivers can leave unset.
func (c Config) Validate() {
	switch c.StoreDriver {
	case "mysql":
		for key, v := range map[string]string{
			"DB_USER": c.DBUser,
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_NAME": c.DBName,
		} {
			if v == "" {
				log.Fatalf("STORE_DRIVER=mysql requires env var %s", key)
			}
		}
	case "redis", "memory":
		// no extra requirements; redis settings come from REDIS_* vars
	default:
		log.Fatalf("unknown STORE_DRIVER: %q", c.StoreDriver)
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
