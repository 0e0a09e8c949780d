package cmd

import (
	"fmt"
	"strconv"

	"dispatch/internal/pkg/errs"
)

// Defaults for the scheduling knobs when neither the environment nor the
// command line sets them.
const (
	DefaultDeliveryWindowDays  = 7
	DefaultMaxDeliveriesPerDay = 3
)

// Config carries everything the process needs at startup. Connection
// settings come from the environment; the scheduling knobs can additionally
// be overridden on the command line.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DeliveryWindowDays  int
	MaxDeliveriesPerDay int
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	if c.HTTPPort == "" {
		return errs.NewValueIsRequiredError("HTTP_PORT")
	}
	if c.DBHost == "" {
		return errs.NewValueIsRequiredError("DB_HOST")
	}
	if c.DBName == "" {
		return errs.NewValueIsRequiredError("DB_NAME")
	}
	if c.DeliveryWindowDays <= 0 {
		return errs.NewValueIsInvalidError("DELIVERY_WINDOW_DAYS")
	}
	if c.MaxDeliveriesPerDay <= 0 {
		return errs.NewValueIsInvalidError("MAX_DELIVERIES_PER_DAY")
	}
	return nil
}

// PostgresDSN builds the gorm connection string from the database settings.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// IntFromEnv parses an integer setting, falling back to the default when the
// variable is unset. A set but unparsable value is an error so a typo does
// not silently run with the default.
func IntFromEnv(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return parsed, nil
}
