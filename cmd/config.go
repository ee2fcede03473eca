package cmd

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from environment
// variables. A .env file is loaded first in development.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST,required"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBName     string `env:"DB_NAME,required"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	EnhancerBaseURL string        `env:"ENHANCER_BASE_URL,required"`
	EnhancerTimeout time.Duration `env:"ENHANCER_TIMEOUT" envDefault:"30s"`

	IntakeCustomerName string `env:"INTAKE_CUSTOMER_NAME" envDefault:"Demo Customer"`
	IntakeProductName  string `env:"INTAKE_PRODUCT_NAME" envDefault:"T-Shirt"`
	IntakeQuantity     int    `env:"INTAKE_QUANTITY" envDefault:"1"`
}

// NewConfig parses configuration from the environment.
func NewConfig() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
