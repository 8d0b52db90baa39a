package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App is the process configuration, loaded from the environment. An empty
// POSTGRES_CONN selects the in-memory store; an empty AMQP_URL disables the
// event mirror.
type App struct {
	HTTPAddr     string `envconfig:"HTTP_ADDR" default:":8080"`
	PostgresConn string `envconfig:"POSTGRES_CONN" default:""`

	AMQPURL      string `envconfig:"AMQP_URL" default:""`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"auction.events"`

	SweepInterval     time.Duration `envconfig:"SWEEP_INTERVAL" default:"2s"`
	LockTimeout       time.Duration `envconfig:"LOCK_TIMEOUT" default:"3s"`
	SettlementBackoff time.Duration `envconfig:"SETTLEMENT_BACKOFF" default:"500ms"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
