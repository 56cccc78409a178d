package config

import (
	"time"
)

// DB configures the Postgres pool. Zero pool values keep the built-in defaults.
type DB struct {
	Url             string        `envconfig:"URL"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"25"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"1h"`
}

type Redis struct {
	URL       string `envconfig:"URL" default:""`
	KeyPrefix string `envconfig:"KEY_PREFIX" default:"banksim:otp:"`
}

type RabbitMQ struct {
	URL        string `envconfig:"URL" default:""`
	Exchange   string `envconfig:"EXCHANGE" default:"banksim.notifications"`
	RoutingKey string `envconfig:"ROUTING_KEY" default:"sms.otp"`
}

type Otp struct {
	TTL    time.Duration `envconfig:"TTL" default:"5m"`
	Length int           `envconfig:"LENGTH" default:"6"`
}

type Transfer struct {
	Atomic bool `envconfig:"ATOMIC" default:"false"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[banksim]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

// App is the whole process configuration. An empty Redis or RabbitMQ URL
// selects the in-process fallback for that concern.
type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Redis     *Redis     `envconfig:"REDIS"`
	RabbitMQ  *RabbitMQ  `envconfig:"RABBITMQ"`
	Otp       *Otp       `envconfig:"OTP"`
	Transfer  *Transfer  `envconfig:"TRANSFER"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
