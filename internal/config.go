package internal

import "time"

type Config struct {
	Host      string `env:"HOST,required=true"`
	Port      int    `env:"PORT,required=true"`
	DebugPort int    `env:"DEBUG_PORT,required=true"`
	LogLevel  string `env:"LOG_LEVEL,required=true"`

	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	// Outgoing buffer per WebSocket session. A full buffer drops the event
	// rather than blocking the fan-out path.
	SendBufferSize int `env:"SEND_BUFFER_SIZE,required=true"`

	TelemetryInterval time.Duration `env:"TELEMETRY_INTERVAL,required=true"`
}
