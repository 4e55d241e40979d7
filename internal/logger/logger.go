package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New devolve o logger da aplicação com saída de console e timestamp.
func New() zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Logger()
}
