package initialize

import (
	"os"

	"gritline/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	if os.Getenv("GRITLINE_LOG_JSON") != "" {
		global.Logger = log.Output(os.Stdout)
		return
	}
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}
