package main

import (
	"flag"

	"gritline/global"
	"gritline/initialize"
	"gritline/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}

	host := app.Cfg.HTTP.Host
	port := app.Cfg.HTTP.Port
	global.Logger.Info().Str("host", host).Int("port", port).Msg("listening")
	if err := server.StartHTTPServer(host, port, app.Router); err != nil {
		global.Logger.Fatal().Err(err).Msg("server stopped")
	}
}
