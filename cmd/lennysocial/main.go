package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"local.dev/lennysocial/internal/config"
	"local.dev/lennysocial/internal/httpx"
	"local.dev/lennysocial/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(config.LogLevel()); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	paths := config.DefaultPaths()
	config.EnsureDir(paths.UploadsDir)

	st := store.New(paths.DataFile, config.AdminUsername())
	if err := st.Load(); err != nil {
		// A corrupt data file fails fast rather than serving partial state.
		log.Fatal().Err(err).Str("file", paths.DataFile).Msg("load data file")
	}

	app := &httpx.AppCtx{
		Store:  st,
		Paths:  paths,
		Secret: config.SessionSecret(),
	}
	router := httpx.NewRouter(app)

	addr := ":" + config.Port()
	log.Info().Str("addr", addr).Str("data_dir", paths.DataDir).Msg("lennysocial listening")
	if err := http.ListenAndServe(addr, httpx.CORS(router)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
