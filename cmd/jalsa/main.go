package main

import (
	"context"
	"errors"
	"os"

	"github.com/fsdevblog/jalsa-khata/internal/app"
	"github.com/fsdevblog/jalsa-khata/internal/config"
	"github.com/fsdevblog/jalsa-khata/internal/logger"
	"github.com/shopspring/decimal"
)

func main() {
	// суммы уходят в json числами, как их ждет фронтенд.
	decimal.MarshalJSONWithoutQuotes = true

	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.LogLevel)

	if err := app.New(conf, l).Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			l.Info("graceful shutdown")
			os.Exit(0)
		}
		l.WithError(err).Fatal("app stopped")
	}
}
