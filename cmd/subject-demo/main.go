// Command subject-demo walks through the observer scenario: two listeners on
// "stuff", one on "otherStuff", publish, unsubscribe, publish again.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/subject/pkg/config"
	"github.com/dmitrymomot/subject/pkg/environment"
	"github.com/dmitrymomot/subject/pkg/events"
	"github.com/dmitrymomot/subject/pkg/logger"
)

type appConfig struct {
	Name     string                  `env:"APP_NAME" envDefault:"subject-demo"`
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL"`
	Events   events.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log, os.Stdout); err != nil {
		log.Error("demo failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger, out io.Writer) error {
	reg, err := events.NewFromConfig[any](cfg.Events,
		events.WithLogger(log.With(logger.Component("events"))),
	)
	if err != nil {
		return err
	}
	log.Info("registry ready", slog.Any("policy", reg.Policy()))

	subscription, err := reg.Subscribe("stuff", func(_ context.Context, payload any) error {
		fmt.Fprintln(out, "stuff happened! Metadata: "+marshal(payload))
		return nil
	})
	if err != nil {
		return err
	}
	if _, err := reg.Subscribe("stuff", func(_ context.Context, payload any) error {
		fmt.Fprintln(out, "another listener for stuff! Metadata: "+marshal(payload))
		return nil
	}); err != nil {
		return err
	}
	if _, err := reg.Subscribe("otherStuff", func(context.Context, any) error {
		fmt.Fprintln(out, "Other stuff happened")
		return nil
	}); err != nil {
		return err
	}

	if err := reg.Publish(ctx, "stuff", map[string]string{"hi": "hey"}); err != nil {
		return err
	}
	reg.Unsubscribe(subscription)

	if err := reg.Publish(ctx, "stuff", "yoyo"); err != nil {
		return err
	}
	return reg.Publish(ctx, "otherStuff", nil)
}

func marshal(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
