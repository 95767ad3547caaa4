package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/mosswm/mosswm/internal/api"
	"github.com/mosswm/mosswm/internal/app"
	"github.com/mosswm/mosswm/internal/build"
	"github.com/mosswm/mosswm/internal/bus"
	"github.com/mosswm/mosswm/internal/config"
	"github.com/mosswm/mosswm/internal/core"
	"github.com/mosswm/mosswm/internal/engine"
	"github.com/mosswm/mosswm/internal/xwm"
	"github.com/mosswm/mosswm/pkg/sutureext"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Host   string `doc:"host to listen on"`
	Port   int    `doc:"port to listen on" default:"8080"`
	Config string `doc:"config file" default:".mosswm.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			if err := config.Normalize(store); err != nil {
				return err
			}

			eng := engine.New()
			defer eng.Close()

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			eventC := make(chan any)
			inject := func(msg xwm.Msg) {
				select {
				case <-ctx.Done():
				case eventC <- msg:
				}
			}

			bus.Subscribe("main", func(ctx context.Context, event bus.WindowManaged) error {
				slog.Info("Managing window", "id", event.ID, "app", event.App, "floating", event.Floating)
				return nil
			})
			bus.Subscribe("main", func(ctx context.Context, event bus.WindowUnmanaged) error {
				slog.Info("Unmanaging window", "id", event.ID)
				return nil
			})
			bus.Subscribe("main", func(ctx context.Context, event bus.LayoutApplied) error {
				slog.Debug("Applied layout", "generation", event.Generation, "commands", len(event.Commands))
				return nil
			})

			state := api.NewState()
			handler := api.New(state, store, inject)

			super := sutureext.NewSimple("mosswm")
			sutureext.Add(super, sutureext.NewServiceFunc("api.http",
				httpServe(core.Address(options.Host, options.Port), handler)))
			super.ServeBackground(ctx)

			go xwm.ReceiveEvents(ctx, conn, eventC)

			return xwm.HandleEvents(ctx, conn, app.Model{Store: store, Engine: eng}, eventC)
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}

func httpServe(addr string, handler http.Handler) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		srv := http.Server{Addr: addr, Handler: handler}

		errC := make(chan error, 1)
		go func() { errC <- srv.ListenAndServe() }()

		select {
		case <-ctx.Done():
			srv.Shutdown(context.Background())
			<-errC
			return ctx.Err()
		case err := <-errC:
			return err
		}
	}
}
