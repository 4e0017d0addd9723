package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/aetheric-oss/svc-assets/internal/assetsrv/config"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/server"
	"github.com/aetheric-oss/svc-assets/internal/assetsrv/storage"
	"github.com/aetheric-oss/svc-assets/internal/common/logtrace"
)

func init() {
	logtrace.InitLogger()
}

type cmdoptions struct {
	configFile *string
	waitReady  *bool
	debug      *bool
}

func main() {

	slog := log.With().Str("state", "init").Logger()
	// Parse command line flags
	opt := parseFlags()
	logtrace.SetDebug(*opt.debug)

	slog.Info().Str("config_file", *opt.configFile).Msg("loading config file")
	if err := config.LoadConfig(*opt.configFile); err != nil {
		slog.Error().Str("config_file", *opt.configFile).Err(err).Msg("unable to load config file")
		os.Exit(1)
	}
	if config.Config().ServerPort == "" {
		slog.Error().Msg("server port not defined")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *opt.waitReady {
		if err := waitForStorage(ctx); err != nil {
			slog.Error().Err(err).Msg("storage backend never became ready")
			os.Exit(1)
		}
	}

	s, err := server.CreateNewServer()
	if err != nil {
		slog.Error().Err(err).Msg("Unable to create server")
		os.Exit(1)
	}
	s.MountHandlers()

	if err := s.Run(ctx); err != nil {
		slog.Error().Err(err).Msg("server exited with error")
		os.Exit(1)
	}
	slog.Info().Msg("server stopped")
}

// waitForStorage probes the backend until every family reports ready. This
// is a startup convenience only; the request path never retries.
func waitForStorage(ctx context.Context) error {
	clients := storage.NewClients(config.Config().StorageURL())
	probes := []func(context.Context) error{
		clients.Vehicle.IsReady,
		clients.Vertiport.IsReady,
		clients.Vertipad.IsReady,
		clients.Group.IsReady,
	}
	return retry.Do(
		func() error {
			for _, probe := range probes {
				if err := probe(ctx); err != nil {
					return err
				}
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(30),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn().Uint("attempt", n).Err(err).Msg("storage backend not ready yet")
		}),
	)
}

func parseFlags() cmdoptions {
	var opt cmdoptions
	opt.configFile = flag.String("config", "", "Path to the config file")
	opt.waitReady = flag.Bool("wait-ready", false, "Wait for the storage backend before serving")
	opt.debug = flag.Bool("debug", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options]\n\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opt
}
