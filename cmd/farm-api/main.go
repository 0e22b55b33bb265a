package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/openalpha/stake-farm/api"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the farm-api command. Flags override FARM_API_*
// environment variables, which override the defaults.
func NewRootCmd() *cobra.Command {
	cfg, cfgErr := api.LoadConfig()
	if cfg == nil {
		cfg = api.DefaultConfig()
	}

	cmd := &cobra.Command{
		Use:   "farm-api",
		Short: "Read-only HTTP and websocket API for stake farm pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Host, "host", cfg.Host, "Server host")
	flags.IntVar(&cfg.Port, "port", cfg.Port, "Server port")
	flags.StringVar(&cfg.NodeURI, "node", cfg.NodeURI, "CometBFT RPC endpoint of a farmd node")
	flags.StringVar(&cfg.GRPCAddr, "grpc", cfg.GRPCAddr, "gRPC endpoint of the node for bank queries, empty to query over RPC")
	flags.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "How often the websocket feed polls the chain height")
	flags.Float64Var(&cfg.RateLimitRPS, "rate-limit", cfg.RateLimitRPS, "Requests per second per IP")
	flags.IntVar(&cfg.RateLimitBurst, "rate-limit-burst", cfg.RateLimitBurst, "Request burst per IP")
	flags.BoolVar(&cfg.DisableRateLimit, "bench", cfg.DisableRateLimit, "Disable rate limiting")
	flags.StringSliceVar(&cfg.AllowedOrigins, "allowed-origins", cfg.AllowedOrigins, "CORS and websocket origins")

	return cmd
}

func run(ctx context.Context, cfg *api.Config) error {
	logger := log.NewLogger(os.Stderr)

	reader, err := api.NewChainReader(cfg)
	if err != nil {
		return err
	}
	defer reader.Close()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(cfg, reader, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
