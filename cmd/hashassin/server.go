package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hashassin/hashassin/internal/crackcache"
	"github.com/hashassin/hashassin/internal/dcontext"
	"github.com/hashassin/hashassin/internal/hashconfig"
	"github.com/hashassin/hashassin/internal/hashserver"
	"github.com/hashassin/hashassin/internal/tableregistry"
)

var (
	serverConfigFile     string
	serverBind           string
	serverPort           int
	serverComputeThreads int
	serverAsyncThreads   int
	serverCacheSize      int64
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "start the hashassin TCP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := hashconfig.Default()
		cfg.Bind, cfg.Port = serverBind, serverPort
		cfg.ComputeThreads, cfg.AsyncThreads, cfg.CacheSize = serverComputeThreads, serverAsyncThreads, serverCacheSize

		if serverConfigFile != "" {
			var err error
			// cfg holds the flag values (defaults included) as the base;
			// every field the file sets to a non-zero value replaces the
			// matching flag value, whether or not that flag was passed.
			cfg, err = hashconfig.LoadFile(serverConfigFile, cfg)
			if err != nil {
				return err
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		ctx = dcontext.WithLogger(ctx, logrus.NewEntry(logrus.StandardLogger()))

		registry := tableregistry.New()

		var cache *crackcache.Cache
		if cfg.CacheSize > 0 {
			var err error
			cache, err = crackcache.New(cfg.CacheSize)
			if err != nil {
				return err
			}
			defer cache.Close()
		}

		srv := hashserver.New(registry, cache, cfg.ComputeThreads)

		addr := net.JoinHostPort(cfg.Bind, fmt.Sprintf("%d", cfg.Port))
		_ = cfg.AsyncThreads // reserved; this thread-per-connection server has no async pool to size
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serverCmd.Flags().StringVar(&serverConfigFile, "config", "", "optional YAML config file; fields it sets override the matching flags")
	serverCmd.Flags().StringVar(&serverBind, "bind", "127.0.0.1", "address to bind")
	serverCmd.Flags().IntVar(&serverPort, "port", 2025, "port to listen on")
	serverCmd.Flags().IntVar(&serverComputeThreads, "compute-threads", 1, "maximum concurrent crack requests")
	serverCmd.Flags().IntVar(&serverAsyncThreads, "async-threads", 1, "reserved, unused by this server")
	serverCmd.Flags().Int64Var(&serverCacheSize, "cache-size", 0, "crack cache max cost in bytes (0 disables the cache)")
	RootCmd.AddCommand(serverCmd)
}
