package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/conradsun/staffd/pkg/database"
	"github.com/conradsun/staffd/pkg/dispatcher"
	"github.com/conradsun/staffd/pkg/log"
	"github.com/conradsun/staffd/pkg/metrics"
	"github.com/conradsun/staffd/pkg/query"
	"github.com/conradsun/staffd/pkg/wire"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "staffd",
	Short: "staffd is the networked employee record store",
	Long: `staffd accepts up to a bounded number of concurrent TCP clients plus
a privileged local standard-input channel, parses the fixed ADD/DEL/MOD/GET/
LOG/HELP/EXIT command grammar, executes it against an in-memory record
store, and replies with fixed-format text.`,
	RunE: runServe,
}

func init() {
	rootCmd.Flags().Int("port", wire.DefaultPort, "TCP port to listen on")
	rootCmd.Flags().Int("max-clients", wire.MaxClients, "maximum concurrent remote connections")
	rootCmd.Flags().Uint64("max-records", database.DefaultMaxSize, "initial record store capacity before it grows")
	rootCmd.Flags().String("log-level", "info", "ambient log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("log-json", false, "emit logs as JSON instead of console format")
	rootCmd.Flags().String("metrics-addr", "", "address to serve Prometheus metrics on (disabled if empty)")
	rootCmd.Flags().String("config", "", "optional YAML file overriding the flags above")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log.Init(log.Config{Level: log.Level(cfg.LogLevel), JSONOutput: cfg.LogJSON})
	serverLog := log.WithComponent("staffd")

	db, err := database.Open(cfg.MaxRecords)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", cfg.Port, err)
	}
	serverLog.Info().Int("port", cfg.Port).Int("max_clients", cfg.MaxClients).Msg("listening")

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, serverLog)
	}

	engine := query.New(db)
	d := dispatcher.New(ln, engine, cfg.MaxClients)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		serverLog.Info().Msg("signal received, shutting down")
		ln.Close()
		os.Exit(0)
	}()

	d.Run()
	serverLog.Info().Msg("shutdown complete")
	return nil
}

func serveMetrics(addr string, serverLog zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	serverLog.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		serverLog.Error().Err(err).Msg("metrics server stopped")
	}
}

type resolvedConfig struct {
	Port        int
	MaxClients  int
	MaxRecords  uint64
	LogLevel    string
	LogJSON     bool
	MetricsAddr string
}

func resolveConfig(cmd *cobra.Command) (resolvedConfig, error) {
	cfg := resolvedConfig{}
	cfg.Port, _ = cmd.Flags().GetInt("port")
	cfg.MaxClients, _ = cmd.Flags().GetInt("max-clients")
	cfg.MaxRecords, _ = cmd.Flags().GetUint64("max-records")
	cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	cfg.LogJSON, _ = cmd.Flags().GetBool("log-json")
	cfg.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return cfg, nil
	}

	file, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}
	if file.Port != 0 {
		cfg.Port = file.Port
	}
	if file.MaxClients != 0 {
		cfg.MaxClients = file.MaxClients
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogJSON {
		cfg.LogJSON = true
	}
	if file.MetricsAddr != "" {
		cfg.MetricsAddr = file.MetricsAddr
	}
	return cfg, nil
}
