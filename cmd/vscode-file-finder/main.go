package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sarmad-abualkaz/vscode-helper/internal/config"
	"github.com/sarmad-abualkaz/vscode-helper/internal/helper"
	"github.com/sarmad-abualkaz/vscode-helper/internal/session"
	"github.com/sarmad-abualkaz/vscode-helper/server"
)

var rootCmd = &cobra.Command{
	Use:   "vscode-file-finder",
	Short: "An MCP server exposing file search and open-in-editor tools",
	Long: `vscode-file-finder serves the search_files and open_file tools over the
MCP Streamable HTTP transport (or stdio with --stdio), delegating the
actual work to the vscode-helper binary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Address = addr
		}
		if cmd.Flags().Changed("path") {
			cfg.Path = mountPath
		}
		if cmd.Flags().Changed("helper") {
			cfg.Helper = helperBin
		}
		if verbose {
			cfg.Verbose = true
		}

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))

		runner := &helper.Runner{Bin: cfg.Helper}
		if _, err := runner.Resolve(); err != nil {
			logger.Warn("helper binary not found; tool calls will fail until it is built", "error", err)
		}

		srv := server.New(runner, logger)

		if stdio {
			logger.Info("serving MCP over stdio")
			return srv.Run(ctx, &mcp.StdioTransport{})
		}

		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
		endpoint := session.Endpoint(cfg.Path, handler)
		manager := session.NewManager(session.NewHTTPServer(cfg.Address, endpoint, logger), logger)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if err := manager.Start(ctx); err != nil {
				return err
			}
			logger.Info("MCP streamable HTTP server ready", "addr", cfg.Address, "path", cfg.Path)

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			manager.Stop(shutdownCtx)
			return nil
		})
		return g.Wait()
	},
}

var (
	configPath string
	addr       string
	mountPath  string
	helperBin  string
	stdio      bool
	verbose    bool

	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "HTTP listen address (host:port)")
	rootCmd.Flags().StringVar(&mountPath, "path", "/mcp", "HTTP path to mount the MCP handler")
	rootCmd.Flags().StringVar(&helperBin, "helper", "", "Path to the vscode-helper binary")
	rootCmd.Flags().BoolVar(&stdio, "stdio", false, "Serve over stdio instead of Streamable HTTP")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built at: %s)", version, commit, date)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
