package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/escuelaing/webframework/pkg/config"
	"github.com/escuelaing/webframework/pkg/logging"
	"github.com/escuelaing/webframework/pkg/version"
	"github.com/escuelaing/webframework/web"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// 打包进二进制的 webroot 资源
//
//go:embed resources
var embeddedResources embed.FS

var (
	configPath  string
	debug       bool
	showVersion bool
	cfg         *config.Config
)

// newRootCmd 根命令直接启动服务
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: version.Description,
		Long: fmt.Sprintf(`%s - %s

Serves registered routes, static files under the configured root,
and a few built-in demo endpoints, one request per connection.
`, version.AppName, version.Description),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				cfg = config.LoadOrDefault(configPath)
			} else {
				cfg = config.Default()
			}

			logging.InitGlobalLogger(debug, cfg)
			logging.Debug("Debug logging enabled")
			if configPath != "" {
				logging.InfoWith("Configuration loaded", map[string]interface{}{
					"path": configPath,
				})
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
				return nil
			}

			srv, err := newServer(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"Web Framework Server running on http://localhost:%d\n", cfg.Server.Port)

			if err := srv.ListenAndServe(ctx); err != nil {
				logging.ErrorWith("Server failed", map[string]interface{}{
					"addr":  srv.Addr(),
					"error": err.Error(),
				})
				return fmt.Errorf("server failed: %w", err)
			}
			logging.Info("Server stopped")
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging to stderr")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newRoutesCmd())
	return rootCmd
}

// newRoutesCmd 打印路由表和静态文件配置，不启动服务
func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered routes in dispatch order",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := newServer(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			method := color.New(color.FgCyan).SprintFunc()
			path := color.New(color.Bold).SprintFunc()
			for _, route := range srv.Routes() {
				fmt.Fprintf(out, "%s\t%s\n", method("GET"), path(route.Path))
			}
			fmt.Fprintf(out, "static root: %s\n", srv.StaticRoot())
			return nil
		},
	}
}

// newServer 按配置创建服务器并注册演示路由
func newServer(cfg *config.Config) (*web.Server, error) {
	resources, err := resourceFS(cfg)
	if err != nil {
		return nil, err
	}

	srv := web.New(
		web.WithAddr(cfg.Addr()),
		web.WithResources(resources),
		web.WithDefaultDocument(cfg.Server.DefaultDocument),
		web.WithStrictNotFound(cfg.Server.StrictNotFound),
		web.WithLogger(logging.WithComponent("web")),
	)
	srv.StaticFiles(cfg.Static.Root)
	registerRoutes(srv)
	return srv, nil
}

// resourceFS 配置了 static.dir 时从磁盘读取，否则使用内置资源
func resourceFS(cfg *config.Config) (fs.FS, error) {
	if cfg.Static.Dir != "" {
		return os.DirFS(cfg.Static.Dir), nil
	}
	sub, err := fs.Sub(embeddedResources, "resources")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded resources: %w", err)
	}
	return sub, nil
}
