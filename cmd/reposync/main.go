package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/forgeline/reposync/internal/githost"
	"github.com/forgeline/reposync/internal/gitsync"
	"github.com/forgeline/reposync/internal/version"
)

var (
	red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	green = color.New(color.FgHiGreen).SprintFunc()
	cyan  = color.New(color.FgHiCyan).SprintFunc()
)

var rootCmd = &cobra.Command{
	Use:           "reposync",
	Short:         "Sync project files with a hosted Git repository",
	Version:       version.Detailed(),
	SilenceUsage:  true,
	SilenceErrors: true,
	// logging is configured here, after cobra parsed the flags, so
	// --debug takes effect and not just the REPOSYNC_DEBUG env var
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().StringP("server", "s", githost.DefaultBaseURL, "Git hosting API base URL")
	rootCmd.PersistentFlags().StringP("token", "t", "", "bearer credential (env REPOSYNC_TOKEN)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	viper.SetEnvPrefix("reposync")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(importCmd, pushCmd)
}

// newEngine builds the sync engine from the resolved configuration.
func newEngine() *gitsync.Engine {
	host := githost.New(viper.GetString("server")).
		SetToken(viper.GetString("token"))
	return gitsync.NewEngine(host)
}

func logLevel() slog.Level {
	if viper.GetBool("debug") {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

func setupLogging() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel(),
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgHiRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
