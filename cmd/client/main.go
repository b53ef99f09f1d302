// Command client is the JejaKarbon terminal client: an interactive
// shell of screens backed by the remote REST API, plus a few direct
// subcommands for scripting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jejakarbon/cli/internal/client/api"
	"github.com/jejakarbon/cli/internal/client/nav"
	"github.com/jejakarbon/cli/internal/client/session"
	"github.com/jejakarbon/cli/internal/client/ui"
	"github.com/jejakarbon/cli/internal/client/viewmodel"
	"github.com/jejakarbon/cli/internal/config"
	"github.com/jejakarbon/cli/internal/logger"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// app bundles the wired collaborators behind every subcommand.
type app struct {
	cfg  *config.Options
	log  *logger.Logger
	sess *session.Store
	api  *api.Client
	nav  *nav.Navigator
}

func loadApp(configPath string) (*app, error) {
	cfg := config.Load(configPath)

	log := logger.New()
	if err := log.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}

	sess := session.NewStore(cfg.SessionFile)
	if err := sess.Load(); err != nil {
		log.Log.Warn("session rehydrate failed, starting logged out", zap.Error(err))
	}

	client := api.New(cfg.BaseURL, sess, cfg.SessionFile, log.Log)
	client.SetTimeout(cfg.Timeout())

	return &app{
		cfg:  cfg,
		log:  log,
		sess: sess,
		api:  client,
		nav:  nav.New(sess),
	}, nil
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "jejakarbon",
		Short:         "Personal carbon footprint tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")

	root.AddCommand(newShellCmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	root.AddCommand(newDashboardCmd(&configPath))
	root.AddCommand(newVersionCmd())
	return root
}

func newShellCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = a.log.Log.Sync() }()
			return ui.Run(ui.Deps{API: a.api, Session: a.sess, Nav: a.nav, Log: a.log.Log})
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			res, err := a.api.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			if err := a.sess.SetAuth(res.Token, res.Role, res.User); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed in")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := a.sess.Logout(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newDashboardCmd(configPath *string) *cobra.Command {
	var timeframe string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the carbon dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			dash, err := a.api.Dashboard(context.Background(), timeframe)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "daily average   %s (%s)\n",
				viewmodel.FormatKg(dash.DailyAverage.Value), viewmodel.FormatDelta(dash.DailyAverage))
			_, _ = fmt.Fprintf(out, "monthly average %s (%s)\n",
				viewmodel.FormatKg(dash.MonthlyAverage.Value), viewmodel.FormatDelta(dash.MonthlyAverage))
			for _, p := range viewmodel.TrendFor(dash, timeframe) {
				_, _ = fmt.Fprintf(out, "%-10s %.1f\n", p.Label, p.Value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&timeframe, "timeframe", "7_days", "trend window token")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build version and date",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "JejaKarbon Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
