package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/portfolio/internal/buildinfo"
	"github.com/dmitrijs2005/portfolio/internal/client/cli"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Config flags (-a, -d, -t, -n, -l, -c, -e) are read by the config package
// straight from os.Args, so cobra is told to let unknown flags through.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio [location]",
		Short: "Portfolio console",
		Long: `Browse the portfolio and, after login, manage its content.

An optional location opens a screen on start: "/admin" or "#admin" for the
admin area, "#about", "#projects" or "#contact" for a public section.`,
		Args:               cobra.MaximumNArgs(1),
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), config.LoadConfig())
			if err != nil {
				return err
			}
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			app.Run(cmd.Context(), start)
			return nil
		},
	}

	cmd.AddCommand(showCmd(), logoutCmd(), versionCmd())
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "show home|about|projects",
		Short:              "Print one public screen and exit",
		ValidArgs:          []string{"home", "about", "projects"},
		Args:               cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), config.LoadConfig())
			if err != nil {
				return err
			}
			defer app.Close()

			switch args[0] {
			case "about":
				return app.About(cmd.Context())
			case "projects":
				return app.Projects(cmd.Context())
			default:
				return app.Home(cmd.Context())
			}
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "logout",
		Short:              "Forget the stored session",
		Args:               cobra.NoArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), config.LoadConfig())
			if err != nil {
				return err
			}
			defer app.Close()
			return app.Logout(cmd.Context())
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}
