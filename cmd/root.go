// Package cmd implements the command-line interface for aniserve.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anisan-cli/aniserve/api"
	"github.com/anisan-cli/aniserve/constant"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/provider"
	"github.com/anisan-cli/aniserve/server"
	"github.com/anisan-cli/aniserve/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().String("host", "", "Address the HTTP server binds to")
	lo.Must0(viper.BindPFlag(key.ServerHost, rootCmd.PersistentFlags().Lookup("host")))

	rootCmd.PersistentFlags().IntP("port", "p", 0, "Port the HTTP server listens on")
	lo.Must0(viper.BindPFlag(key.ServerPort, rootCmd.PersistentFlags().Lookup("port")))

	rootCmd.PersistentFlags().StringP("source", "S", "", "Provider source backing the API")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("source", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var sources []string
		for _, p := range provider.Builtins() {
			sources = append(sources, p.ID)
		}
		return sources, cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.DefaultSource, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.Flags().Bool("insecure-tls", false, "Skip TLS certificate verification on provider requests")
	lo.Must0(viper.BindPFlag(key.ProviderInsecureTLS, rootCmd.Flags().Lookup("insecure-tls")))
}

// rootCmd runs the HTTP API server.
var rootCmd = &cobra.Command{
	Use:   constant.Aniserve,
	Short: "An HTTP JSON API for anime search, metadata, episodes, and stream links",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		p, ok := provider.Default()
		if !ok {
			handleErr(fmt.Errorf("unknown source %q", viper.GetString(key.DefaultSource)))
		}

		src, err := p.CreateSource()
		handleErr(err)

		version.Notify()

		srv := server.New(api.New(src))
		log.Infof("serving %s API on %s", src.Name(), srv.Addr())

		// Drain in-flight requests on SIGINT/SIGTERM before exiting.
		done := make(chan error, 1)
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			log.Info("shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			done <- srv.Shutdown(ctx)
		}()

		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			handleErr(err)
		}
		handleErr(<-done)
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "error: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
