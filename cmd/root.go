// Package cmd implements the nextairing command-line interface.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nextairing/nextairing/airing"
	"github.com/nextairing/nextairing/color"
	"github.com/nextairing/nextairing/constant"
	"github.com/nextairing/nextairing/icon"
	"github.com/nextairing/nextairing/key"
	"github.com/nextairing/nextairing/log"
	"github.com/nextairing/nextairing/network"
	"github.com/nextairing/nextairing/style"
	"github.com/nextairing/nextairing/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("json", "j", false, "Print the lookup result as JSON")

	rootCmd.PersistentFlags().String("host", "", "Airing site host serving /tv-shows/<series>")
	lo.Must0(viper.BindPFlag(key.AiringHost, rootCmd.PersistentFlags().Lookup("host")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context(), cmd.OutOrStdout(), newClient())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.App + " [series...]",
	Short: "Show the next episode to air for each series",
	Long: constant.Logo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Show the next episode to air for each series"),
	Example: "  nextairing doctor-who the-expanse\n  nextairing --json severance",
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, nil)
			return
		}

		ctx, cancel := lookupContext(cmd.Context())
		defer cancel()

		fetcher := airing.NewHTTPFetcher(
			newClient(),
			viper.GetString(key.AiringScheme),
			viper.GetString(key.AiringHost),
		)

		handleErr(printAirings(ctx, cmd.OutOrStdout(), fetcher, args, lo.Must(cmd.Flags().GetBool("json"))))
	},
}

// Execute runs the root command.
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

// printAirings looks every series up and writes the result only once all of
// them succeeded, so a failure never leaves partial output behind.
func printAirings(ctx context.Context, w io.Writer, fetcher airing.Fetcher, series []string, asJson bool) error {
	airings, err := airing.Lookup(ctx, fetcher, series)
	if err != nil {
		return err
	}

	if asJson {
		return json.NewEncoder(w).Encode(airings)
	}

	for _, a := range airings {
		if _, err := fmt.Fprintln(w, a.Line); err != nil {
			return err
		}
	}

	return nil
}

func lookupContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}

	timeout := viper.GetInt(key.NetworkTimeout)
	if timeout <= 0 {
		return context.WithCancel(parent)
	}

	return context.WithTimeout(parent, time.Duration(timeout)*time.Second)
}

func newClient() *resty.Client {
	return network.NewClient(0, viper.GetString(key.NetworkUserAgent))
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
