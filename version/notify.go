package version

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/nextairing/nextairing/color"
	"github.com/nextairing/nextairing/constant"
	"github.com/nextairing/nextairing/icon"
	"github.com/nextairing/nextairing/key"
	"github.com/nextairing/nextairing/style"
	"github.com/nextairing/nextairing/util"
	"github.com/spf13/viper"
)

// Notify tells the user on w when a newer release than the running one exists.
// It does nothing unless cli.version_check is enabled.
func Notify(ctx context.Context, w io.Writer, client *resty.Client) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	erase := util.PrintErasable(w, fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx, client)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	_, _ = fmt.Fprintf(w, "\n%s New version is available %s %s\n%s\n\n",
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/nextairing/nextairing/releases/tag/v"+latest),
	)
}
