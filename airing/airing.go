// Package airing looks up the next episode to air for a list of series.
//
// Each series page is fetched, parsed and reduced to a single line, strictly
// one series after another. The first failure aborts the whole lookup.
package airing

import (
	"context"
	"errors"
	"fmt"

	"github.com/nextairing/nextairing/log"
	"github.com/nextairing/nextairing/source"
	"github.com/nextairing/nextairing/util"
	"github.com/samber/lo"
)

// Airing is the lookup result of a single series.
type Airing struct {
	// Series identifier as given by the caller.
	Series string `json:"series"`
	// Episode is nil when nothing is scheduled.
	Episode *source.Episode `json:"episode"`
	// Line is the human-readable rendering.
	Line string `json:"line"`
}

// NoEpisodeLine renders the line printed for a series without a scheduled episode.
func NoEpisodeLine(series string) string {
	return fmt.Sprintf("%s: no episode scheduled to air", series)
}

// Lookup resolves every series in order. On the first error nothing is
// returned and the remaining series are not fetched.
func Lookup(ctx context.Context, fetcher Fetcher, series []string) ([]Airing, error) {
	airings := make([]Airing, 0, len(series))

	for _, s := range series {
		a, err := lookup(ctx, fetcher, s)
		if err != nil {
			return nil, err
		}

		airings = append(airings, a)
	}

	log.Infof("looked up %s", util.Quantify(len(airings), "series", "series"))
	return airings, nil
}

// Lines is Lookup reduced to the rendered lines.
func Lines(ctx context.Context, fetcher Fetcher, series []string) ([]string, error) {
	airings, err := Lookup(ctx, fetcher, series)
	if err != nil {
		return nil, err
	}

	return lo.Map(airings, func(a Airing, _ int) string {
		return a.Line
	}), nil
}

func lookup(ctx context.Context, fetcher Fetcher, series string) (Airing, error) {
	body, err := fetcher.Fetch(ctx, series)
	if err != nil {
		var fetchErr *FetchError
		if errors.As(err, &fetchErr) {
			return Airing{}, err
		}
		return Airing{}, &FetchError{Series: series, Cause: err}
	}

	episode, err := Extract(body)
	if err != nil {
		return Airing{}, withSeries(err, series)
	}

	if episode.IsAbsent() {
		log.Infof("%s: nothing scheduled", series)
		return Airing{Series: series, Line: NoEpisodeLine(series)}, nil
	}

	ep := episode.MustGet()
	log.Debugf("%s: matched %s", series, ep)
	return Airing{Series: series, Episode: ep, Line: ep.String()}, nil
}

// withSeries stamps the series identifier on extraction errors.
func withSeries(err error, series string) error {
	var missing *MissingFieldError
	if errors.As(err, &missing) {
		missing.Series = series
		return missing
	}

	var parse *ParseError
	if errors.As(err, &parse) {
		parse.Series = series
		return parse
	}

	return err
}
