// Package source defines the domain model for upcoming television episodes.
package source

import (
	"fmt"
	"strings"
)

// Episode is the upcoming-episode record read from a series listing page.
//
// All fields hold the raw text found in the document, surrounding whitespace
// included. Trimming happens only when the episode is rendered.
type Episode struct {
	// Series label as printed on the page (e.g. "Doctor Who").
	Series string `json:"series"`
	// Episode number text (e.g. "S10E04"). Not parsed.
	Number string `json:"number"`
	// Episode title.
	Title string `json:"title"`
	// Time left until airing (e.g. "in 3 days").
	Countdown string `json:"countdown"`
}

// String renders the episode as `<series> <number>: "<title>" (<countdown>)`.
func (e *Episode) String() string {
	return fmt.Sprintf(
		"%s %s: \"%s\" (%s)",
		strings.TrimSpace(e.Series),
		strings.TrimSpace(e.Number),
		strings.TrimSpace(e.Title),
		strings.TrimSpace(e.Countdown),
	)
}
