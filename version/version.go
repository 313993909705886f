package version

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/metafates/gache"
	"github.com/nextairing/nextairing/filesystem"
	"github.com/nextairing/nextairing/where"
)

// ReleasesURL is the GitHub endpoint describing the latest release.
const ReleasesURL = "https://api.github.com/repos/nextairing/nextairing/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version, served from a two day cache when fresh.
func Latest(ctx context.Context, client *resty.Client) (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	version, err := fetchLatest(ctx, client, ReleasesURL)
	if err != nil {
		return "", err
	}

	_ = versionCacher.Set(version)
	return version, nil
}

func fetchLatest(ctx context.Context, client *resty.Client, url string) (string, error) {
	var release struct {
		TagName string `json:"tag_name"`
	}

	resp, err := client.R().
		SetContext(ctx).
		SetResult(&release).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return "", err
	}

	if !resp.IsSuccess() {
		return "", errors.New("release lookup failed: " + resp.Status())
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
