// Package mojang fetches the version manifests of Minecraft releases
package mojang

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/minepkg/mcassets/internals/ownhttp"
)

// VersionManifestURL lists all Minecraft versions
const VersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

var (
	// ErrorNotFound gets returned when a 404 occured or a version does not exist
	ErrorNotFound = errors.New("resource not found")
)

// Client talks to the Mojang launcher meta api
type Client struct {
	// HTTP is the internal http client
	HTTP *http.Client
	// ManifestURL defaults to VersionManifestURL
	ManifestURL string
}

// New returns a new Client
func New() *Client {
	return NewWithClient(ownhttp.New())
}

// NewWithClient returns a new Client using a custom http client
func NewWithClient(client *http.Client) *Client {
	return &Client{
		HTTP:        client,
		ManifestURL: VersionManifestURL,
	}
}

// VersionManifest is the list of all versions
type VersionManifest struct {
	Latest struct {
		Release  string `json:"release"`
		Snapshot string `json:"snapshot"`
	} `json:"latest"`
	Versions []VersionEntry `json:"versions"`
}

// VersionEntry points to the details of one version
type VersionEntry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
	Sha1 string `json:"sha1"`
}

// Find returns the entry of a version id. "latest" and "snapshot" resolve
// to the newest release or snapshot.
func (v *VersionManifest) Find(id string) (*VersionEntry, bool) {
	switch id {
	case "latest":
		id = v.Latest.Release
	case "snapshot":
		id = v.Latest.Snapshot
	}
	for i := range v.Versions {
		if v.Versions[i].ID == id {
			return &v.Versions[i], true
		}
	}
	return nil, false
}

// Artifact is something that can be downloaded
type Artifact struct {
	Sha1 string `json:"sha1"`
	// Size in bytes
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// VersionDetails is the `<version>.json` of a version
type VersionDetails struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Downloads struct {
		Client Artifact `json:"client"`
	} `json:"downloads"`
	AssetIndex struct {
		ID string `json:"id"`
		Artifact
	} `json:"assetIndex"`
}

// VersionManifest fetches the list of all versions
func (m *Client) VersionManifest(ctx context.Context) (*VersionManifest, error) {
	manifest := VersionManifest{}
	if err := m.getJSON(ctx, m.ManifestURL, &manifest); err != nil {
		return nil, err
	}
	return &manifest, nil
}

// Version fetches the details of a version entry
func (m *Client) Version(ctx context.Context, entry *VersionEntry) (*VersionDetails, error) {
	details := VersionDetails{}
	if err := m.getJSON(ctx, entry.URL, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// ResolveVersion fetches the manifest and the details of a version id
func (m *Client) ResolveVersion(ctx context.Context, id string) (*VersionDetails, error) {
	manifest, err := m.VersionManifest(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := manifest.Find(id)
	if !ok {
		return nil, fmt.Errorf("minecraft version %s: %w", id, ErrorNotFound)
	}
	return m.Version(ctx, entry)
}

func (m *Client) getJSON(ctx context.Context, url string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	res, err := m.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", url, ErrorNotFound)
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("mojang API did response with unexpected status %s", res.Status)
	}
	return json.NewDecoder(res.Body).Decode(v)
}
