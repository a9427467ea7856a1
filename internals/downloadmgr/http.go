package downloadmgr

import (
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/minepkg/mcassets/internals/ownhttp"
)

// HTTPItem is a URL, target pair with optional properties that will be downloaded
// using http(s)
type HTTPItem struct {
	Client *http.Client
	URL    string
	Target string
	// Size is the expected size in bytes, 0 if unknown
	Size int64
	Sha1 string
}

// ErrInvalidSha is returned when the downloaded file's sha1 sum does not match the given sha1
type ErrInvalidSha struct {
	FileName    string
	ExpectedSha string
	ActualSha   string
}

func (e *ErrInvalidSha) Error() string {
	return fmt.Sprintf(
		"File corrupted: %s sha1 is invalid.\n\texpected to be \"%s\"\n\tbut actually is \"%s\"\n",
		e.FileName,
		e.ExpectedSha,
		e.ActualSha,
	)
}

// Download downloads the item to the defined target using http.
// The target is only created if the download (and the sha check) succeeded.
func (i *HTTPItem) Download(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(i.Target), os.ModePerm); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.URL, nil)
	if err != nil {
		return err
	}

	client := i.Client
	if client == nil {
		client = ownhttp.New()
	}

	fileRes, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error while fetching %s: %w", i.URL, err)
	}
	defer fileRes.Body.Close()

	if fileRes.StatusCode != http.StatusOK {
		return fmt.Errorf("invalid status code: %s from %s", fileRes.Status, fileRes.Request.URL)
	}

	dest, err := os.CreateTemp(filepath.Dir(i.Target), "."+filepath.Base(i.Target)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(dest.Name())
	defer dest.Close()

	hasher := sha1.New()
	written, err := io.Copy(io.MultiWriter(dest, hasher), fileRes.Body)
	if err != nil {
		return err
	}
	if i.Size != 0 && written != i.Size {
		return fmt.Errorf("%s: expected %d bytes, got %d", i.URL, i.Size, written)
	}
	if err := dest.Sync(); err != nil {
		return err
	}

	// check sha if there is one set
	if actualSha := fmt.Sprintf("%x", hasher.Sum(nil)); i.Sha1 != "" && actualSha != i.Sha1 {
		return &ErrInvalidSha{i.Target, i.Sha1, actualSha}
	}

	if err := dest.Close(); err != nil {
		return err
	}
	return os.Rename(dest.Name(), i.Target)
}

// NewHTTPItem creates a Item to be queued that will download the file using HTTP(S)
func NewHTTPItem(URL string, Target string) *HTTPItem {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	if Target == "" {
		panic("Target can not be empty")
	}
	return &HTTPItem{URL: URL, Target: Target}
}
