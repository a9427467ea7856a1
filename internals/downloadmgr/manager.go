// Package downloadmgr downloads files in parallel
package downloadmgr

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// DownloadManager includes a queue to download
type DownloadManager struct {
	queue []Downloader
	// Concurrency is the number of parallel downloads
	Concurrency int
	// OnProgress is called after every finished download
	OnProgress func(done int, total int)
}

// Downloader allows downloadmgr to download the file
type Downloader interface {
	Download(ctx context.Context) error
}

// New creates a new downloadmgr
func New() *DownloadManager {
	return &DownloadManager{Concurrency: 4}
}

// Add adds a new item to the queue
func (d *DownloadManager) Add(i Downloader) {
	d.queue = append(d.queue, i)
}

// Len returns the number of queued items
func (d *DownloadManager) Len() int {
	return len(d.queue)
}

// Start downloads everything in the queue. The first error cancels the
// remaining downloads.
func (d *DownloadManager) Start(ctx context.Context) error {
	if len(d.queue) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}

	var done int64
	total := len(d.queue)
	for _, item := range d.queue {
		item := item
		g.Go(func() error {
			if err := item.Download(gctx); err != nil {
				return err
			}
			n := atomic.AddInt64(&done, 1)
			if d.OnProgress != nil {
				d.OnProgress(int(n), total)
			}
			return nil
		})
	}
	return g.Wait()
}
