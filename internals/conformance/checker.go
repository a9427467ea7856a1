package conformance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/minepkg/mcassets/pkg/assets"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Target is one asset pack to check
type Target struct {
	Pack *assets.AssetPack
	// Version is the Minecraft version of the pack ("1.14.4"). Optional,
	// enables version specific checks.
	Version string
}

// Failure is a resource that could not be loaded
type Failure struct {
	Root     string
	Location assets.ResourceLocation
	Err      error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Location, f.Err)
}

// Report is the result of checking one target
type Report struct {
	Root     string
	Version  string
	Checked  map[assets.ResourceKind]int
	Failures []Failure
	// Duration is the time from the start of the run until the last
	// resource of this target was checked
	Duration time.Duration

	pending int
}

// Total returns the number of checked resources
func (r *Report) Total() int {
	total := 0
	for _, n := range r.Checked {
		total += n
	}
	return total
}

// OK is true if nothing failed
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Checker loads every blockstates file and model of its targets and
// collects everything that fails to load
type Checker struct {
	queue []Target

	// Concurrency limits how many files are checked at once (16 by default)
	Concurrency int
	// StrictTextures also reports models whose texture variables do not resolve.
	// Off by default as template models leave variables for their children.
	StrictTextures bool
	// OnProgress is called after each checked resource
	OnProgress func(done int, total int)
	Log        log.FieldLogger
}

// New creates a new Checker
func New() *Checker {
	return &Checker{Concurrency: 16, Log: log.StandardLogger()}
}

// Add adds a pack to the queue
func (c *Checker) Add(t Target) {
	c.queue = append(c.queue, t)
}

type job struct {
	report *Report
	cache  *assets.Cache
	loc    assets.ResourceLocation
}

// Start checks all queued targets. The returned error is only set if
// ctx was canceled or a pack could not be enumerated, failing resources
// end up in the reports.
func (c *Checker) Start(ctx context.Context) ([]*Report, error) {
	reports := make([]*Report, 0, len(c.queue))
	var jobs []job
	started := time.Now()

	for _, target := range c.queue {
		report := &Report{
			Root:    target.Pack.Root(),
			Version: target.Version,
			Checked: map[assets.ResourceKind]int{},
		}
		reports = append(reports, report)
		cache := assets.NewCache(target.Pack)

		found, err := c.collect(cache, report)
		if err != nil {
			return reports, err
		}
		jobs = append(jobs, found...)
		report.pending = len(found)

		if target.Version != "" {
			if _, err := semver.NewVersion(target.Version); err != nil {
				c.Log.WithFields(log.Fields{"root": report.Root, "version": target.Version}).
					Debug("not a release version, skipping version checks")
			} else if err := checkVersion(target); err != nil {
				report.Failures = append(report.Failures, Failure{
					Root:     report.Root,
					Location: assets.BlockStatesLocation("oak_planks"),
					Err:      err,
				})
			}
		}
	}

	c.Log.WithField("resources", len(jobs)).Debug("starting check")

	var mu sync.Mutex
	var done int64

	g, gctx := errgroup.WithContext(ctx)
	limit := c.Concurrency
	if limit <= 0 {
		limit = 16
	}
	g.SetLimit(limit)

	for _, j := range jobs {
		j := j
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			err := c.check(j)

			mu.Lock()
			j.report.Checked[j.loc.Kind]++
			if err != nil {
				j.report.Failures = append(j.report.Failures, Failure{Root: j.report.Root, Location: j.loc, Err: err})
			}
			j.report.pending--
			if j.report.pending == 0 {
				j.report.Duration = time.Since(started)
			}
			mu.Unlock()

			if err != nil {
				c.Log.WithFields(log.Fields{
					"kind": j.loc.Kind.String(),
					"id":   j.loc.ID.String(),
				}).WithError(err).Debug("check failed")
			}
			n := atomic.AddInt64(&done, 1)
			if c.OnProgress != nil {
				c.OnProgress(int(n), len(jobs))
			}
			return nil
		})
	}
	err := g.Wait()

	for _, report := range reports {
		// targets without resources or canceled runs
		if report.Duration == 0 {
			report.Duration = time.Since(started)
		}
		sort.Slice(report.Failures, func(i, j int) bool {
			return report.Failures[i].Location.String() < report.Failures[j].Location.String()
		})
	}
	if err == nil {
		err = ctx.Err()
	}
	return reports, err
}

func (c *Checker) collect(cache *assets.Cache, report *Report) ([]job, error) {
	pack := cache.Pack()
	namespaces, err := pack.Namespaces()
	if err != nil {
		return nil, err
	}

	var jobs []job
	add := func(loc assets.ResourceLocation, _ string) error {
		jobs = append(jobs, job{report: report, cache: cache, loc: loc})
		return nil
	}
	for _, ns := range namespaces {
		for _, kind := range []assets.ResourceKind{assets.KindBlockStates, assets.KindBlockModel, assets.KindItemModel} {
			err := pack.ForEach(ns, kind, add)
			// most mods only ship some of the directories
			if err != nil && !assets.IsNotFound(err) {
				return nil, err
			}
		}
		c.Log.WithFields(log.Fields{"root": report.Root, "namespace": ns}).Debug("collected resources")
	}
	return jobs, nil
}

func (c *Checker) check(j job) error {
	switch j.loc.Kind {
	case assets.KindBlockStates:
		_, err := j.cache.LoadBlockStates(string(j.loc.ID))
		return err
	case assets.KindBlockModel, assets.KindItemModel:
		m, err := j.cache.LoadModel(j.loc)
		if err != nil {
			return err
		}
		chain, err := m.ResolveParentChain(j.cache)
		if err != nil {
			return err
		}
		if c.StrictTextures {
			_, err = assets.ResolveTextures(chain)
		}
		return err
	}
	return nil
}

// checkVersion checks that oak planks use the single variant name and model
// reference style of the version
func checkVersion(t Target) error {
	variantName, err := assets.SingleVariantName(t.Version)
	if err != nil {
		return err
	}
	wantModel, err := assets.ModelReference(t.Version, "oak_planks")
	if err != nil {
		return err
	}

	states, err := t.Pack.LoadBlockStates("oak_planks")
	if err != nil {
		return err
	}
	variant, ok, err := states.Variant(variantName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expected variant %q for version %s", variantName, t.Version)
	}
	if len(variant) != 1 || variant[0].Model != wantModel {
		return fmt.Errorf("expected model %q for version %s, got %+v", wantModel, t.Version, variant)
	}
	return nil
}
