package app

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"strings"
	"sync"

	"orbitfx/internal/config"
	"orbitfx/internal/core"
)

// SweepAxis is one scene parameter and the values to try for it.
type SweepAxis struct {
	Key    string
	Values []string
}

// ParseAxis reads an axis in key=v1,v2,... form.
func ParseAxis(s string) (SweepAxis, error) {
	key, list, ok := strings.Cut(s, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	if !ok || key == "" {
		return SweepAxis{}, fmt.Errorf("%w: %q", config.ErrInvalidOverride, s)
	}
	var values []string
	for _, v := range strings.Split(list, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return SweepAxis{}, fmt.Errorf("%w: %q has no values", config.ErrInvalidOverride, s)
	}
	return SweepAxis{Key: key, Values: values}, nil
}

// Combinations expands axes into every parameter assignment, varying the
// last axis fastest.
func Combinations(axes []SweepAxis) []map[string]string {
	combos := []map[string]string{{}}
	for _, axis := range axes {
		next := make([]map[string]string, 0, len(combos)*len(axis.Values))
		for _, combo := range combos {
			for _, v := range axis.Values {
				c := maps.Clone(combo)
				c[axis.Key] = v
				next = append(next, c)
			}
		}
		combos = next
	}
	return combos
}

// SweepResult summarises one scenario.
type SweepResult struct {
	Options map[string]string

	// MeanVisible is the average number of sprites drawn per frame.
	MeanVisible float64
	// OnScreen is the fraction of drawn sprites whose center lies in the view.
	OnScreen float64
	// MeanOpacity averages opacity over drawn sprites.
	MeanOpacity float64
	// Respawns counts renewals over the whole run.
	Respawns int
	// RespawnsPerSecond normalises Respawns by simulated time.
	RespawnsPerSecond float64

	Err error
}

// Label renders the varied options of r in axis order.
func (r SweepResult) Label(axes []SweepAxis) string {
	parts := make([]string, 0, len(axes))
	for _, axis := range axes {
		parts = append(parts, axis.Key+"="+r.Options[axis.Key])
	}
	return strings.Join(parts, " ")
}

type respawnCounter interface {
	Respawned() int
}

// Sweep runs every combination of axes on top of base for ticks frames of
// deltaMs each, using up to workers goroutines. Results keep combination
// order.
func Sweep(ctx context.Context, base *config.Config, axes []SweepAxis, ticks int, deltaMs float64, workers int) ([]SweepResult, error) {
	combos := Combinations(axes)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(combos))

	results := make([]SweepResult, len(combos))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = runScenario(base, combos[i], ticks, deltaMs)
			}
		}()
	}

feed:
	for i := range combos {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(base *config.Config, options map[string]string, ticks int, deltaMs float64) SweepResult {
	res := SweepResult{Options: options}

	cfg := *base
	cfg.Scene.Params = maps.Clone(base.Scene.Params)
	if cfg.Scene.Params == nil {
		cfg.Scene.Params = map[string]string{}
	}
	maps.Copy(cfg.Scene.Params, options)

	scene, err := BuildScene(&cfg)
	if err != nil {
		res.Err = err
		return res
	}
	counter, _ := scene.(respawnCounter)
	size := scene.Size()

	var drawn, inside int
	var opacity float64
	for range ticks {
		scene.Advance(deltaMs)
		if counter != nil {
			res.Respawns += counter.Respawned()
		}
		for rec := range scene.Sprites() {
			drawn++
			opacity += rec.Opacity
			if inView(rec, size) {
				inside++
			}
		}
	}

	if ticks > 0 {
		res.MeanVisible = float64(drawn) / float64(ticks)
		if seconds := float64(ticks) * core.SanitizeDelta(deltaMs) / 1000; seconds > 0 {
			res.RespawnsPerSecond = float64(res.Respawns) / seconds
		}
	}
	if drawn > 0 {
		res.OnScreen = float64(inside) / float64(drawn)
		res.MeanOpacity = opacity / float64(drawn)
	}
	return res
}

func inView(rec core.SpriteRecord, size core.Size) bool {
	return rec.X >= 0 && rec.Y >= 0 && rec.X <= size.W && rec.Y <= size.H
}
