package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"epoch/config"
	"epoch/infras/otel"
	"epoch/internal/domains/timezone/model"
	"epoch/shared/constant"
	"epoch/shared/timestamp"
)

type Timezone interface {
	List(ctx context.Context) []model.Zone
	Reset()
}

// catalogImpl assembles the selectable timezone list and caches it for a
// configured TTL. The cache is owned by this struct, guarded by its mutex, and
// resettable, so tests control it deterministically; there is no package-level
// state.
type catalogImpl struct {
	cfg  *config.Config
	otel otel.Otel

	mu       sync.Mutex
	now      func() time.Time
	ttl      time.Duration
	zones    []model.Zone
	loadedAt time.Time
}

func New(cfg *config.Config, ot otel.Otel) Timezone {
	return &catalogImpl{
		cfg:  cfg,
		otel: ot,
		now:  time.Now,
		ttl:  time.Duration(cfg.Catalog.TTLSeconds) * time.Second,
	}
}

// NewWithClock builds a catalog with an injected clock for deterministic
// cache-expiry tests.
func NewWithClock(cfg *config.Config, ot otel.Otel, clock func() time.Time) Timezone {
	return &catalogImpl{
		cfg:  cfg,
		otel: ot,
		now:  clock,
		ttl:  time.Duration(cfg.Catalog.TTLSeconds) * time.Second,
	}
}

// List returns the catalog, rebuilding it when it has never been assembled or
// its TTL has lapsed. Offsets are captured at assembly time, so a rebuild also
// refreshes DST transitions.
func (c *catalogImpl) List(ctx context.Context) []model.Zone {
	_, scope := c.otel.NewScope(ctx, constant.OtelCatalogScopeName, constant.OtelCatalogScopeName+".List")
	defer scope.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.zones == nil || c.now().Sub(c.loadedAt) > c.ttl {
		c.zones = c.assemble()
		c.loadedAt = c.now()

		scope.AddEvent("Timezone catalog rebuilt")
	}

	scope.SetAttribute("catalog.size", len(c.zones))

	return c.zones
}

// Reset drops the cached catalog so the next List rebuilds it.
func (c *catalogImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.zones = nil
	c.loadedAt = time.Time{}
}

func (c *catalogImpl) assemble() []model.Zone {
	at := c.now()

	names := zoneNames
	if host := timestamp.CurrentTimezone(); host != constant.TimezoneUTC && !contains(names, host) {
		names = append(append([]string{}, names...), host)
	}

	zones := make([]model.Zone, 0, len(names)+1)
	zones = append(zones, model.Zone{ID: constant.TimezoneUTC, Offset: "UTC+00:00"})

	for _, name := range names {
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Warn().Err(err).Str("timezone", name).Msg("Skipping timezone missing from host tzdata")

			continue
		}

		_, offset := at.In(loc).Zone()

		zones = append(zones, model.Zone{
			ID:            name,
			Offset:        offsetLabel(offset),
			OffsetSeconds: offset,
		})
	}

	sort.Slice(zones[1:], func(i, j int) bool {
		return zones[i+1].ID < zones[j+1].ID
	})

	return zones
}

func offsetLabel(seconds int) string {
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}

	return fmt.Sprintf("UTC%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}

	return false
}
