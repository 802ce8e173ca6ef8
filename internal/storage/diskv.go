package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/alexanderramin/choreplan/internal/domain"
	"github.com/alexanderramin/choreplan/internal/snapshot"
)

const diskvSuffix = ".json"

// Diskv keeps each slot as a JSON file directly under basePath.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

// NewDiskv returns a file-backed persister for the named slot.
func NewDiskv(basePath, name string) *Diskv {
	return &Diskv{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		key:      name + diskvSuffix,
	}
}

func (p *Diskv) Load(context.Context) (*domain.PlannerState, error) {
	if !p.d.Has(p.key) {
		return nil, ErrNoState
	}
	data, err := p.d.Read(p.key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p.key, err)
	}
	state, err := snapshot.Decode(data, snapshot.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.key, err)
	}
	return state, nil
}

func (p *Diskv) Save(_ context.Context, state *domain.PlannerState) error {
	data, err := snapshot.Encode(state, snapshot.FormatJSON, noTimestamp)
	if err != nil {
		return err
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("writing %s: %w", p.key, err)
	}
	return nil
}

func (p *Diskv) Describe(ctx context.Context) (Description, error) {
	d := Description{Backend: "diskv", Location: p.basePath}

	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasSuffix(key, diskvSuffix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		info := SlotInfo{
			Name:    strings.TrimSuffix(key, diskvSuffix),
			Current: key == p.key,
		}
		if fi, err := os.Stat(filepath.Join(p.basePath, key)); err == nil {
			info.UpdatedAt = fi.ModTime().UTC()
		}
		d.Slots = append(d.Slots, info)
	}
	return d, nil
}

func (p *Diskv) Reset(context.Context) error {
	if !p.d.Has(p.key) {
		return nil
	}
	if err := p.d.Erase(p.key); err != nil {
		return fmt.Errorf("erasing %s: %w", p.key, err)
	}
	return nil
}
