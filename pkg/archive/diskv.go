// Package archive is the export sink behind the print action. It writes
// weighing records under the configured base path; the session never
// reads its state back from here.
package archive

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/weighbridge/pkg/manifest"
)

// Archive stores exported manifest entries.
type Archive interface {
	Save(entries ...*manifest.Entry) error
	List(ctx context.Context) []*manifest.Entry
}

// Load creates an Archive backed by diskv using the provided config.
func Load(cfg Config) (Archive, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &sink{d: diskv.New(diskv.Options{
		BasePath:          cfg.BasePath(),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type sink struct {
	d *diskv.Diskv
}

func (s *sink) Save(entries ...*manifest.Entry) error {
	for _, e := range entries {
		key := toKey(e)
		data, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if err := s.d.Write(key, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *sink) List(ctx context.Context) []*manifest.Entry {
	all := make([]*manifest.Entry, 0)
	for key := range s.d.Keys(ctx.Done()) {
		val, err := s.d.Read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		e := manifest.Entry{}
		if err := json.Unmarshal(val, &e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, &e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		ld, rd := all[i].Date.String(), all[j].Date.String()
		if ld == rd {
			return all[i].ID < all[j].ID
		}
		return ld < rd
	})
	return all
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `date-id`
func toKey(e *manifest.Entry) string {
	if e.ID == "" {
		b, _ := json.Marshal(e)
		id := md5.Sum(b)
		e.ID = fmt.Sprintf("%x", id[:8])
	}
	return fmt.Sprintf("%s-%s", e.Date.String(), e.ID)
}
