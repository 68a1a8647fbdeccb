// Package catalog provides the technology profile catalog: a load-once,
// read-only lookup of known technologies with difficulty, cost tiers,
// alternatives and learning resources. The catalog is the pipeline's only
// component allowed to fail fatally, since nothing can be scored without it.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultDataset []byte

// dataset is the on-disk shape of the profile data.
type dataset struct {
	Profiles []TechnologyProfile `yaml:"profiles"`
}

// Catalog is a lazily-loaded technology profile lookup. Construct with
// New, inject where needed, call Load before first use (Load is idempotent
// and safe for concurrent callers). After a successful Load the catalog is
// never mutated.
type Catalog struct {
	path string // optional dataset override; empty means embedded default

	mu       sync.Mutex
	loaded   bool
	byName   map[string]*TechnologyProfile   // lowercase name -> profile
	byCat    map[string][]*TechnologyProfile // lowercase category -> profiles
	profiles []TechnologyProfile
}

// New creates a catalog backed by the dataset at path, or the embedded
// default dataset when path is empty.
func New(path string) *Catalog {
	return &Catalog{path: path}
}

// Load reads and indexes the dataset. Subsequent calls are no-ops.
func (c *Catalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}

	raw := defaultDataset
	if c.path != "" {
		data, err := os.ReadFile(c.path)
		if err != nil {
			return fmt.Errorf("reading technology dataset %s: %w", c.path, err)
		}
		raw = data
	}

	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return fmt.Errorf("parsing technology dataset: %w", err)
	}
	if len(ds.Profiles) == 0 {
		return fmt.Errorf("technology dataset is empty")
	}

	c.profiles = ds.Profiles
	c.byName = make(map[string]*TechnologyProfile, len(ds.Profiles))
	c.byCat = make(map[string][]*TechnologyProfile)
	for i := range c.profiles {
		p := &c.profiles[i]
		c.byName[strings.ToLower(p.Name)] = p
		cat := strings.ToLower(p.Category)
		c.byCat[cat] = append(c.byCat[cat], p)
	}

	c.loaded = true
	return nil
}

// Loaded reports whether Load has completed successfully.
func (c *Catalog) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Technology looks up a profile by name. Lookup is case-insensitive and
// falls back to a bidirectional substring scan, so "react" finds
// "React Native" and "Next.js 13.4.1" finds "Next.js". Exact matches win.
func (c *Catalog) Technology(name string) (TechnologyProfile, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return TechnologyProfile{}, false
	}

	if p, ok := c.byName[key]; ok {
		return *p, true
	}

	// Substring fallback over sorted keys keeps the first match stable.
	keys := make([]string, 0, len(c.byName))
	for k := range c.byName {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(key, k) || strings.Contains(k, key) {
			return *c.byName[k], true
		}
	}
	return TechnologyProfile{}, false
}

// FallbackProfile synthesizes a neutral profile for a technology absent
// from the dataset. Callers must never block on missing data.
func (c *Catalog) FallbackProfile(name, category string) TechnologyProfile {
	if category == "" {
		category = "unknown"
	}
	return TechnologyProfile{
		Name:        name,
		Category:    category,
		Difficulty:  Medium,
		Description: fmt.Sprintf("No catalog entry for %s; using neutral defaults.", name),
		CostEstimate: CostEstimate{
			Development: CostMedium,
			Hosting:     CostMedium,
			Maintenance: CostMedium,
		},
	}
}

// TechnologiesByCategory returns all profiles in a category.
func (c *Catalog) TechnologiesByCategory(category string) []TechnologyProfile {
	ps := c.byCat[strings.ToLower(category)]
	out := make([]TechnologyProfile, len(ps))
	for i, p := range ps {
		out[i] = *p
	}
	return out
}

// Categories returns the sorted list of known categories.
func (c *Catalog) Categories() []string {
	cats := make([]string, 0, len(c.byCat))
	for cat := range c.byCat {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Alternatives returns the self-hosted alternatives for a technology,
// or nil if the technology is unknown.
func (c *Catalog) Alternatives(name string) []string {
	p, ok := c.Technology(name)
	if !ok {
		return nil
	}
	return p.Alternatives
}

// SaaSAlternatives returns managed alternatives for a technology.
func (c *Catalog) SaaSAlternatives(name string) []string {
	p, ok := c.Technology(name)
	if !ok {
		return nil
	}
	return p.SaaSAlternatives
}

// LearningResources returns learning links for a technology.
func (c *Catalog) LearningResources(name string) []string {
	p, ok := c.Technology(name)
	if !ok {
		return nil
	}
	return p.LearningResources
}

// Size returns the number of loaded profiles.
func (c *Catalog) Size() int {
	return len(c.profiles)
}
