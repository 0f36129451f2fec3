// Package profile manages named device profiles: qualifier strings with a
// default API level that may extend one another.
package profile

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/resconfig/resconfig-go/pkg/apilevel"
	"github.com/resconfig/resconfig-go/pkg/qualifier"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// Profile errors.
var (
	ErrNotFound = errors.New("profile not found")
	ErrCycle    = errors.New("profile inheritance cycle")
	ErrInvalid  = errors.New("invalid profile")
)

// Profile is a named qualifier string.
type Profile struct {
	Name        string         `yaml:"-"`
	Description string         `yaml:"description,omitempty"`
	Qualifiers  string         `yaml:"qualifiers"`
	API         apilevel.Level `yaml:"api,omitempty"`
	Extends     string         `yaml:"extends,omitempty"`
}

// document is the on-disk layout.
type document struct {
	Profiles map[string]*Profile `yaml:"profiles"`
}

// Set is a collection of profiles keyed by name.
type Set struct {
	profiles map[string]*Profile
}

// Load reads a YAML profile document and checks every inheritance chain.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	s := &Set{profiles: make(map[string]*Profile, len(doc.Profiles))}
	for name, p := range doc.Profiles {
		if name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("%w: bad name %q", ErrInvalid, name)
		}
		if p == nil {
			p = &Profile{}
		}
		p.Name = name
		if p.API != 0 && !p.API.Valid() {
			return nil, fmt.Errorf("%w: %s: api level %d", ErrInvalid, name, p.API)
		}
		s.profiles[name] = p
	}

	for _, name := range s.Names() {
		if _, err := s.Chain(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadFile reads a YAML profile document from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening profiles: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var builtin = sync.OnceValues(func() (*Set, error) {
	f, err := profileFS.Open("profiles/builtin.yaml")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
})

// Builtin returns the embedded profile set. It is loaded once and shared;
// callers must not modify it.
func Builtin() (*Set, error) {
	return builtin()
}

// Names returns the profile names, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of profiles.
func (s *Set) Len() int {
	return len(s.profiles)
}

// Get returns a profile by name.
func (s *Set) Get(name string) (*Profile, bool) {
	p, ok := s.profiles[name]
	return p, ok
}

// Chain returns the profile and its ancestors, root first.
func (s *Set) Chain(name string) ([]*Profile, error) {
	var chain []*Profile
	seen := make(map[string]bool)
	for cur := name; cur != ""; {
		if seen[cur] {
			return nil, fmt.Errorf("%w: %s", ErrCycle, name)
		}
		seen[cur] = true

		p, ok := s.profiles[cur]
		if !ok {
			if cur == name {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
			}
			return nil, fmt.Errorf("%w: %s extends unknown profile %s", ErrNotFound, chain[0].Name, cur)
		}
		chain = append([]*Profile{p}, chain...)
		cur = p.Extends
	}
	return chain, nil
}

// Level returns the API level a profile resolves at by default: its own
// api, else the nearest ancestor's, else apilevel.Latest.
func (s *Set) Level(name string) (apilevel.Level, error) {
	chain, err := s.Chain(name)
	if err != nil {
		return 0, err
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].API != 0 {
			return chain[i].API, nil
		}
	}
	return apilevel.Latest, nil
}

// Resolve parses a profile and its ancestors with p. A zero level selects
// the profile's default level.
func (s *Set) Resolve(p *qualifier.Parser, name string, level apilevel.Level) (*qualifier.Result, error) {
	chain, err := s.Chain(name)
	if err != nil {
		return nil, err
	}
	if level == 0 {
		if level, err = s.Level(name); err != nil {
			return nil, err
		}
	}

	layers := make([]string, len(chain))
	for i, prof := range chain {
		layers[i] = prof.Qualifiers
	}
	res, err := p.Resolve(qualifier.Request{Layers: layers, Level: level, Profile: name})
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", name, err)
	}
	return res, nil
}

// Validate resolves every profile and returns all failures joined.
func (s *Set) Validate(level apilevel.Level) error {
	p := qualifier.NewParser(nil)
	var errs []error
	for _, name := range s.Names() {
		if _, err := s.Resolve(p, name, level); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
