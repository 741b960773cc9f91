package main

import (
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rfset/network"
	"github.com/katalvlaran/rfset/networkset"
	"github.com/katalvlaran/rfset/touchstone"
)

// manifest describes a sweep on disk: a set name plus one touchstone file
// per element, each optionally tagged with sweep parameters.
type manifest struct {
	Name     string          `yaml:"name"`
	Networks []manifestEntry `yaml:"networks"`
}

type manifestEntry struct {
	File   string         `yaml:"file"`
	Params map[string]any `yaml:"params,omitempty"`
}

// loadManifest parses the YAML manifest at path. Relative element paths are
// resolved against the manifest's directory.
func loadManifest(path string) (*manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read manifest %s", path)
	}
	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, pkgerrors.Wrapf(err, "parse manifest %s", path)
	}
	base := filepath.Dir(path)
	for i := range m.Networks {
		if !filepath.IsAbs(m.Networks[i].File) {
			m.Networks[i].File = filepath.Join(base, m.Networks[i].File)
		}
	}
	return &m, nil
}

// loadSet materializes the manifest into a validated set, attaching the
// declared params to each element.
func (m *manifest) loadSet() (*networkset.NetworkSet, error) {
	elements := make([]*network.Network, 0, len(m.Networks))
	for _, entry := range m.Networks {
		n, err := touchstone.ReadFile(entry.File)
		if err != nil {
			return nil, err
		}
		if entry.Params != nil {
			n, err = withParams(n, entry.Params)
			if err != nil {
				return nil, err
			}
		}
		elements = append(elements, n)
	}
	return networkset.New(elements, networkset.WithName(m.Name))
}

// withParams rebuilds n with the given tag map attached.
func withParams(n *network.Network, params map[string]any) (*network.Network, error) {
	return network.FromS(n.Frequency(), n.S(), n.NPorts(),
		network.WithName(n.Name()),
		network.WithZ0(n.Z0()),
		network.WithParams(params),
	)
}

// loadZipSet builds an untagged set from every touchstone entry in a zip
// archive.
func loadZipSet(path, name string) (*networkset.NetworkSet, error) {
	elements, err := touchstone.ReadZip(path)
	if err != nil {
		return nil, err
	}
	return networkset.New(elements, networkset.WithName(name))
}

// loadDirSet builds an untagged set from every touchstone file directly
// under dir, in lexicographic name order.
func loadDirSet(dir, name string) (*networkset.NetworkSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "read dir %s", dir)
	}
	var elements []*network.Network
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, perr := touchstone.PortsFromFilename(e.Name()); perr != nil {
			continue
		}
		n, err := touchstone.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		elements = append(elements, n)
	}
	return networkset.New(elements, networkset.WithName(name))
}
