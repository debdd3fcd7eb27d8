// Copyright (c) 2026 Artistly. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package artist

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed/artists.yaml
var seedArtists []byte

// LoadSeed returns the demo artists compiled into the binary.
func LoadSeed() ([]Artist, error) {
	return ParseSeed(seedArtists)
}

// ParseSeed decodes a YAML list of artists and rejects duplicate or empty ids,
// since the registry itself does not check them.
func ParseSeed(data []byte) ([]Artist, error) {
	var artists []Artist
	if err := yaml.Unmarshal(data, &artists); err != nil {
		return nil, fmt.Errorf("parse artist seed: %w", err)
	}

	seen := make(map[string]struct{}, len(artists))
	for i, a := range artists {
		if a.ID == "" {
			return nil, fmt.Errorf("artist seed entry %d: missing id", i)
		}
		if _, dup := seen[a.ID]; dup {
			return nil, fmt.Errorf("artist seed entry %d: duplicate id %q", i, a.ID)
		}
		seen[a.ID] = struct{}{}
	}

	return artists, nil
}
