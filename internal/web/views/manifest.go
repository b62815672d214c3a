package views

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Manifest maps asset names to their fingerprinted build output, e.g. application.js to application.3f2a.js.
type Manifest map[string]string

// LoadManifest reads the asset manifest written by the frontend build.
//
// An empty path yields an empty manifest. Assets then resolve to their plain names.
func LoadManifest(path string) (Manifest, error) {
	if path == "" {
		return Manifest{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read asset manifest %s: %w", path, err)
	}

	m := Manifest{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse asset manifest %s: %w", path, err)
	}
	return m, nil
}

// Resolve returns the public url of asset below assetPath.
func (m Manifest) Resolve(assetPath string, asset string) string {
	if built, ok := m[asset]; ok {
		asset = built
	}
	return strings.TrimSuffix(assetPath, "/") + "/" + strings.TrimPrefix(asset, "/")
}
