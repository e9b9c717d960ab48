package cache

import (
	"slices"
	"time"
)

// keyVersion changes whenever the artifact encoding changes, so entries
// written by older builds are never served.
const keyVersion = 1

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a serialized artifact.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the serialization settings that change an artifact.
type ArtifactKeyOpts struct {
	Format    string   `json:"format"`
	Indent    string   `json:"indent,omitempty"`
	NoRemap   bool     `json:"no_remap,omitempty"`
	BlockList []string `json:"block_list,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes the input hash together with opts. The block-list is
// sorted first, so its order does not matter.
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	opts.BlockList = slices.Sorted(slices.Values(opts.BlockList))
	return hashKey("artifact", keyVersion, inputHash, opts)
}

var _ Keyer = DefaultKeyer{}

// TTLArtifact is how long serialized artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour
