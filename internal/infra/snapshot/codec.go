package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Blob names for the two persisted records. Each store serializes
// independently so either can be absent without affecting the other.
const (
	BlobSuggestions = "suggestions"
	BlobPlayers     = "players"
)

var ErrCorrupt = errors.New("corrupt snapshot")

// Repo persists named snapshot blobs. Load returns (nil, nil) when the blob
// has never been saved.
type Repo interface {
	Save(ctx context.Context, name string, blob []byte) error
	// LoadAll returns the stored blobs for names; absent names are simply
	// missing from the result.
	LoadAll(ctx context.Context, names []string) (map[string][]byte, error)
}

// Encode marshals a store dump as self-describing json (field names kept, so
// old snapshots keep loading as the records grow fields).
func Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// Decode unmarshals a blob, mapping any parse failure to ErrCorrupt.
func Decode(blob []byte, v any) error {
	if err := json.Unmarshal(blob, v); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}
