package codec

import (
	"sort"
	"sync"
)

// Registry resolves codecs by registered name or transfer syntax UID
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Codec
	byUID  map[string]Codec
}

var defaultRegistry = &Registry{
	byName: make(map[string]Codec),
	byUID:  make(map[string]Codec),
}

// Register registers a codec in the default registry using both its name and UID
func Register(codec Codec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec from the default registry by name or UID
func Get(nameOrUID string) (Codec, error) {
	return defaultRegistry.Get(nameOrUID)
}

// List returns all codecs registered in the default registry
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec under both its name and its UID. Registering
// again under the same name or UID replaces the earlier entry.
func (r *Registry) Register(codec Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[codec.Name()] = codec
	r.byUID[codec.UID()] = codec
}

// Get retrieves a codec by name or UID
func (r *Registry) Get(nameOrUID string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byName[nameOrUID]; ok {
		return c, nil
	}
	if c, ok := r.byUID[nameOrUID]; ok {
		return c, nil
	}
	return nil, ErrCodecNotFound
}

// List returns the registered codecs ordered by name
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	codecs := make([]Codec, 0, len(names))
	for _, name := range names {
		codecs = append(codecs, r.byName[name])
	}
	return codecs
}
