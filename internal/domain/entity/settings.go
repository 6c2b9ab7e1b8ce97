package entity

// Settings holds per-user discovery preferences.
type Settings struct {
	DefaultCount  int               `json:"defaultCount" yaml:"default_count"`
	Transport     Transport         `json:"transport" yaml:"transport"`
	SyncTolerance uint64            `json:"syncTolerance" yaml:"sync_tolerance"`
	ReferenceRPCs map[uint64]string `json:"referenceRpcs,omitempty" yaml:"reference_rpcs,omitempty"`
}

// DefaultSettings returns the settings used for users that never changed anything.
func DefaultSettings() Settings {
	return Settings{
		DefaultCount:  10,
		Transport:     TransportHTTP,
		SyncTolerance: 50,
		ReferenceRPCs: map[uint64]string{},
	}
}

// ReferenceFor returns the ground-truth URL for chain: the user's override or the chain default.
func (s Settings) ReferenceFor(chain Chain) string {
	if u, ok := s.ReferenceRPCs[chain.ID]; ok && u != "" {
		return u
	}
	return chain.DefaultRPC
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (s Settings) Clone() Settings {
	out := s
	out.ReferenceRPCs = make(map[uint64]string, len(s.ReferenceRPCs))
	for k, v := range s.ReferenceRPCs {
		out.ReferenceRPCs[k] = v
	}
	return out
}
