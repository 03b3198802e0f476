package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Messages []messageSchema `toml:"messages"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported snapshot schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type messageSchema struct {
	ID      string        `toml:"id"`
	Ignored bool          `toml:"ignored"`
	Pinned  bool          `toml:"pinned"`
	Values  []valueSchema `toml:"values"`
}

type valueSchema struct {
	Data string `toml:"data"`
	// TS is milliseconds since the Unix epoch.
	TS int64 `toml:"ts"`
}
