package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/andortizg/QSL-Generator/internal/application"
	"github.com/andortizg/QSL-Generator/internal/encoding"
	"github.com/andortizg/QSL-Generator/internal/logging"
	"github.com/andortizg/QSL-Generator/internal/model"
	"github.com/rs/zerolog"
)

// ErrCorrupt reports a settings file that exists but cannot be parsed.
// Load still returns usable defaults alongside it; callers surface the
// problem and continue.
var ErrCorrupt = errors.New("settings file is corrupt")

// Store reads and writes the station record at a fixed file path.
// A Store remembers unknown keys seen during Load so a later Save
// writes them back unchanged.
type Store struct {
	Path string
	Log  zerolog.Logger

	extra map[string]json.RawMessage
}

// NewStore creates a store for the given path.
func NewStore(path string) *Store {
	return &Store{
		Path: path,
		Log:  logging.Nop(),
	}
}

// DefaultStore creates a store at the fixed settings path in the
// user's home directory.
func DefaultStore() (*Store, error) {
	path, err := application.GetSettingsPath()
	if err != nil {
		return nil, err
	}

	return NewStore(path), nil
}

// Load returns the persisted station record. A missing file yields the
// built-in defaults with no error. A corrupt file also yields the
// defaults, together with an error matching [ErrCorrupt]; the
// application keeps running either way.
func (s *Store) Load() (model.Station, error) {
	station := model.DefaultStation()

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.Log.Debug().Str("path", s.Path).Msg("no settings file, using defaults")
			return station, nil
		}

		return station, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	// Overlay the file onto the defaults: present keys overwrite,
	// missing keys keep their default values.
	if err := json.Unmarshal(data, &station); err != nil {
		s.Log.Warn().Err(err).Str("path", s.Path).Msg("settings file unreadable, using defaults")
		return model.DefaultStation(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	raw, err := encoding.ParseJSON[map[string]json.RawMessage](data)
	if err != nil {
		return model.DefaultStation(), fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	s.extra = make(map[string]json.RawMessage)
	for key, value := range *raw {
		if _, ok := knownKeys()[key]; !ok {
			s.extra[key] = value
		}
	}

	if len(s.extra) > 0 {
		s.Log.Debug().Int("count", len(s.extra)).Msg("preserving unknown settings keys")
	}

	return station, nil
}

// Save overwrites the settings file with the given station record.
// Unknown keys remembered from the last Load are written back alongside
// the known fields.
func (s *Store) Save(station model.Station) error {
	data, err := json.Marshal(station)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	for key, value := range s.extra {
		if _, ok := doc[key]; !ok {
			doc[key] = value
		}
	}

	if err := encoding.SaveJSON(s.Path, doc); err != nil {
		return err
	}

	s.Log.Debug().Str("path", s.Path).Msg("settings saved")

	return nil
}

// Exists reports whether a settings file is present at the store path.
func (s *Store) Exists() bool {
	return encoding.FileExists(s.Path)
}

var (
	knownOnce sync.Once
	known     map[string]struct{}
)

// knownKeys returns the set of JSON keys owned by the Station struct,
// derived from its tags so the two never drift apart.
func knownKeys() map[string]struct{} {
	knownOnce.Do(func() {
		data, err := json.Marshal(model.Station{})
		if err != nil {
			panic(fmt.Sprintf("failed to marshal station template: %v", err))
		}

		var doc map[string]json.RawMessage
		if err := json.Unmarshal(data, &doc); err != nil {
			panic(fmt.Sprintf("failed to derive settings keys: %v", err))
		}

		known = make(map[string]struct{}, len(doc))
		for key := range doc {
			known[key] = struct{}{}
		}
	})

	return known
}
