package normalization

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

const keysPathEnv = "NORMALIZATION_KEYS_YAML"

//go:embed keys.yaml
var keysFS embed.FS

type Kind string

const (
	KindQualification Kind = "qualification"
	KindModule        Kind = "module"
	KindCourse        Kind = "course"
)

// Fields holds the ordered raw-key synonyms for every logical field of one entity kind.
type Fields struct {
	ID                []string `yaml:"id"`
	Title             []string `yaml:"title"`
	Code              []string `yaml:"code"`
	Description       []string `yaml:"description"`
	DurationFormatted []string `yaml:"duration_formatted"`
	DurationMinutes   []string `yaml:"duration_minutes"`
	TotalHours        []string `yaml:"total_hours"`
	DurationText      []string `yaml:"duration_text"`
	Level             []string `yaml:"level"`
	Sector            []string `yaml:"sector"`
	ValidTill         []string `yaml:"valid_till"`
	Tags              []string `yaml:"tags"`
	SkillDemand       []string `yaml:"skill_demand"`
	Credits           []string `yaml:"credits"`
	Mandatory         []string `yaml:"mandatory"`
	Provider          []string `yaml:"provider"`
	Mode              []string `yaml:"mode"`
	Link              []string `yaml:"link"`
}

type keySpec struct {
	Version int             `yaml:"version"`
	Kinds   map[Kind]Fields `yaml:"kinds"`
}

// KeyTable is the validated precedence table, one Fields per Kind.
type KeyTable struct {
	kinds map[Kind]Fields
}

func (t *KeyTable) For(kind Kind) Fields {
	if t == nil {
		return Fields{}
	}
	if f, ok := t.kinds[kind]; ok {
		return f
	}
	return t.kinds[KindModule]
}

// ParseKeys decodes and validates a precedence table.
func ParseKeys(data []byte) (*KeyTable, error) {
	var spec keySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("normalization: decode keys: %w", err)
	}
	if err := validateKeySpec(&spec); err != nil {
		return nil, err
	}
	return &KeyTable{kinds: spec.Kinds}, nil
}

func validateKeySpec(spec *keySpec) error {
	if spec.Version != 1 {
		return fmt.Errorf("normalization: unsupported keys version %d", spec.Version)
	}
	for _, kind := range []Kind{KindQualification, KindModule, KindCourse} {
		f, ok := spec.Kinds[kind]
		if !ok {
			return fmt.Errorf("normalization: keys missing kind %q", kind)
		}
		if len(f.Title) == 0 {
			return fmt.Errorf("normalization: kind %q has no title keys", kind)
		}
		for _, list := range [][]string{f.ID, f.Title, f.Code, f.Level, f.Tags} {
			for _, k := range list {
				if strings.TrimSpace(k) == "" {
					return errors.New("normalization: blank property key")
				}
			}
		}
	}
	return nil
}

// DefaultKeys returns the embedded table. It panics only if the embedded file is broken,
// which the package tests rule out.
func DefaultKeys() *KeyTable {
	data, err := keysFS.ReadFile("keys.yaml")
	if err != nil {
		panic(err)
	}
	t, err := ParseKeys(data)
	if err != nil {
		panic(err)
	}
	return t
}

// LoadKeys reads NORMALIZATION_KEYS_YAML when set, falling back to the embedded table
// when the override is unreadable or invalid.
func LoadKeys(log *logger.Logger) *KeyTable {
	path := strings.TrimSpace(os.Getenv(keysPathEnv))
	if path == "" {
		return DefaultKeys()
	}
	data, err := os.ReadFile(path)
	if err == nil {
		var t *KeyTable
		if t, err = ParseKeys(data); err == nil {
			if log != nil {
				log.Info("normalization keys loaded", "path", path)
			}
			return t
		}
	}
	if log != nil {
		log.Warn("normalization keys override failed; using embedded defaults", "path", path, "error", err)
	}
	return DefaultKeys()
}
