package character

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/level-manager/internal/entities"
	"github.com/KirkDiggler/level-manager/internal/errors"
)

// Snapshot formats understood by the file store
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the supported snapshot formats
func Formats() []string {
	return []string{FormatJSON, FormatYAML}
}

// Codec encodes snapshots for the file store
type Codec interface {
	Extension() string
	Marshal(data *entities.CharacterData) ([]byte, error)
	Unmarshal(raw []byte, data *entities.CharacterData) error
}

// CodecFor returns the codec of format
func CodecFor(format string) (Codec, error) {
	switch format {
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown snapshot format %q", format).
			WithMeta("formats", Formats())
	}
}

type jsonCodec struct{}

func (jsonCodec) Extension() string { return ".json" }

func (jsonCodec) Marshal(data *entities.CharacterData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

func (jsonCodec) Unmarshal(raw []byte, data *entities.CharacterData) error {
	return json.Unmarshal(raw, data)
}

type yamlCodec struct{}

func (yamlCodec) Extension() string { return ".yaml" }

func (yamlCodec) Marshal(data *entities.CharacterData) ([]byte, error) {
	return yaml.Marshal(data)
}

func (yamlCodec) Unmarshal(raw []byte, data *entities.CharacterData) error {
	return yaml.Unmarshal(raw, data)
}
