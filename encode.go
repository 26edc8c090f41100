package tagged

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Serialization forwarding. Each marshaler delegates to the raw value, so
// the wire shape is exactly the raw value's: scalar raws encode as single
// unstructured values, struct raws as structured values, with the
// encoder's own dispatch choosing between the two. The tag never appears
// on the wire, which also means decoding cannot check it: a payload
// decodes under whatever tag the destination carries.

// MarshalJSON encodes the raw value.
func (t Tagged[Tag, Raw]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

// UnmarshalJSON decodes data into the raw value. Decoding errors are the
// raw type's own; the wrapper adds no error kind.
func (t *Tagged[Tag, Raw]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.value)
}

// MarshalYAML encodes the raw value.
func (t Tagged[Tag, Raw]) MarshalYAML() (any, error) {
	return t.value, nil
}

// UnmarshalYAML decodes the node into the raw value.
func (t *Tagged[Tag, Raw]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&t.value)
}

// EncodeMsgpack encodes the raw value.
func (t Tagged[Tag, Raw]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(t.value)
}

// DecodeMsgpack decodes into the raw value.
func (t *Tagged[Tag, Raw]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&t.value)
}
