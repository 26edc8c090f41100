package tagged

// Codec provides content-type aware marshaling. The json, yaml, msgpack,
// and xml subpackages supply implementations; the encoder itself is an
// external collaborator, not part of the wrapper.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
