// Package xml provides an XML codec implementation.
//
// encoding/xml cannot see through the Tagged marshaler methods, so use
// this codec through a Transcoder, which hands it the raw value; passing
// a Tagged value to Marshal directly yields an empty element.
package xml

import (
	"encoding/xml"

	tagged "github.com/RemiBardon/swift-tagged"
)

// xmlCodec implements tagged.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() tagged.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
