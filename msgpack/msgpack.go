// Package msgpack provides a MessagePack codec implementation.
package msgpack

import (
	tagged "github.com/RemiBardon/swift-tagged"
	"github.com/vmihailenco/msgpack/v5"
)

// msgpackCodec implements tagged.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() tagged.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
