package tagged

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Transcoder moves tagged values across a serialization boundary through a
// Codec, emitting signals around each operation.
//
// Transcoders hold no mutable state and are safe for concurrent use. The
// codec sees the raw value directly, never the wrapper, so the wire shape
// is the raw value's and the tag stays compile-time only.
type Transcoder[Tag any, Raw any] struct {
	codec    Codec
	typeName string
}

// NewTranscoder creates a Transcoder binding Tagged[Tag, Raw] to a codec.
func NewTranscoder[Tag any, Raw any](codec Codec) *Transcoder[Tag, Raw] {
	typeName := fmt.Sprintf("Tagged[%s, %s]", reflect.TypeFor[Tag](), reflect.TypeFor[Raw]())
	emitTranscoderCreated(context.Background(), codec.ContentType(), typeName)
	return &Transcoder[Tag, Raw]{codec: codec, typeName: typeName}
}

// ContentType returns the bound codec's MIME type.
func (tc *Transcoder[Tag, Raw]) ContentType() string {
	return tc.codec.ContentType()
}

// Encode marshals a tagged value through the bound codec. Failures come
// back as a CodecError wrapping ErrMarshal.
func (tc *Transcoder[Tag, Raw]) Encode(ctx context.Context, t Tagged[Tag, Raw]) ([]byte, error) {
	emitEncodeStart(ctx, tc.codec.ContentType(), tc.typeName)
	start := time.Now()

	data, err := tc.codec.Marshal(t.value)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
		emitEncodeComplete(ctx, tc.codec.ContentType(), tc.typeName, 0, time.Since(start), err)
		return nil, err
	}

	emitEncodeComplete(ctx, tc.codec.ContentType(), tc.typeName, len(data), time.Since(start), nil)
	return data, nil
}

// Decode unmarshals data into a tagged value through the bound codec.
// Failures come back as a CodecError wrapping ErrUnmarshal, with the
// codec's own error as the cause.
func (tc *Transcoder[Tag, Raw]) Decode(ctx context.Context, data []byte) (Tagged[Tag, Raw], error) {
	emitDecodeStart(ctx, tc.codec.ContentType(), tc.typeName)
	start := time.Now()

	var t Tagged[Tag, Raw]
	if err := tc.codec.Unmarshal(data, &t.value); err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitDecodeComplete(ctx, tc.codec.ContentType(), tc.typeName, len(data), time.Since(start), err)
		return Tagged[Tag, Raw]{}, err
	}

	emitDecodeComplete(ctx, tc.codec.ContentType(), tc.typeName, len(data), time.Since(start), nil)
	return t, nil
}
