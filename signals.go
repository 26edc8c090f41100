package tagged

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for transcoder events.
var (
	SignalTranscoderCreated = capitan.NewSignal("tagged.transcoder.created", "Transcoder instantiated")
	SignalEncodeStart       = capitan.NewSignal("tagged.encode.start", "Encode operation beginning")
	SignalEncodeComplete    = capitan.NewSignal("tagged.encode.complete", "Encode operation finished")
	SignalDecodeStart       = capitan.NewSignal("tagged.decode.start", "Decode operation beginning")
	SignalDecodeComplete    = capitan.NewSignal("tagged.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitTranscoderCreated emits an event when a transcoder is created.
func emitTranscoderCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalTranscoderCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeStart emits an event when an encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
