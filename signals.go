package chimera

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for chimera events.
var (
	SignalEngineCreated     = capitan.NewSignal("chimera.engine.created", "Engine instantiated")
	SignalEncodeStart       = capitan.NewSignal("chimera.encode.start", "Encode operation beginning")
	SignalEncodeComplete    = capitan.NewSignal("chimera.encode.complete", "Encode operation finished")
	SignalDecodeStart       = capitan.NewSignal("chimera.decode.start", "Decode operation beginning")
	SignalDecodeComplete    = capitan.NewSignal("chimera.decode.complete", "Decode operation finished")
	SignalProcessorCreated  = capitan.NewSignal("chimera.processor.created", "Processor instantiated")
	SignalMarshalStart      = capitan.NewSignal("chimera.marshal.start", "Processor marshal beginning")
	SignalMarshalComplete   = capitan.NewSignal("chimera.marshal.complete", "Processor marshal finished")
	SignalUnmarshalStart    = capitan.NewSignal("chimera.unmarshal.start", "Processor unmarshal beginning")
	SignalUnmarshalComplete = capitan.NewSignal("chimera.unmarshal.complete", "Processor unmarshal finished")
)

// Keys for typed event data.
var (
	KeyAlphabetSize = capitan.NewIntKey("alphabet_size")
	KeySelectors    = capitan.NewStringKey("selectors")
	KeyShift        = capitan.NewIntKey("shift")
	KeyInputSize    = capitan.NewIntKey("input_size")
	KeyOutputSize   = capitan.NewIntKey("output_size")
	KeyContentType  = capitan.NewStringKey("content_type")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyFieldCount   = capitan.NewIntKey("field_count")
	KeySize         = capitan.NewIntKey("size")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyError        = capitan.NewErrorKey("error")
)

// emitEngineCreated emits an event when an engine is created.
func emitEngineCreated(ctx context.Context, alphabetSize int) {
	capitan.Emit(ctx, SignalEngineCreated,
		KeyAlphabetSize.Field(alphabetSize),
	)
}

// emitTransformStart emits the start event for an encode or decode.
func emitTransformStart(ctx context.Context, mode Mode, p Pattern, inputSize int) {
	signal := SignalEncodeStart
	if mode == ModeDecode {
		signal = SignalDecodeStart
	}
	capitan.Emit(ctx, signal,
		KeySelectors.Field(p.String()),
		KeyShift.Field(p.Shift),
		KeyInputSize.Field(inputSize),
	)
}

// emitTransformComplete emits the completion event for an encode or decode.
func emitTransformComplete(ctx context.Context, mode Mode, p Pattern, outputSize int, duration time.Duration, err error) {
	signal := SignalEncodeComplete
	if mode == ModeDecode {
		signal = SignalDecodeComplete
	}
	fields := []capitan.Field{
		KeySelectors.Field(p.String()),
		KeyShift.Field(p.Shift),
		KeyOutputSize.Field(outputSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, signal, fields...)
	} else {
		capitan.Emit(ctx, signal, fields...)
	}
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalStart emits an event when a processor marshal begins.
func emitMarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalMarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitMarshalComplete emits an event when a processor marshal finishes.
func emitMarshalComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, fields int, err error) {
	ev := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		ev = append(ev, KeyError.Field(err))
		capitan.Error(ctx, SignalMarshalComplete, ev...)
	} else {
		capitan.Emit(ctx, SignalMarshalComplete, ev...)
	}
}

// emitUnmarshalStart emits an event when a processor unmarshal begins.
func emitUnmarshalStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalUnmarshalStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitUnmarshalComplete emits an event when a processor unmarshal finishes.
func emitUnmarshalComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fields int, err error) {
	ev := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		ev = append(ev, KeyError.Field(err))
		capitan.Error(ctx, SignalUnmarshalComplete, ev...)
	} else {
		capitan.Emit(ctx, SignalUnmarshalComplete, ev...)
	}
}
