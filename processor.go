package chimera

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag holding a field's pattern: `chimera:"AC10"`.
const TagName = "chimera"

func init() {
	sentinel.Tag(TagName)
}

// Processor encodes tagged fields and marshals values through a Codec.
//
// Fields tagged with a pattern are encoded by Marshal and decoded by
// Unmarshal. Supported field types are string, []byte, []string and
// map[K]string, including inside nested structs and struct pointers.
// Values whose text has no alphabet symbols encode to the empty string.
//
// Processors are safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec  Codec
	engine *Engine

	fields   []processorFieldPlan
	typeName string
}

// processorFieldPlan describes how to transform a single field.
type processorFieldPlan struct {
	index      []int   // reflect.Value.FieldByIndex access path
	name       string  // field name for error messages
	pattern    Pattern // parsed tag value
	isBytes    bool    // true if field is []byte, false if string
	ptrIndices []int   // indices where pointer dereference is needed
	isSlice    bool    // true if field is []string
	isMap      bool    // true if field is map[K]string
}

// typeFieldPlans holds the scanned plans for one type.
type typeFieldPlans struct {
	typeName string
	fields   []processorFieldPlan
}

// NewProcessor creates a Processor for type T.
// Tag patterns are parsed against the engine alphabet; a tag that yields no
// selectors fails with ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec, engine *Engine) (*Processor[T], error) {
	plans, err := buildFieldPlans[T](engine.Alphabet())
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		engine:   engine,
		fields:   plans.fields,
		typeName: plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// Engine returns the processor's engine.
func (p *Processor[T]) Engine() *Engine {
	return p.engine
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]](a *Alphabet) (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, a, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, a *Alphabet, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, a, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, a, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[TagName]
		if !ok {
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			return fmt.Errorf("%w: field %s has unsupported type %s", ErrInvalidTag, fullName, rt)
		}

		pattern, err := ParsePattern(val, a)
		if err != nil {
			return fmt.Errorf("%w: field %s: %w", ErrInvalidTag, fullName, err)
		}

		plans.fields = append(plans.fields, processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			pattern:    pattern,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(TagName); ok {
			fm.Tags[TagName] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// Marshal encodes tagged fields on a clone of obj and marshals the result.
func (p *Processor[T]) Marshal(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitMarshalStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitMarshalComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.fields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	if e, ok := any(&clone).(Encodable); ok {
		if err := e.EncodeFields(ctx, p.engine); err != nil {
			retErr = newTransformError(ErrEncode, ModeEncode.String(), p.typeName, err)
			return nil, retErr
		}
	} else if err := p.applyFields(ctx, ModeEncode, &clone); err != nil {
		retErr = err
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Unmarshal decodes data and then decodes tagged fields.
func (p *Processor[T]) Unmarshal(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitUnmarshalStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitUnmarshalComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.fields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if d, ok := any(&obj).(Decodable); ok {
		if err := d.DecodeFields(ctx, p.engine); err != nil {
			retErr = newTransformError(ErrDecode, ModeDecode.String(), p.typeName, err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.applyFields(ctx, ModeDecode, &obj); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// applyFields runs every field plan in the given mode via reflection.
func (p *Processor[T]) applyFields(ctx context.Context, mode Mode, obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	sentinelErr := ErrEncode
	if mode == ModeDecode {
		sentinelErr = ErrDecode
	}

	for _, plan := range p.fields {
		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		convert := func(s string) (string, error) {
			return p.convert(ctx, mode, plan.pattern, s)
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := convert(elem.String())
				if err != nil {
					return newTransformError(sentinelErr, mode.String(), fmt.Sprintf("%s[%d]", plan.name, i), err)
				}
				elem.SetString(out)
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := convert(v.String())
				if err != nil {
					return newTransformError(sentinelErr, mode.String(), fmt.Sprintf("%s[%v]", plan.name, k.Interface()), err)
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		var value string
		if plan.isBytes {
			value = string(field.Bytes())
		} else {
			value = field.String()
		}

		out, err := convert(value)
		if err != nil {
			return newTransformError(sentinelErr, mode.String(), plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes([]byte(out))
		} else {
			field.SetString(out)
		}
	}

	return nil
}

// convert runs one value through the engine. Values with no alphabet
// symbols become the empty string.
func (p *Processor[T]) convert(ctx context.Context, mode Mode, pattern Pattern, value string) (string, error) {
	var (
		out string
		err error
	)
	if mode == ModeDecode {
		out, err = p.engine.Decode(ctx, pattern, value)
	} else {
		out, err = p.engine.Encode(ctx, pattern, value)
	}
	if errors.Is(err, ErrEmptyText) {
		return "", nil
	}
	return out, err
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
