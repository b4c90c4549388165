package adapter

import (
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"

	"github.com/wippyai/fastjson/errors"
	"github.com/wippyai/fastjson/value"
)

// ToValue converts a host value into the value model. The mapping table is
// closed: nil, booleans, all integer and float kinds, strings, slices and
// arrays, string-keyed maps, sets (any map with an empty-struct element),
// and the value model's own types. Anything else fails with an
// unsupported_type error carrying the Go type name; there is no
// reflection-based guessing beyond this table.
func ToValue(v any) (value.Value, error) {
	c := converter{}
	return c.toValue(v, nil)
}

type converter struct {
	onPath map[any]struct{}
}

func (c *converter) toValue(v any, path []string) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(x), nil
	case string:
		return value.String(x), nil
	case int:
		return value.Int(int64(x)), nil
	case int8:
		return value.Int(int64(x)), nil
	case int16:
		return value.Int(int64(x)), nil
	case int32:
		return value.Int(int64(x)), nil
	case int64:
		return value.Int(x), nil
	case uint:
		return uintValue(uint64(x)), nil
	case uint8:
		return value.Int(int64(x)), nil
	case uint16:
		return value.Int(int64(x)), nil
	case uint32:
		return value.Int(int64(x)), nil
	case uint64:
		return uintValue(x), nil
	case float32:
		return value.Float(float64(x)), nil
	case float64:
		return value.Float(x), nil
	case value.Value:
		return x, nil
	case *value.Array:
		return x.Value(), nil
	case *value.Object:
		return x.Value(), nil
	case value.Set:
		return c.setToArray(reflect.ValueOf(x), path)
	}
	return c.reflectToValue(reflect.ValueOf(v), path)
}

// uintValue keeps unsigned values inside the int64 range as Int; larger
// ones fall back to Float, losing precision. Documented lossy behavior of
// the numeric model.
func uintValue(u uint64) value.Value {
	if u > math.MaxInt64 {
		return value.Float(float64(u))
	}
	return value.Int(int64(u))
}

func (c *converter) reflectToValue(rv reflect.Value, path []string) (value.Value, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return value.Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return value.Float(rv.Float()), nil
	case reflect.String:
		return value.String(rv.String()), nil

	case reflect.Slice:
		if rv.IsNil() {
			return value.Null(), nil
		}
		// a bare base pointer is not enough: two slices over the same
		// backing array with different lengths are distinct values
		key := sliceKey{ptr: rv.Pointer(), len: rv.Len()}
		if err := c.enter(key, path); err != nil {
			return value.Value{}, err
		}
		defer c.leave(key)
		return c.sequenceToArray(rv, path)

	case reflect.Array:
		return c.sequenceToArray(rv, path)

	case reflect.Map:
		if rv.IsNil() {
			return value.Null(), nil
		}
		if err := c.enter(rv.Pointer(), path); err != nil {
			return value.Value{}, err
		}
		defer c.leave(rv.Pointer())

		if isSetMap(rv.Type()) {
			return c.setToArray(rv, path)
		}
		if rv.Type().Key().Kind() == reflect.String {
			return c.mapToObject(rv, path)
		}
		return value.Value{}, errors.UnsupportedType(slices.Clone(path), rv.Type().String())

	case reflect.Pointer:
		if rv.IsNil() {
			return value.Null(), nil
		}
		if err := c.enter(rv.Pointer(), path); err != nil {
			return value.Value{}, err
		}
		defer c.leave(rv.Pointer())
		return c.toValue(rv.Elem().Interface(), path)

	case reflect.Interface:
		if rv.IsNil() {
			return value.Null(), nil
		}
		return c.toValue(rv.Elem().Interface(), path)
	}

	goType := "nil"
	if rv.IsValid() {
		goType = rv.Type().String()
	}
	return value.Value{}, errors.UnsupportedType(slices.Clone(path), goType)
}

func (c *converter) sequenceToArray(rv reflect.Value, path []string) (value.Value, error) {
	arr := value.NewArrayCap(rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ev, err := c.toValue(rv.Index(i).Interface(), append(path, strconv.Itoa(i)))
		if err != nil {
			return value.Value{}, err
		}
		arr.Append(ev)
	}
	return arr.Value(), nil
}

// mapToObject builds an object from a string-keyed map. Go map iteration
// order is random, so keys are sorted to make the result deterministic.
func (c *converter) mapToObject(rv reflect.Value, path []string) (value.Value, error) {
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys)

	obj := value.NewObject()
	for _, k := range keys {
		mv := rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key()))
		ev, err := c.toValue(mv.Interface(), append(path, k))
		if err != nil {
			return value.Value{}, err
		}
		obj.Set(k, ev)
	}
	return obj.Value(), nil
}

// setToArray projects a set onto a JSON array of its elements in map
// iteration order. The projection is one-directional: decoding never
// reconstructs a set.
func (c *converter) setToArray(rv reflect.Value, path []string) (value.Value, error) {
	arr := value.NewArrayCap(rv.Len())
	i := 0
	iter := rv.MapRange()
	for iter.Next() {
		ev, err := c.toValue(iter.Key().Interface(), append(path, strconv.Itoa(i)))
		if err != nil {
			return value.Value{}, err
		}
		arr.Append(ev)
		i++
	}
	return arr.Value(), nil
}

func isSetMap(t reflect.Type) bool {
	e := t.Elem()
	return e.Kind() == reflect.Struct && e.NumField() == 0
}

// sliceKey identifies a slice value for cycle checks. Length is part of the
// identity so a shorter reslice of an array already on the path is not
// mistaken for the slice that contains it.
type sliceKey struct {
	ptr uintptr
	len int
}

// enter registers a container on the conversion path; revisiting one means
// the host graph contains itself.
func (c *converter) enter(key any, path []string) error {
	if c.onPath == nil {
		c.onPath = make(map[any]struct{})
	}
	if _, ok := c.onPath[key]; ok {
		return errors.Cycle(errors.PhaseEncode, slices.Clone(path))
	}
	c.onPath[key] = struct{}{}
	return nil
}

func (c *converter) leave(key any) {
	delete(c.onPath, key)
}
