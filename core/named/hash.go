package named

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a hash of the underlying value. Equal wrappers always hash
// alike; the tag is not mixed in.
func Hash[U comparable, Tag hashableTag](v Value[U, Tag]) uint64 {
	return hashValue(v.v)
}

func hashValue[U comparable](v U) uint64 {
	d := xxhash.New()
	writeCanonical(d, reflect.ValueOf(&v).Elem())
	return d.Sum64()
}

// writeCanonical feeds d an encoding of rv under which == equal values encode
// identically: floats fold -0 onto +0, interfaces include their dynamic type.
func writeCanonical(d *xxhash.Digest, rv reflect.Value) {
	var buf [8]byte
	putUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	putFloat := func(f float64) {
		if f == 0 {
			f = 0
		}
		putUint(math.Float64bits(f))
	}

	switch rv.Kind() {
	case reflect.String:
		putUint(uint64(rv.Len()))
		_, _ = d.WriteString(rv.String())
	case reflect.Bool:
		if rv.Bool() {
			putUint(1)
		} else {
			putUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		putUint(uint64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		putUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		putFloat(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		putFloat(real(c))
		putFloat(imag(c))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		putUint(uint64(rv.Pointer()))
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			writeCanonical(d, rv.Index(i))
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if t.Field(i).Name == "_" {
				continue
			}
			writeCanonical(d, rv.Field(i))
		}
	case reflect.Interface:
		if rv.IsNil() {
			putUint(0)
			return
		}
		elem := rv.Elem()
		_, _ = d.WriteString(elem.Type().String())
		writeCanonical(d, elem)
	}
}
