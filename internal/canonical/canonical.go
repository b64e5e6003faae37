// Copyright (c) 2026 Palantir Technologies. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package canonical provides the value equality and hashing used by the
// contract DSL types. Equal values always produce the same hash.
package canonical

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
	"math"
	"reflect"

	"github.com/palantir/pkg/bytesbuffers"
)

var bufferPool = bytesbuffers.NewSizedPool(16, 256)

// maxDepth bounds the walk over self-referencing values.
const maxDepth = 64

// Equal reports whether a and b are deeply equal. Nested maps, slices and
// pointers are compared by the values they hold.
func Equal(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}

// Hash returns a 64-bit FNV-1a hash of v that is consistent with Equal.
//
// The value is walked the way reflect.DeepEqual compares it: negative zero hashes
// as zero, map entries are combined independently of iteration order, and
// pointers hash by what they point to. Functions, channels and unsafe pointers
// hash by type only.
func Hash(v interface{}) uint64 {
	return hashValue(reflect.ValueOf(v), 0)
}

func hashValue(v reflect.Value, depth int) uint64 {
	buf := bufferPool.Get()
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()
	write(buf, v, depth)
	h := fnv.New64a()
	_, _ = h.Write(buf.Bytes())
	return h.Sum64()
}

func write(buf *bytes.Buffer, v reflect.Value, depth int) {
	if !v.IsValid() {
		buf.WriteString("<nil>")
		return
	}
	buf.WriteString(v.Type().String())
	buf.WriteByte(':')
	if depth > maxDepth {
		return
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(buf, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(buf, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(buf, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(buf, real(c))
		writeFloat(buf, imag(c))
	case reflect.String:
		writeUint(buf, uint64(v.Len()))
		buf.WriteString(v.String())
	case reflect.Slice:
		if v.IsNil() {
			buf.WriteString("<nil>")
			return
		}
		writeElements(buf, v, depth)
	case reflect.Array:
		writeElements(buf, v, depth)
	case reflect.Map:
		if v.IsNil() {
			buf.WriteString("<nil>")
			return
		}
		writeUint(buf, uint64(v.Len()))
		var sum uint64
		iter := v.MapRange()
		for iter.Next() {
			sum += Combine(hashValue(iter.Key(), depth+1), hashValue(iter.Value(), depth+1))
		}
		writeUint(buf, sum)
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			buf.WriteString("<nil>")
			return
		}
		write(buf, v.Elem(), depth+1)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			write(buf, v.Field(i), depth+1)
		}
	case reflect.Func:
		if v.IsNil() {
			buf.WriteString("<nil>")
		}
	}
}

func writeElements(buf *bytes.Buffer, v reflect.Value, depth int) {
	writeUint(buf, uint64(v.Len()))
	for i := 0; i < v.Len(); i++ {
		write(buf, v.Index(i), depth+1)
	}
}

func writeFloat(buf *bytes.Buffer, f float64) {
	if f == 0 {
		f = 0
	}
	writeUint(buf, math.Float64bits(f))
}

func writeUint(buf *bytes.Buffer, u uint64) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], u)
	buf.Write(scratch[:])
}

// Combine folds the given hashes into one, in order.
func Combine(hashes ...uint64) uint64 {
	h := fnv.New64a()
	var scratch [8]byte
	for _, v := range hashes {
		binary.LittleEndian.PutUint64(scratch[:], v)
		_, _ = h.Write(scratch[:])
	}
	return h.Sum64()
}
