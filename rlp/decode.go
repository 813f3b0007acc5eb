// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package rlp

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// Decoder is implemented by types that want to control their own RLP
// decoding.
type Decoder interface {
	DecodeRLP(*Stream) error
}

// Stream reads values from an RLP-encoded byte stream.
//
// Stream is deliberately minimal: it supports exactly the operations the
// codec and trie packages need (Kind inspection and struct-level
// DecodeRLP hooks) rather than the full incremental reader go-ethereum's
// rlp.Stream exposes.
type Stream struct {
	r       io.Reader
	buf     []byte
	pos     int
	limit   uint64
	haveLim bool
}

// NewStream creates a new stream reading from r. If inputLimit is
// non-zero, the stream refuses to consume more than that many bytes.
func NewStream(r io.Reader, inputLimit uint64) *Stream {
	s := &Stream{r: r}
	if inputLimit != 0 {
		s.limit, s.haveLim = inputLimit, true
	}
	return s
}

func (s *Stream) fill() error {
	if s.buf != nil {
		return nil
	}
	b, err := ioutil.ReadAll(s.r)
	if err != nil && err != io.EOF {
		return err
	}
	if s.haveLim && uint64(len(b)) > s.limit {
		b = b[:s.limit]
	}
	s.buf = b
	return nil
}

// Kind returns the kind and declared content size of the next value in the
// stream without consuming it.
func (s *Stream) Kind() (Kind, uint64, error) {
	if err := s.fill(); err != nil {
		return 0, 0, err
	}
	if s.pos >= len(s.buf) {
		return 0, 0, io.EOF
	}
	k, _, size, err := readKind(s.buf[s.pos:])
	if err != nil {
		return 0, 0, err
	}
	return k, size, nil
}

// Decode consumes the next value from the stream and stores it in val,
// which must be a non-nil pointer.
func (s *Stream) Decode(val interface{}) error {
	if err := s.fill(); err != nil {
		return err
	}
	rval := reflect.ValueOf(val)
	if rval.Kind() != reflect.Ptr || rval.IsNil() {
		return errNoPointer
	}
	rest, err := decodeReflectValue(s.buf[s.pos:], rval.Elem())
	if err != nil {
		return err
	}
	s.pos = len(s.buf) - len(rest)
	return nil
}

// Raw returns the encoding of the next value without decoding it.
func (s *Stream) Raw() ([]byte, error) {
	if err := s.fill(); err != nil {
		return nil, err
	}
	_, tagsize, size, err := readKind(s.buf[s.pos:])
	if err != nil {
		return nil, err
	}
	v := s.buf[s.pos : s.pos+int(tagsize+size)]
	s.pos += int(tagsize + size)
	return v, nil
}

// Decode decodes RLP data from r into val, which must be a non-nil pointer.
func Decode(r io.Reader, val interface{}) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	return DecodeBytes(data, val)
}

// DecodeBytes decodes the RLP encoding in b into val, which must be a
// non-nil pointer. It is an error if b contains additional data after val.
func DecodeBytes(b []byte, val interface{}) error {
	rval := reflect.ValueOf(val)
	if rval.Kind() != reflect.Ptr || rval.IsNil() {
		return errNoPointer
	}
	rest, err := decodeReflectValue(b, rval.Elem())
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return ErrMoreThanOneValue
	}
	return nil
}

func decodeReflectValue(b []byte, val reflect.Value) ([]byte, error) {
	if val.CanAddr() {
		if dec, ok := val.Addr().Interface().(Decoder); ok {
			raw, rest, err := rawOne(b)
			if err != nil {
				return nil, err
			}
			if err := dec.DecodeRLP(NewStream(bytes.NewReader(raw), 0)); err != nil {
				return nil, err
			}
			return rest, nil
		}
	}
	switch val.Interface().(type) {
	case big.Int:
		content, rest, err := SplitString(b)
		if err != nil {
			return nil, err
		}
		var i big.Int
		i.SetBytes(content)
		val.Set(reflect.ValueOf(i))
		return rest, nil
	case uint256.Int:
		content, rest, err := SplitString(b)
		if err != nil {
			return nil, err
		}
		var u uint256.Int
		u.SetBytes(content)
		val.Set(reflect.ValueOf(u))
		return rest, nil
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return decodeReflectValue(b, val.Elem())
	case reflect.Bool:
		content, rest, err := SplitString(b)
		if err != nil {
			return nil, err
		}
		switch {
		case len(content) == 0:
			val.SetBool(false)
		case len(content) == 1:
			val.SetBool(content[0] != 0)
		default:
			return nil, fmt.Errorf("rlp: invalid boolean value")
		}
		return rest, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		content, rest, err := SplitString(b)
		if err != nil {
			return nil, err
		}
		u, err := bytesToUint64(content)
		if err != nil {
			return nil, err
		}
		val.SetUint(u)
		return rest, nil
	case reflect.String:
		content, rest, err := SplitString(b)
		if err != nil {
			return nil, err
		}
		val.SetString(string(content))
		return rest, nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			content, rest, err := SplitString(b)
			if err != nil {
				return nil, err
			}
			val.SetBytes(append([]byte{}, content...))
			return rest, nil
		}
		return decodeList(b, val)
	case reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			content, rest, err := SplitString(b)
			if err != nil {
				return nil, err
			}
			if len(content) != val.Len() {
				return nil, fmt.Errorf("rlp: input string of length %d too %s for array of size %d",
					len(content), sizeWord(len(content) > val.Len()), val.Len())
			}
			reflect.Copy(val, reflect.ValueOf(content))
			return rest, nil
		}
		return decodeArray(b, val)
	case reflect.Struct:
		return decodeStruct(b, val)
	case reflect.Interface:
		switch v := val.Interface().(type) {
		case *big.Int:
			content, rest, err := SplitString(b)
			if err != nil {
				return nil, err
			}
			if v == nil {
				v = new(big.Int)
			}
			v.SetBytes(content)
			val.Set(reflect.ValueOf(v))
			return rest, nil
		}
		return nil, fmt.Errorf("rlp: type %v is not RLP-serializable", val.Type())
	default:
		return nil, fmt.Errorf("rlp: type %v is not RLP-serializable", val.Type())
	}
}

func sizeWord(tooBig bool) string {
	if tooBig {
		return "long"
	}
	return "short"
}

func bytesToUint64(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, errUintOverflow
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, ErrCanonInt
	}
	var u uint64
	for _, c := range b {
		u = u<<8 | uint64(c)
	}
	return u, nil
}

func decodeList(b []byte, val reflect.Value) ([]byte, error) {
	content, rest, err := SplitList(b)
	if err != nil {
		return nil, err
	}
	n, err := CountValues(content)
	if err != nil {
		return nil, err
	}
	slice := reflect.MakeSlice(val.Type(), n, n)
	cur := content
	for i := 0; i < n; i++ {
		var err error
		cur, err = decodeReflectValue(cur, slice.Index(i))
		if err != nil {
			return nil, err
		}
	}
	val.Set(slice)
	return rest, nil
}

func decodeArray(b []byte, val reflect.Value) ([]byte, error) {
	content, rest, err := SplitList(b)
	if err != nil {
		return nil, err
	}
	cur := content
	for i := 0; i < val.Len(); i++ {
		if len(cur) == 0 {
			break
		}
		var err error
		cur, err = decodeReflectValue(cur, val.Index(i))
		if err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func decodeStruct(b []byte, val reflect.Value) ([]byte, error) {
	content, rest, err := SplitList(b)
	if err != nil {
		return nil, err
	}
	t := val.Type()
	cur := content
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath != "" {
			continue // unexported
		}
		var err error
		cur, err = decodeReflectValue(cur, val.Field(i))
		if err != nil {
			return nil, err
		}
	}
	return rest, nil
}

// rawOne splits off the full raw encoding (tag and content) of the next
// value in b, along with any remaining bytes.
func rawOne(b []byte) (raw, rest []byte, err error) {
	_, tagsize, size, err := readKind(b)
	if err != nil {
		return nil, b, err
	}
	n := int(tagsize + size)
	return b[:n], b[n:], nil
}
