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
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"reflect"

	"github.com/holiman/uint256"
)

// Encoder is implemented by types that want to control their own RLP
// encoding.
type Encoder interface {
	EncodeRLP(io.Writer) error
}

// Encode writes the RLP encoding of val to w.
func Encode(w io.Writer, val interface{}) error {
	if buf, ok := w.(*bytes.Buffer); ok {
		return encodeBuffer(buf, val)
	}
	buf := new(bytes.Buffer)
	if err := encodeBuffer(buf, val); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeToBytes returns the RLP encoding of val.
func EncodeToBytes(val interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := encodeBuffer(buf, val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeBuffer(buf *bytes.Buffer, val interface{}) error {
	if val == nil {
		buf.WriteByte(0xC0)
		return nil
	}
	if enc, ok := val.(Encoder); ok {
		return enc.EncodeRLP(buf)
	}
	rval := reflect.ValueOf(val)
	return encodeReflectValue(buf, rval)
}

func encodeReflectValue(buf *bytes.Buffer, val reflect.Value) error {
	if enc, ok := val.Interface().(Encoder); ok {
		return enc.EncodeRLP(buf)
	}
	switch v := val.Interface().(type) {
	case *big.Int:
		return encodeBigInt(buf, v)
	case big.Int:
		return encodeBigInt(buf, &v)
	case *uint256.Int:
		return encodeUint256(buf, v)
	case uint256.Int:
		return encodeUint256(buf, &v)
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			if val.Type().Elem().Kind() == reflect.Array {
				return encodeReflectValue(buf, reflect.Zero(val.Type().Elem()))
			}
			buf.WriteByte(0xC0)
			return nil
		}
		return encodeReflectValue(buf, val.Elem())
	case reflect.Bool:
		return encodeBool(buf, val.Bool())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return encodeUint(buf, val.Uint())
	case reflect.String:
		return encodeString(buf, []byte(val.String()))
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return encodeString(buf, val.Bytes())
		}
		return encodeList(buf, val)
	case reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, val.Len())
			reflect.Copy(reflect.ValueOf(b), val)
			return encodeString(buf, b)
		}
		return encodeList(buf, val)
	case reflect.Struct:
		return encodeStruct(buf, val)
	case reflect.Interface:
		if val.IsNil() {
			buf.WriteByte(0xC0)
			return nil
		}
		return encodeReflectValue(buf, val.Elem())
	default:
		return fmt.Errorf("rlp: type %v is not RLP-serializable", val.Type())
	}
}

func encodeBool(buf *bytes.Buffer, b bool) error {
	if b {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x80)
	}
	return nil
}

func encodeUint(buf *bytes.Buffer, i uint64) error {
	if i == 0 {
		buf.WriteByte(0x80)
		return nil
	}
	if i < 0x80 {
		buf.WriteByte(byte(i))
		return nil
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	b = bytes.TrimLeft(b, "\x00")
	return encodeString(buf, b)
}

func encodeBigInt(buf *bytes.Buffer, i *big.Int) error {
	if i == nil {
		buf.WriteByte(0x80)
		return nil
	}
	if i.Sign() == -1 {
		return fmt.Errorf("rlp: cannot encode negative *big.Int")
	}
	return encodeString(buf, i.Bytes())
}

func encodeUint256(buf *bytes.Buffer, i *uint256.Int) error {
	if i == nil {
		buf.WriteByte(0x80)
		return nil
	}
	return encodeString(buf, i.Bytes())
}

func encodeString(buf *bytes.Buffer, b []byte) error {
	if len(b) == 1 && b[0] < 0x80 {
		buf.WriteByte(b[0])
		return nil
	}
	writeHead(buf, 0x80, uint64(len(b)))
	buf.Write(b)
	return nil
}

func encodeList(buf *bytes.Buffer, val reflect.Value) error {
	n := val.Len()
	content := new(bytes.Buffer)
	for i := 0; i < n; i++ {
		if err := encodeReflectValue(content, val.Index(i)); err != nil {
			return err
		}
	}
	writeHead(buf, 0xC0, uint64(content.Len()))
	buf.Write(content.Bytes())
	return nil
}

func encodeStruct(buf *bytes.Buffer, val reflect.Value) error {
	t := val.Type()
	content := new(bytes.Buffer)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		if err := encodeReflectValue(content, val.Field(i)); err != nil {
			return err
		}
	}
	writeHead(buf, 0xC0, uint64(content.Len()))
	buf.Write(content.Bytes())
	return nil
}

func writeHead(buf *bytes.Buffer, base byte, size uint64) {
	if size < 56 {
		buf.WriteByte(base + byte(size))
		return
	}
	sizeBytes := uintToBytes(size)
	buf.WriteByte(base + 55 + byte(len(sizeBytes)))
	buf.Write(sizeBytes)
}

func headsize(size uint64) int {
	if size < 56 {
		return 1
	}
	return 1 + len(uintToBytes(size))
}

func uintToBytes(i uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	return bytes.TrimLeft(b, "\x00")
}
