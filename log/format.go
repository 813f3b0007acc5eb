// Copyright 2016 The go-ethereum Authors
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

package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Format turns a Record into a line of bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

var lvlColor = map[Lvl]int{
	LvlCrit:  35, // magenta
	LvlError: 31, // red
	LvlWarn:  33, // yellow
	LvlInfo:  32, // green
	LvlDebug: 36, // cyan
	LvlTrace: 34, // blue
}

// TerminalFormat renders a record as "time level msg key=val ...". When
// usecolor is set, the level is wrapped in the ANSI color from lvlColor.
func TerminalFormat(usecolor bool) Format {
	return formatFunc(func(r *Record) []byte {
		var buf bytes.Buffer
		lvl := r.Lvl.AlignedString()
		if usecolor {
			if color, ok := lvlColor[r.Lvl]; ok {
				lvl = fmt.Sprintf("\x1b[%dm%s\x1b[0m", color, lvl)
			}
		}
		fmt.Fprintf(&buf, "%s[%s] %s", r.Time.Format("01-02|15:04:05.000"), lvl, r.Msg)
		for i := 0; i < len(r.Ctx); i += 2 {
			fmt.Fprintf(&buf, " %v=%v", r.Ctx[i], formatValue(r.Ctx[i+1]))
		}
		buf.WriteByte('\n')
		return buf.Bytes()
	})
}

func formatValue(v interface{}) interface{} {
	if v == nil {
		return "<nil>"
	}
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if stringer, ok := v.(fmt.Stringer); ok {
		return stringer.String()
	}
	return v
}

// StreamHandler writes formatted records to w, synchronized so concurrent
// callers never interleave partial lines.
func StreamHandler(w io.Writer, fmtr Format) Handler {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = colorable.NewColorable(f)
	}
	return &streamHandler{w: w, fmtr: fmtr}
}

type streamHandler struct {
	mu   sync.Mutex
	w    io.Writer
	fmtr Format
}

func (h *streamHandler) Log(r *Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(h.fmtr.Format(r))
	return err
}
