// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"testing"

	"github.com/krbrs/gopher2a03/logger"
	"github.com/krbrs/gopher2a03/test"
)

func TestAppend(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	tw.Clear()
	logger.Logf("test", "this is test %d", 2)
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest: this is test 2\n"), true)
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: same entry (repeat x3)\n"), true)
}

func TestTail(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "a")
	logger.Log("test", "b")
	logger.Log("test", "c")

	logger.Tail(tw, 2)
	test.Equate(t, tw.Compare("test: b\ntest: c\n"), true)

	// tail greater than number of entries returns everything
	tw.Clear()
	logger.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: a\ntest: b\ntest: c\n"), true)
}

func TestClear(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "an entry")
	logger.Clear()
	test.Equate(t, logger.Write(tw), false)
	test.Equate(t, tw.Compare(""), true)
}

func TestNewlineStripping(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log("test", "entry with\nnewline")
	logger.Write(tw)
	test.Equate(t, tw.Compare("test: entry withnewline\n"), true)
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log("test", "echoed entry")
	test.Equate(t, tw.Compare("test: echoed entry\n"), true)
}
