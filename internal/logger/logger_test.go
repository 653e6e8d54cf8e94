package logger_test

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/pierrec/lz4file/internal/logger"
)

func TestLevels(t *testing.T) {
	c := qt.New(t)

	buf := new(bytes.Buffer)
	log := logger.New("lz4file", buf, false)
	log.Debugw("hidden", "file", "a.txt")
	log.Warnw("shown", "file", "b.txt")
	c.Assert(log.Sync(), qt.IsNil)

	out := buf.String()
	c.Assert(strings.Contains(out, "hidden"), qt.IsFalse)
	c.Assert(strings.Contains(out, "WARN"), qt.IsTrue)
	c.Assert(strings.Contains(out, "lz4file"), qt.IsTrue)
	c.Assert(strings.Contains(out, `"file": "b.txt"`), qt.IsTrue)

	buf.Reset()
	log = logger.New("lz4file", buf, true)
	log.Debugw("matched files", "count", 2)
	c.Assert(strings.Contains(buf.String(), "DEBUG"), qt.IsTrue)
	c.Assert(strings.Contains(buf.String(), `"count": 2`), qt.IsTrue)
}
