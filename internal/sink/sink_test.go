package sink

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"sizelabel/internal/util/format"
)

func TestFieldReceivesRoundedValue(t *testing.T) {
	var f Field
	label := format.ReadableSize(&f, "1536.4")
	if label != "( 1.50 KB )" {
		t.Errorf("label = %q", label)
	}
	if f.Value() != "1536" {
		t.Errorf("field value = %q, want %q", f.Value(), "1536")
	}
}

func TestFieldConcurrentWrites(t *testing.T) {
	var f Field
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			format.ReadableSize(&f, 2048)
		}()
	}
	wg.Wait()
	if f.Value() != "2048" {
		t.Errorf("field value = %q, want %q", f.Value(), "2048")
	}
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "\n")
	format.ReadableSize(w, 0)
	format.ReadableSize(w, "1073741824")
	format.ReadableSize(w, "nope")
	if err := w.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "0\n1073741824\n0\n"
	if buf.String() != want {
		t.Errorf("written %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{ calls int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, errors.New("boom")
}

func TestWriterSinkKeepsFirstError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw, "\t")
	label := format.ReadableSize(w, 500)
	if label != "( 500.00 bytes )" {
		t.Errorf("label = %q, write errors must not affect formatting", label)
	}
	format.ReadableSize(w, 600)
	if w.Err() == nil {
		t.Fatal("expected write error")
	}
	if fw.calls != 1 {
		t.Errorf("writer called %d times after failure, want 1", fw.calls)
	}
}

func TestWriterSinkSeparator(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, "\t")
	label := format.ReadableSize(w, "1536.6")
	buf.WriteString(label)
	if got, want := buf.String(), "1537\t( 1.50 KB )"; got != want {
		t.Errorf("written %q, want %q", got, want)
	}
}
