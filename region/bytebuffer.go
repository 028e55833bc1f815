package region

import "io"

// byteWriter fills a preallocated buffer and refuses to grow it.
type byteWriter struct {
	bytes  []byte
	offset int
}

func newByteWriter(bytes []byte) *byteWriter {
	return &byteWriter{
		bytes:  bytes,
		offset: 0,
	}
}

func (w *byteWriter) Write(p []byte) (int, error) {
	n := copy(w.bytes[w.offset:], p)
	w.offset += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (w *byteWriter) Len() int {
	return w.offset
}
