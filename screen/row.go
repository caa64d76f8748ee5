package screen

// Row holds the pending bytes for one terminal line. Content lives only
// until the next refresh emits it; the Screen is the sole owner of the
// backing storage.
type Row struct {
	data []byte
}

// Append stores one byte at the end of the row.
func (r *Row) Append(b byte) {
	r.data = append(r.data, b)
}

// AppendString stores a run of bytes at the end of the row. The caller
// guarantees the run contains no newline and fits the row's capacity.
func (r *Row) AppendString(s string) {
	r.data = append(r.data, s...)
}

// Len returns the number of bytes stored.
func (r *Row) Len() int {
	return len(r.data)
}

// Bytes returns the stored bytes. The slice is owned by the row and only
// valid until the next Append or Reset.
func (r *Row) Bytes() []byte {
	return r.data
}

// Reset releases the row's storage and leaves it empty.
func (r *Row) Reset() {
	r.data = nil
}
