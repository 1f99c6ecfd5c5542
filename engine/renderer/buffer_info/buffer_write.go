package buffer_info

// BufferWrite describes a single sub-range upload into one buffer of a BufferInfo.
type BufferWrite struct {
	// Name is the attribute binding name, or "indices" for the element buffer.
	Name string
	// Offset is the byte offset into the buffer.
	Offset int
	// Data is the bytes to upload.
	Data []byte
}
