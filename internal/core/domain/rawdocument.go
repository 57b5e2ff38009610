package domain

// RawDocument is a text file before normalisation into document fields.
type RawDocument struct {
	// URI locates the file, typically its path.
	URI string

	// Content is the unparsed file body.
	Content []byte
}
