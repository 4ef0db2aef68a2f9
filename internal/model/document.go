// Package model defines the data structures for front matter cover stamping.
package model

// Path represents a file system path.
type Path string

// Encoding identifies how a document's bytes were decoded.
type Encoding string

const (
	// EncodingUTF8 is the primary document encoding.
	EncodingUTF8 Encoding = "utf-8"
	// EncodingGBK is the single fallback tried when UTF-8 decoding fails.
	EncodingGBK Encoding = "gbk"
)

// Document represents a Markdown file loaded for processing.
type Document struct {
	Path     Path
	Content  string
	Encoding Encoding
}
