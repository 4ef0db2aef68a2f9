package model

// CoverURL is a resource identifier that can be written as a cover value.
// Values are validated to start with http:// or https:// before use.
type CoverURL string
