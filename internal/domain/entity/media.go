package entity

import "io"

// MediaFile is an uploaded file on its way to the media bucket.
type MediaFile struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredMedia is an object read back from the media bucket.
type StoredMedia struct {
	Path        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}
