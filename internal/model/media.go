package model

// StoredFile describes an uploaded image after it has been written to storage.
type StoredFile struct {
	Filename    string `json:"filename"`
	Key         string `json:"-"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}
