package entity

import "strings"

type MediaKind string

const (
	KindImage   MediaKind = "image"
	KindVideo   MediaKind = "video"
	KindUnknown MediaKind = "unknown"
)

type UploadState string

const (
	StatePending   UploadState = "pending"
	StateUploading UploadState = "uploading"
	StateComplete  UploadState = "complete"
	StateError     UploadState = "error"
)

// UploadFile is one user-selected file, fully read into memory. Guests
// upload from phones, so files are small enough to buffer.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// IsHEIC reports whether the file name carries a .heic extension. Browsers
// frequently misreport the MIME type for HEIC, so the name is authoritative.
func (f UploadFile) IsHEIC() bool {
	return strings.HasSuffix(strings.ToLower(f.Name), ".heic")
}

// Kind classifies a file by its declared MIME type prefix. HEIC files are
// unknown regardless of what the browser claims.
func (f UploadFile) Kind() MediaKind {
	if f.IsHEIC() {
		return KindUnknown
	}
	switch {
	case strings.HasPrefix(f.ContentType, "image/"):
		return KindImage
	case strings.HasPrefix(f.ContentType, "video/"):
		return KindVideo
	default:
		return KindUnknown
	}
}

// UploadStatus tracks one file through the upload state machine.
// Invariants: complete implies progress 100, error implies progress 0.
type UploadStatus struct {
	FileName string      `json:"file_name"`
	Progress int         `json:"progress"`
	State    UploadState `json:"state"`
	Error    string      `json:"error,omitempty"`
}

// MediaItem is the composite record for one selected file: the file itself,
// its preview and its upload status live together so nothing can drift out
// of index alignment.
type MediaItem struct {
	File    UploadFile
	Kind    MediaKind
	Preview string
	Status  UploadStatus
}
