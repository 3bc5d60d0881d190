package entity

// MediaKind discriminates the MediaItem variants.
type MediaKind string

const (
	MediaPending   MediaKind = "pending"
	MediaPersisted MediaKind = "persisted"
)

// MediaItem is either a PendingUpload staged in the preview store or a
// PersistedMedia descriptor already stored by the API. The interface is
// sealed; callers switch on the concrete type.
type MediaItem interface {
	Kind() MediaKind
	isMediaItem()
}

// PendingUpload is a local file that has not been submitted yet.
// PreviewID is the handle that must be released once the file is consumed
// or discarded.
type PendingUpload struct {
	PreviewID   string `json:"preview_id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	PreviewURL  string `json:"preview_url"`
}

func (PendingUpload) Kind() MediaKind { return MediaPending }
func (PendingUpload) isMediaItem()    {}

// PersistedMedia is a media descriptor returned by the API.
type PersistedMedia struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

func (PersistedMedia) Kind() MediaKind { return MediaPersisted }
func (PersistedMedia) isMediaItem()    {}

// PendingPreviewIDs returns the preview handles held by pending items.
func PendingPreviewIDs(items []MediaItem) []string {
	var ids []string
	for _, item := range items {
		if p, ok := item.(PendingUpload); ok {
			ids = append(ids, p.PreviewID)
		}
	}

	return ids
}
