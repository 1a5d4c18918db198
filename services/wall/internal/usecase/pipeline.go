package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"regexp"
	"sync"
	"time"

	"lovewall/pkg/logger"
	"lovewall/pkg/storage"
	"lovewall/services/wall/internal/entity"

	"github.com/google/uuid"
)

const (
	// MaxBatchFiles caps one submission; extra selections are dropped, not rejected.
	MaxBatchFiles = 10

	defaultAdvisoryTTL = 5 * time.Second

	keyNamespace = "wall-of-love"
)

var keySanitizer = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Batch is one submission's worth of media items. Items keep their
// selection order; the first successful upload becomes the post's primary
// medium. All mutation goes through the batch's lock so status snapshots
// never observe a half-applied update.
type Batch struct {
	mu       sync.Mutex
	items    []*entity.MediaItem
	advisory string
	finished int
	overall  int
}

// Advisory returns the truncation notice, empty once it has auto-cleared.
func (b *Batch) Advisory() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.advisory
}

func (b *Batch) clearAdvisory() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.advisory = ""
}

// Size returns the number of retained items.
func (b *Batch) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// OverallProgress is the aggregate percentage, advancing in whole-item
// increments as items finish (success or error).
func (b *Batch) OverallProgress() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.overall
}

// Statuses returns a snapshot of every item's upload status, in selection order.
func (b *Batch) Statuses() []entity.UploadStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	statuses := make([]entity.UploadStatus, len(b.items))
	for i, item := range b.items {
		statuses[i] = item.Status
	}
	return statuses
}

// Previews returns each item's preview reference; empty strings mark items
// that render with a placeholder.
func (b *Batch) Previews() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	previews := make([]string, len(b.items))
	for i, item := range b.items {
		previews[i] = item.Preview
	}
	return previews
}

func (b *Batch) setProgress(i, progress int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[i].Status.State = entity.StateUploading
	b.items[i].Status.Progress = progress
}

func (b *Batch) setComplete(i int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[i].Status.State = entity.StateComplete
	b.items[i].Status.Progress = 100
	b.finished++
	b.overall = b.finished * 100 / len(b.items)
}

func (b *Batch) setError(i int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[i].Status.State = entity.StateError
	b.items[i].Status.Progress = 0
	b.items[i].Status.Error = err.Error()
	b.finished++
	b.overall = b.finished * 100 / len(b.items)
}

// UploadResult reports the outcome of one batch run.
type UploadResult struct {
	// URLs of successfully stored objects, in selection order.
	URLs     []string
	Statuses []entity.UploadStatus
	Errored  int
}

// Pipeline normalizes and uploads media batches to the object store.
type Pipeline struct {
	store       storage.ObjectStore
	logger      *logger.Logger
	maxFiles    int
	advisoryTTL time.Duration
	now         func() time.Time
	keyTag      func() string
}

func NewPipeline(store storage.ObjectStore, log *logger.Logger, maxFiles int) *Pipeline {
	if maxFiles <= 0 {
		maxFiles = MaxBatchFiles
	}
	return &Pipeline{
		store:       store,
		logger:      log,
		maxFiles:    maxFiles,
		advisoryTTL: defaultAdvisoryTTL,
		now:         time.Now,
		keyTag:      func() string { return uuid.New().String()[:8] },
	}
}

// NewBatch builds a batch from a raw selection. Selections beyond the cap
// are truncated and an advisory is set; it clears itself after the TTL.
func (p *Pipeline) NewBatch(files []entity.UploadFile) *Batch {
	batch := &Batch{}

	if len(files) > p.maxFiles {
		batch.advisory = fmt.Sprintf("Only the first %d files were kept", p.maxFiles)
		files = files[:p.maxFiles]
		time.AfterFunc(p.advisoryTTL, batch.clearAdvisory)
	}

	batch.items = make([]*entity.MediaItem, len(files))
	for i, f := range files {
		batch.items[i] = &entity.MediaItem{
			File: f,
			Kind: f.Kind(),
			Status: entity.UploadStatus{
				FileName: f.Name,
				State:    entity.StatePending,
			},
		}
	}
	return batch
}

// GeneratePreviews builds a display reference for every item, in parallel.
// Images get an inline data URL, videos an opaque handle (no frame
// extraction), HEIC and unrecognized files none. A failed preview leaves
// its item on a placeholder and never blocks the batch.
func (p *Pipeline) GeneratePreviews(batch *Batch) {
	var wg sync.WaitGroup
	for i := range batch.items {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			preview := buildPreview(batch.items[i].File)

			batch.mu.Lock()
			batch.items[i].Preview = preview
			batch.mu.Unlock()
		}(i)
	}
	wg.Wait()
}

func buildPreview(f entity.UploadFile) string {
	if len(f.Data) == 0 {
		return ""
	}
	switch f.Kind() {
	case entity.KindImage:
		return "data:" + f.ContentType + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
	case entity.KindVideo:
		// A stable handle is enough for the review modal; no decode needed.
		return "blob:" + uuid.New().String()
	default:
		return ""
	}
}

// Run uploads the batch strictly one item at a time, in selection order.
// Item i+1 does not start until item i has completed or errored. A per-item
// error never aborts the batch; the result carries whatever succeeded.
//
// Per-item checkpoints: 20 after normalization, 40 when the store call
// starts, 80 once the object is stored and the URL is being resolved,
// 100 on completion. Errors reset the item's progress to 0.
func (p *Pipeline) Run(batch *Batch) UploadResult {
	result := UploadResult{}

	for i := range batch.items {
		item := batch.items[i]

		normalized := normalizeFile(item.File)
		batch.setProgress(i, 20)

		key := p.objectKey(normalized.Name)
		batch.setProgress(i, 40)

		if err := p.store.Upload(key, bytes.NewReader(normalized.Data), normalized.ContentType); err != nil {
			p.logger.Error("Failed to upload %s: %v", normalized.Name, err)
			batch.setError(i, err)
			result.Errored++
			continue
		}

		batch.setProgress(i, 80)
		url := p.store.PublicURL(key)

		batch.setComplete(i)
		result.URLs = append(result.URLs, url)
	}

	result.Statuses = batch.Statuses()
	return result
}

// objectKey builds a collision-resistant key: millisecond timestamp, a short
// random tag, then the sanitized original name, under the wall's namespace.
// The tag keeps two same-named files in one batch from overwriting each other.
func (p *Pipeline) objectKey(name string) string {
	sanitized := keySanitizer.ReplaceAllString(name, "")
	return fmt.Sprintf("%s/%d-%s-%s", keyNamespace, p.now().UnixMilli(), p.keyTag(), sanitized)
}
