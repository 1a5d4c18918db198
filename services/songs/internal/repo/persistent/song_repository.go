package persistent

import (
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongRepository interface {
	Create(request *entity.SongRequest) error
	GetByID(id string) (*entity.SongRequest, error)
	ListRanked() ([]*entity.SongRequest, error)
	Upvote(id string) (*entity.SongRequest, error)
	Delete(id string) error
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(request *entity.SongRequest) error {
	requestModel := ToSongRequestModel(request)
	if requestModel.ID == "" {
		requestModel.ID = uuid.New().String()
	}
	if requestModel.RequesterName == "" {
		requestModel.RequesterName = "Anonymous"
	}

	if err := r.db.Create(requestModel).Error; err != nil {
		return err
	}

	*request = *ToSongRequestEntity(requestModel)
	return nil
}

func (r *songRepository) GetByID(id string) (*entity.SongRequest, error) {
	var requestModel model.SongRequestModel
	if err := r.db.Where("id = ?", id).First(&requestModel).Error; err != nil {
		return nil, err
	}
	return ToSongRequestEntity(&requestModel), nil
}

// ListRanked returns all requests, most upvoted first, newest first on ties.
func (r *songRepository) ListRanked() ([]*entity.SongRequest, error) {
	var requestModels []model.SongRequestModel
	if err := r.db.Order("upvotes DESC, created_at DESC").Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]*entity.SongRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToSongRequestEntity(&requestModels[i])
	}
	return requests, nil
}

// Upvote increments the counter atomically in the database so concurrent
// votes never lose updates, then reloads the row.
func (r *songRepository) Upvote(id string) (*entity.SongRequest, error) {
	result := r.db.Model(&model.SongRequestModel{}).
		Where("id = ?", id).
		UpdateColumn("upvotes", gorm.Expr("upvotes + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetByID(id)
}

func (r *songRepository) Delete(id string) error {
	return r.db.Delete(&model.SongRequestModel{}, "id = ?", id).Error
}
