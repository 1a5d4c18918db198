package persistent

import (
	"lovewall/services/wall/internal/entity"
	"lovewall/services/wall/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:              m.ID,
		Author:          m.Author,
		Message:         m.Message,
		ImageURL:        m.ImageURL,
		AdditionalMedia: []string(m.AdditionalMedia),
		CreatedAt:       m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:              e.ID,
		Author:          e.Author,
		Message:         e.Message,
		ImageURL:        e.ImageURL,
		AdditionalMedia: e.AdditionalMedia,
		CreatedAt:       e.CreatedAt,
	}
}
