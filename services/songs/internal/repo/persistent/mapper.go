package persistent

import (
	"lovewall/services/songs/internal/entity"
	"lovewall/services/songs/internal/model"
)

func ToSongRequestEntity(m *model.SongRequestModel) *entity.SongRequest {
	if m == nil {
		return nil
	}

	return &entity.SongRequest{
		ID:            m.ID,
		SongTitle:     m.SongTitle,
		Artist:        m.Artist,
		Album:         m.Album,
		AlbumArt:      m.AlbumArt,
		SongURL:       m.SongURL,
		RequesterName: m.RequesterName,
		Upvotes:       m.Upvotes,
		CreatedAt:     m.CreatedAt,
	}
}

func ToSongRequestModel(e *entity.SongRequest) *model.SongRequestModel {
	if e == nil {
		return nil
	}

	return &model.SongRequestModel{
		ID:            e.ID,
		SongTitle:     e.SongTitle,
		Artist:        e.Artist,
		Album:         e.Album,
		AlbumArt:      e.AlbumArt,
		SongURL:       e.SongURL,
		RequesterName: e.RequesterName,
		Upvotes:       e.Upvotes,
		CreatedAt:     e.CreatedAt,
	}
}
