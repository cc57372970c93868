package repository

import (
	"strings"

	"github.com/falconakhil/CompeteHub/internal/model"
	"gorm.io/gorm"
)

type GenreRepository interface {
	GetOrCreate(names []string) ([]model.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

// GetOrCreate resolves each name to a genre row, creating missing ones.
// Names are lowercased and trimmed before lookup; empty names are skipped.
func (r *genreRepository) GetOrCreate(names []string) ([]model.Genre, error) {
	var genres []model.Genre
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		var genre model.Genre
		if err := r.db.Where(model.Genre{Name: name}).FirstOrCreate(&genre).Error; err != nil {
			return nil, err
		}
		genres = append(genres, genre)
	}
	return genres, nil
}
