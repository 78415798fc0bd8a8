package repository

import (
	"github.com/RigelNana/acervo/models"

	"gorm.io/gorm"
)

type PaperRepository interface {
	DocumentRepository[models.Paper]
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return NewDocumentRepository[models.Paper](db, map[string]string{
		"year":  "year",
		"venue": "venue",
	})
}

type FinalProjectRepository interface {
	DocumentRepository[models.FinalProject]
}

func NewFinalProjectRepository(db *gorm.DB) FinalProjectRepository {
	return NewDocumentRepository[models.FinalProject](db, map[string]string{
		"defenseYear": "defense_year",
		"course":      "course",
		"institution": "institution",
		"advisor":     "advisor",
	})
}
