package service

import (
	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/repository"
)

type PaperService interface {
	DocumentService[models.Paper, dto.PaperDTO]
}

func NewPaperService(repo repository.PaperRepository) PaperService {
	return NewDocumentService[models.Paper, dto.PaperDTO](repo, dto.PaperMapper{}, nil,
		Resource{Name: "paper", Plural: "papers", Title: "Paper", Label: "paper"})
}

type FinalProjectService interface {
	DocumentService[models.FinalProject, dto.FinalProjectDTO]
}

func NewFinalProjectService(repo repository.FinalProjectRepository) FinalProjectService {
	return NewDocumentService[models.FinalProject, dto.FinalProjectDTO](repo, dto.FinalProjectMapper{}, nil,
		Resource{Name: "final project", Plural: "final projects", Title: "Final project", Label: "final_project"})
}
