package dto

import "github.com/RigelNana/acervo/models"

// DocumentDTO carries the fields shared by books, papers and final projects.
// OwnerID is output only; the owner always comes from the caller's token.
type DocumentDTO struct {
	ID            int64   `json:"id"`
	Title         *string `json:"title,omitempty"`
	Author        *string `json:"author,omitempty"`
	KnowledgeArea *string `json:"knowledgeArea,omitempty"`
	FileName      *string `json:"fileName,omitempty"`
	Path          *string `json:"path,omitempty"`
	Size          *int64  `json:"size,omitempty"`
	ExtensionType *string `json:"extensionType,omitempty"`
	OwnerID       *int64  `json:"ownerId,omitempty"`
}

func documentToDTO(d *models.Document) DocumentDTO {
	return DocumentDTO{
		ID:            d.ID,
		Title:         ptr(d.Title),
		Author:        ptr(d.Author),
		KnowledgeArea: ptr(d.KnowledgeArea),
		FileName:      ptr(d.FileName),
		Path:          ptr(d.Path),
		Size:          ptr(d.Size),
		ExtensionType: ptr(d.ExtensionType),
		OwnerID:       ptr(d.OwnerID),
	}
}

func documentToEntity(d DocumentDTO) models.Document {
	return models.Document{
		Title:         val(d.Title),
		Author:        val(d.Author),
		KnowledgeArea: val(d.KnowledgeArea),
		FileName:      val(d.FileName),
		Path:          val(d.Path),
		Size:          val(d.Size),
		ExtensionType: val(d.ExtensionType),
	}
}

func mergeDocument(dst *models.Document, src DocumentDTO) {
	merge(&dst.Title, src.Title)
	merge(&dst.Author, src.Author)
	merge(&dst.KnowledgeArea, src.KnowledgeArea)
	merge(&dst.FileName, src.FileName)
	merge(&dst.Path, src.Path)
	merge(&dst.Size, src.Size)
	merge(&dst.ExtensionType, src.ExtensionType)
}

type BookDTO struct {
	DocumentDTO
	PublicationYear *string `json:"publicationYear,omitempty"`
	Edition         *string `json:"edition,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
}

func (d BookDTO) ToResponse() BookDTO { return d }

type BookMapper struct{}

func (BookMapper) ToDTO(b *models.Book) BookDTO {
	return BookDTO{
		DocumentDTO:     documentToDTO(&b.Document),
		PublicationYear: ptr(b.PublicationYear),
		Edition:         ptr(b.Edition),
		Publisher:       ptr(b.Publisher),
		ISBN:            ptr(b.ISBN),
	}
}

func (BookMapper) ToEntity(d BookDTO) *models.Book {
	return &models.Book{
		Document:        documentToEntity(d.DocumentDTO),
		PublicationYear: val(d.PublicationYear),
		Edition:         val(d.Edition),
		Publisher:       val(d.Publisher),
		ISBN:            val(d.ISBN),
	}
}

func (BookMapper) Merge(dst *models.Book, src BookDTO) {
	mergeDocument(&dst.Document, src.DocumentDTO)
	merge(&dst.PublicationYear, src.PublicationYear)
	merge(&dst.Edition, src.Edition)
	merge(&dst.Publisher, src.Publisher)
	merge(&dst.ISBN, src.ISBN)
}

type PaperDTO struct {
	DocumentDTO
	Year  *string `json:"year,omitempty"`
	Venue *string `json:"venue,omitempty"`
}

func (d PaperDTO) ToResponse() PaperDTO { return d }

type PaperMapper struct{}

func (PaperMapper) ToDTO(p *models.Paper) PaperDTO {
	return PaperDTO{
		DocumentDTO: documentToDTO(&p.Document),
		Year:        ptr(p.Year),
		Venue:       ptr(p.Venue),
	}
}

func (PaperMapper) ToEntity(d PaperDTO) *models.Paper {
	return &models.Paper{
		Document: documentToEntity(d.DocumentDTO),
		Year:     val(d.Year),
		Venue:    val(d.Venue),
	}
}

func (PaperMapper) Merge(dst *models.Paper, src PaperDTO) {
	mergeDocument(&dst.Document, src.DocumentDTO)
	merge(&dst.Year, src.Year)
	merge(&dst.Venue, src.Venue)
}

type FinalProjectDTO struct {
	DocumentDTO
	DefenseYear *string `json:"defenseYear,omitempty"`
	Course      *string `json:"course,omitempty"`
	Institution *string `json:"institution,omitempty"`
	Advisor     *string `json:"advisor,omitempty"`
}

func (d FinalProjectDTO) ToResponse() FinalProjectDTO { return d }

type FinalProjectMapper struct{}

func (FinalProjectMapper) ToDTO(f *models.FinalProject) FinalProjectDTO {
	return FinalProjectDTO{
		DocumentDTO: documentToDTO(&f.Document),
		DefenseYear: ptr(f.DefenseYear),
		Course:      ptr(f.Course),
		Institution: ptr(f.Institution),
		Advisor:     ptr(f.Advisor),
	}
}

func (FinalProjectMapper) ToEntity(d FinalProjectDTO) *models.FinalProject {
	return &models.FinalProject{
		Document:    documentToEntity(d.DocumentDTO),
		DefenseYear: val(d.DefenseYear),
		Course:      val(d.Course),
		Institution: val(d.Institution),
		Advisor:     val(d.Advisor),
	}
}

func (FinalProjectMapper) Merge(dst *models.FinalProject, src FinalProjectDTO) {
	mergeDocument(&dst.Document, src.DocumentDTO)
	merge(&dst.DefenseYear, src.DefenseYear)
	merge(&dst.Course, src.Course)
	merge(&dst.Institution, src.Institution)
	merge(&dst.Advisor, src.Advisor)
}
