// Package fakerepo is an in-memory implementation of the repository
// interfaces. It keeps the soft-delete and paging contract of the gorm
// repositories and runs the model save hooks, so services can be tested
// without a database. Uniqueness is left to the service hooks.
package fakerepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RigelNana/acervo/models"
	"github.com/RigelNana/acervo/repository"

	"gorm.io/gorm"
)

type saveHook interface {
	BeforeSave(tx *gorm.DB) error
}

// Store holds copies of T keyed by id.
type Store[T any] struct {
	mu       sync.RWMutex
	rows     map[int64]T
	nextID   int64
	base     func(*T) *models.Base
	sortable map[string]string
	now      func() time.Time
}

func NewStore[T any](base func(*T) *models.Base, sortable map[string]string) *Store[T] {
	return &Store[T]{
		rows:     make(map[int64]T),
		base:     base,
		sortable: sortable,
		now:      time.Now,
	}
}

func (s *Store[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok || !s.base(&row).Active {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

func (s *Store[T]) FindByIDUnscoped(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &row, nil
}

// FindAll checks the sort properties like the real repository but always
// orders by id.
func (s *Store[T]) FindAll(ctx context.Context, page repository.Pageable) ([]*T, int64, error) {
	page = page.Normalize()
	if _, err := page.Columns(s.sortable); err != nil {
		return nil, 0, err
	}
	all := s.Filter(func(*T) bool { return true })
	total := int64(len(all))
	start := page.Offset()
	if start >= len(all) {
		return []*T{}, total, nil
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (s *Store[T]) Save(ctx context.Context, entity *T) error {
	if hook, ok := any(entity).(saveHook); ok {
		if err := hook.BeforeSave(nil); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.base(entity)
	now := s.now()
	if b.ID == 0 {
		s.nextID++
		b.ID = s.nextID
		b.Active = true
		b.CreatedAt = now
	} else if prev, ok := s.rows[b.ID]; ok {
		b.CreatedAt = s.base(&prev).CreatedAt
	}
	b.UpdatedAt = now
	s.rows[b.ID] = *entity
	return nil
}

func (s *Store[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := s.FindByID(ctx, id)
	return err == nil, nil
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	return int64(len(s.Filter(func(*T) bool { return true }))), nil
}

func (s *Store[T]) DeleteByID(ctx context.Context, id int64) error {
	entity, err := s.FindByID(ctx, id)
	if err != nil {
		return nil
	}
	return s.Delete(ctx, entity)
}

func (s *Store[T]) Delete(ctx context.Context, entity *T) error {
	s.base(entity).Active = false
	return s.Save(ctx, entity)
}

func (s *Store[T]) DeleteAll(ctx context.Context, entities []*T) error {
	for _, entity := range entities {
		if err := s.DeleteByID(ctx, s.base(entity).ID); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns the active rows matching keep, ordered by id.
func (s *Store[T]) Filter(keep func(*T) bool) []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*T
	for id := range s.rows {
		row := s.rows[id]
		if s.base(&row).Active && keep(&row) {
			out = append(out, &row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return s.base(out[i]).ID < s.base(out[j]).ID })
	return out
}

func (s *Store[T]) first(keep func(*T) bool) (*T, error) {
	rows := s.Filter(keep)
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return rows[0], nil
}

// Documents adds the title search.
type Documents[T any] struct {
	*Store[T]
	doc func(*T) *models.Document
}

func newDocuments[T any](doc func(*T) *models.Document, extra ...string) *Documents[T] {
	sortable := map[string]string{"id": "id", "title": "title", "author": "author", "knowledgeArea": "knowledge_area", "createdAt": "created_at", "updatedAt": "updated_at"}
	for _, p := range extra {
		sortable[p] = p
	}
	return &Documents[T]{
		Store: NewStore[T](func(e *T) *models.Base { return &doc(e).Base }, sortable),
		doc:   doc,
	}
}

func (d *Documents[T]) FindByName(ctx context.Context, name string) ([]*T, error) {
	return d.Filter(func(e *T) bool { return d.doc(e).Title == name }), nil
}

type Books struct {
	*Documents[models.Book]
}

func NewBooks() *Books {
	return &Books{newDocuments[models.Book](func(b *models.Book) *models.Document { return &b.Document },
		"publicationYear", "publisher", "isbn")}
}

func (b *Books) FindByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	return b.first(func(book *models.Book) bool { return book.ISBN == isbn })
}

func NewPapers() *Documents[models.Paper] {
	return newDocuments[models.Paper](func(p *models.Paper) *models.Document { return &p.Document }, "year", "venue")
}

func NewFinalProjects() *Documents[models.FinalProject] {
	return newDocuments[models.FinalProject](func(f *models.FinalProject) *models.Document { return &f.Document },
		"defenseYear", "course", "institution", "advisor")
}

type Users struct {
	*Store[models.User]
}

func NewUsers() *Users {
	return &Users{NewStore[models.User](func(u *models.User) *models.Base { return &u.Base },
		map[string]string{"id": "id", "login": "login", "email": "email", "createdAt": "created_at"})}
}

func (u *Users) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	return u.first(func(user *models.User) bool { return user.Login == login })
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.first(func(user *models.User) bool { return user.Email == email })
}

var (
	_ repository.BookRepository         = (*Books)(nil)
	_ repository.PaperRepository        = (*Documents[models.Paper])(nil)
	_ repository.FinalProjectRepository = (*Documents[models.FinalProject])(nil)
	_ repository.UserRepository         = (*Users)(nil)
)
