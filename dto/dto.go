// Package dto holds the wire representations of the entities, the mappers
// between both sides and the response envelope.
package dto

// EntityDTO is implemented by every wire type. ToResponse shapes the value
// before it leaves the service layer and may redact fields.
type EntityDTO[D any] interface {
	ToResponse() D
}

// Mapper converts between an entity and its DTO. Merge copies the non-nil
// fields of src onto dst and never touches id, owner or timestamps.
type Mapper[E any, D any] interface {
	ToDTO(entity *E) D
	ToEntity(d D) *E
	Merge(dst *E, src D)
}

func ptr[T any](v T) *T {
	return &v
}

func val[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func merge[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
