package domain

import "errors"

// ErrServiceNotFound возвращается при поиске неизвестной услуги в каталоге
var ErrServiceNotFound = errors.New("domain: service not found in catalog")

// ErrInvalidServiceDuration возвращается для услуги с некорректной длительностью
var ErrInvalidServiceDuration = errors.New("domain: invalid service duration")

// Service is a static catalog entry: what the barber offers, how long
// it takes and what it costs.
//
// MinAlignmentMinutes, when non-zero, constrains slot starts to
// multiples of the value (e.g. 60 forces on-the-hour starts). Zero
// means any grid position is allowed.
type Service struct {
	ID                  int64
	Name                string
	DurationMinutes     int
	Price               float64
	MinAlignmentMinutes int
}

// Validate проверяет корректность записи каталога
func (s Service) Validate() error {
	if s.DurationMinutes < MinServiceDurationMinutes || s.DurationMinutes > MaxServiceDurationMinutes {
		return ErrInvalidServiceDuration
	}
	return nil
}

// Catalog is the immutable service catalog, injected at startup
type Catalog struct {
	services []Service
	byID     map[int64]Service
}

// NewCatalog строит каталог услуг
func NewCatalog(services []Service) Catalog {
	byID := make(map[int64]Service, len(services))
	for _, s := range services {
		byID[s.ID] = s
	}
	return Catalog{services: services, byID: byID}
}

// ByID ищет услугу по идентификатору
func (c Catalog) ByID(id int64) (Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return Service{}, ErrServiceNotFound
	}
	return s, nil
}

// ByName ищет услугу по названию (используется при переносе:
// бронирование хранит только денормализованное название)
func (c Catalog) ByName(name string) (Service, error) {
	for _, s := range c.services {
		if s.Name == name {
			return s, nil
		}
	}
	return Service{}, ErrServiceNotFound
}

// All returns every catalog entry in declaration order
func (c Catalog) All() []Service {
	return c.services
}

// DefaultCatalog возвращает прайс-лист барбершопа
func DefaultCatalog() Catalog {
	return NewCatalog([]Service{
		{ID: 1, Name: "Corte de cabelo", DurationMinutes: 30, Price: 35},
		{ID: 2, Name: "Barba", DurationMinutes: 30, Price: 30},
		{ID: 3, Name: "Cabelo + barba", DurationMinutes: 60, Price: 60},
		{ID: 4, Name: "Luzes", DurationMinutes: 30, Price: 70},
		{ID: 5, Name: "Platinado", DurationMinutes: 30, Price: 120},
	})
}
