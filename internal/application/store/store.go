// Package store mantiene el estado del inventario en memoria y lo persiste en segundo plano.
//
// Toda mutación pasa por una Action aplicada con Reduce; el snapshot resultante se encola
// para un único goroutine persistidor que guarda siempre la versión más reciente.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/morefix-stock/internal/domain/entity"
	"github.com/jhoicas/morefix-stock/internal/domain/repository"
	"github.com/jhoicas/morefix-stock/internal/domain/seed"
)

const saveTimeout = 10 * time.Second

// Store handle del inventario. Construir con New; el valor cero no es utilizable.
type Store struct {
	mu     sync.RWMutex
	state  entity.Snapshot
	repo   repository.SnapshotRepository
	log    zerolog.Logger
	closed bool

	pending   chan entity.Snapshot
	done      chan struct{}
	closeOnce sync.Once

	now   func() time.Time
	newID func() string
}

// Option personaliza el Store en construcción.
type Option func(*Store)

// WithClock fija el reloj usado para CreatedAt y Timestamp.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator fija el generador de IDs (por defecto uuid v4).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New carga el snapshot desde repo; si no existe o la carga falla arranca con los datos semilla.
// Con repo nil el Store vive solo en memoria y no lanza el persistidor.
func New(ctx context.Context, repo repository.SnapshotRepository, log zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		repo:  repo,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state = normalize(s.initialState(ctx))

	if repo == nil {
		close(s.done)
		return s
	}
	s.pending = make(chan entity.Snapshot, 1)
	go s.persistLoop()
	return s
}

func (s *Store) initialState(ctx context.Context) entity.Snapshot {
	if s.repo == nil {
		return seed.Default()
	}
	snap, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("no se pudo cargar el snapshot, usando datos semilla")
		return seed.Default()
	}
	if snap == nil {
		s.log.Info().Msg("sin snapshot guardado, usando datos semilla")
		return seed.Default()
	}
	s.log.Info().
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Msg("snapshot cargado")
	return *snap
}

// Dispatch aplica la acción y encola el nuevo estado para persistirlo.
func (s *Store) Dispatch(a Action) {
	if s == nil {
		panic("store: Dispatch sobre Store nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	s.enqueue(s.state)
}

// enqueue requiere s.mu tomado. El buffer es de 1: se descarta el pendiente y gana el último.
func (s *Store) enqueue(snap entity.Snapshot) {
	if s.pending == nil || s.closed {
		return
	}
	select {
	case <-s.pending:
	default:
	}
	s.pending <- snap
}

func (s *Store) persistLoop() {
	defer close(s.done)
	for snap := range s.pending {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		if err := s.repo.Save(ctx, snap); err != nil {
			s.log.Error().Err(err).Msg("error guardando snapshot")
		}
		cancel()
	}
}

// Close vacía el snapshot pendiente y detiene el persistidor. Las mutaciones posteriores
// se aplican en memoria pero ya no se guardan. Es seguro llamarlo varias veces.
func (s *Store) Close(ctx context.Context) error {
	if s == nil {
		panic("store: Close sobre Store nil")
	}
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		if s.pending != nil {
			close(s.pending)
		}
		s.mu.Unlock()
	})
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) read() entity.Snapshot {
	if s == nil {
		panic("store: lectura sobre Store nil")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot devuelve una copia del estado completo.
func (s *Store) Snapshot() entity.Snapshot {
	return s.read().Clone()
}

// Replace reemplaza el estado completo (LOAD_STATE).
func (s *Store) Replace(snap entity.Snapshot) {
	s.Dispatch(LoadState{State: snap})
}

// Reset vuelve a los datos semilla y descarta el historial de chat.
func (s *Store) Reset() {
	s.Dispatch(LoadState{State: seed.Default()})
}

// AddCategory crea una categoría con ID y fecha generados.
func (s *Store) AddCategory(name, description string) entity.Category {
	c := entity.Category{ID: s.newID(), Name: name, Description: description, CreatedAt: s.now()}
	s.Dispatch(AddCategory{Category: c})
	return c
}

// UpdateCategory reemplaza la categoría con el mismo ID. Devuelve false si no existía (no-op).
func (s *Store) UpdateCategory(c entity.Category) bool {
	if _, ok := s.GetCategoryByID(c.ID); !ok {
		return false
	}
	s.Dispatch(UpdateCategory{Category: c})
	return true
}

// DeleteCategory elimina la categoría; los productos conservan la referencia colgante.
func (s *Store) DeleteCategory(id string) bool {
	if _, ok := s.GetCategoryByID(id); !ok {
		return false
	}
	s.Dispatch(DeleteCategory{ID: id})
	return true
}

// AddSupplier crea un proveedor con ID y fecha generados.
func (s *Store) AddSupplier(name, email, phone string) entity.Supplier {
	sp := entity.Supplier{ID: s.newID(), Name: name, Email: email, Phone: phone, CreatedAt: s.now()}
	s.Dispatch(AddSupplier{Supplier: sp})
	return sp
}

func (s *Store) UpdateSupplier(sp entity.Supplier) bool {
	if _, ok := s.GetSupplierByID(sp.ID); !ok {
		return false
	}
	s.Dispatch(UpdateSupplier{Supplier: sp})
	return true
}

func (s *Store) DeleteSupplier(id string) bool {
	if _, ok := s.GetSupplierByID(id); !ok {
		return false
	}
	s.Dispatch(DeleteSupplier{ID: id})
	return true
}

// AddProduct agrega el producto; ID y CreatedAt de la entrada se ignoran y los asigna el Store.
func (s *Store) AddProduct(p entity.Product) entity.Product {
	p.ID = s.newID()
	p.CreatedAt = s.now()
	s.Dispatch(AddProduct{Product: p})
	return p
}

func (s *Store) UpdateProduct(p entity.Product) bool {
	if _, ok := s.GetProductByID(p.ID); !ok {
		return false
	}
	s.Dispatch(UpdateProduct{Product: p})
	return true
}

func (s *Store) DeleteProduct(id string) bool {
	if _, ok := s.GetProductByID(id); !ok {
		return false
	}
	s.Dispatch(DeleteProduct{ID: id})
	return true
}

// AddChatMessage agrega un mensaje al historial con ID y timestamp generados.
func (s *Store) AddChatMessage(role, content string) entity.ChatMessage {
	m := entity.ChatMessage{ID: s.newID(), Role: role, Content: content, Timestamp: s.now()}
	s.Dispatch(AddChatMessage{Message: m})
	return m
}
