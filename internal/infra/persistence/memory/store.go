// Package memory is a process-local persistence driver. It mirrors the postgres
// repositories' semantics (soft delete, unique keys, insertion order) without a database.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

type usuarioRecord struct {
	usuario   entity.Usuario
	seq       int64
	deletedAt *time.Time
}

type comercioRecord struct {
	comercio  entity.Comercio
	seq       int64
	deletedAt *time.Time
}

type webRecord struct {
	web       entity.Web
	seq       int64
	deletedAt *time.Time
}

// Store holds every collection behind one mutex. Transactions hold the mutex for their whole duration.
type Store struct {
	mu  sync.Mutex
	seq int64
	now func() time.Time

	usuarios  map[uuid.UUID]*usuarioRecord
	comercios map[string]*comercioRecord // keyed by CIF
	webs      map[uuid.UUID]*webRecord
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		now:       time.Now,
		usuarios:  make(map[uuid.UUID]*usuarioRecord),
		comercios: make(map[string]*comercioRecord),
		webs:      make(map[uuid.UUID]*webRecord),
	}
}

// LookupUsuario returns a usuario even when it was soft-deleted.
func (s *Store) LookupUsuario(id uuid.UUID) (usuario *entity.Usuario, deleted bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.usuarios[id]
	if !ok {
		return nil, false, false
	}

	return cloneUsuario(&rec.usuario), rec.deletedAt != nil, true
}

// LookupComercio returns a comercio even when it was soft-deleted.
func (s *Store) LookupComercio(cif string) (comercio *entity.Comercio, deleted bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.comercios[cif]
	if !ok {
		return nil, false, false
	}

	return cloneComercio(&rec.comercio), rec.deletedAt != nil, true
}

// LookupWeb returns a web even when it was soft-deleted.
func (s *Store) LookupWeb(id uuid.UUID) (web *entity.Web, deleted bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.webs[id]
	if !ok {
		return nil, false, false
	}

	return cloneWeb(&rec.web), rec.deletedAt != nil, true
}

// lock acquires the store mutex unless the caller already holds it through a transaction.
func (s *Store) lock(ctx context.Context, held bool) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if held {
		return func() {}, nil
	}
	s.mu.Lock()

	return s.mu.Unlock, nil
}

func (s *Store) nextSeq() int64 {
	s.seq++

	return s.seq
}

type snapshot struct {
	seq       int64
	usuarios  map[uuid.UUID]*usuarioRecord
	comercios map[string]*comercioRecord
	webs      map[uuid.UUID]*webRecord
}

// snapshot deep-copies every collection. Callers must hold the mutex.
func (s *Store) snapshot() *snapshot {
	snap := &snapshot{
		seq:       s.seq,
		usuarios:  make(map[uuid.UUID]*usuarioRecord, len(s.usuarios)),
		comercios: make(map[string]*comercioRecord, len(s.comercios)),
		webs:      make(map[uuid.UUID]*webRecord, len(s.webs)),
	}
	for k, v := range s.usuarios {
		snap.usuarios[k] = &usuarioRecord{usuario: *cloneUsuario(&v.usuario), seq: v.seq, deletedAt: v.deletedAt}
	}
	for k, v := range s.comercios {
		snap.comercios[k] = &comercioRecord{comercio: *cloneComercio(&v.comercio), seq: v.seq, deletedAt: v.deletedAt}
	}
	for k, v := range s.webs {
		snap.webs[k] = &webRecord{web: *cloneWeb(&v.web), seq: v.seq, deletedAt: v.deletedAt}
	}

	return snap
}

// restore replaces every collection with the snapshot. Callers must hold the mutex.
func (s *Store) restore(snap *snapshot) {
	s.seq = snap.seq
	s.usuarios = snap.usuarios
	s.comercios = snap.comercios
	s.webs = snap.webs
}

func cloneUsuario(u *entity.Usuario) *entity.Usuario {
	c := *u
	c.Intereses = slices.Clone(u.Intereses)
	c.Resenas = slices.Clone(u.Resenas)

	return &c
}

func cloneComercio(c *entity.Comercio) *entity.Comercio {
	cp := *c
	if c.Pagina != nil {
		pagina := *c.Pagina
		cp.Pagina = &pagina
	}

	return &cp
}

func cloneWeb(w *entity.Web) *entity.Web {
	c := *w
	c.Textos = slices.Clone(w.Textos)
	c.Fotos = slices.Clone(w.Fotos)
	c.Resenas = slices.Clone(w.Resenas)
	if c.Resenas == nil {
		c.Resenas = []entity.Resena{}
	}

	return &c
}
