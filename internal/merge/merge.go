package merge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docufill/docpipe/internal/entity"
)

// ProfileStore persists client profiles. UpdateProfile loads (or lazily
// creates) the profile for clientID inside a transaction, applies fn to it,
// bumps the version and writes it back. When fn returns an error the
// transaction rolls back and nothing is written.
type ProfileStore interface {
	UpdateProfile(ctx context.Context, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error)
	GetProfile(ctx context.Context, clientID string) (*entity.ClientProfile, error)
}

// Engine folds extraction results into durable client profiles. Merges for
// the same client are serialized in-process with a per-client lock on top of
// the store's transaction, so concurrent pipelines cannot interleave
// read-modify-write cycles.
type Engine struct {
	store  ProfileStore
	logger *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(store ProfileStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, logger: logger, locks: make(map[string]*sync.Mutex)}
}

func (e *Engine) clientLock(clientID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[clientID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[clientID] = l
	}
	return l
}

// Result summarizes what one merge changed.
type Result struct {
	Profile *entity.ClientProfile
	Updated []string // field names whose value changed
	Skipped []string // field names locked by a manual edit
}

// Merge folds the extracted fields of one document into the client's
// profile. An incoming field overwrites the stored value unless the field
// is locked by a manual edit. Every document that supplied a field is
// recorded in that field's source list; re-merging the same document
// updates its existing entry instead of appending a duplicate, so a
// resumed job leaves the source history unchanged.
func (e *Engine) Merge(ctx context.Context, clientID string, documentID uuid.UUID, fields *entity.FieldSet, extractedAt time.Time) (*Result, error) {
	if fields == nil || fields.Len() == 0 {
		p, err := e.store.GetProfile(ctx, clientID)
		if err != nil {
			return nil, err
		}
		return &Result{Profile: p}, nil
	}

	lock := e.clientLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	res := &Result{}
	profile, err := e.store.UpdateProfile(ctx, clientID, func(p *entity.ClientProfile) error {
		if p.Fields == nil {
			p.Fields = make(map[string]entity.ProfileField)
		}
		for _, f := range fields.Fields() {
			ref := entity.FieldSourceRef{
				DocumentID:  documentID,
				ExtractedAt: extractedAt,
				Confidence:  f.Confidence,
			}
			existing, ok := p.Fields[f.Name]
			if !ok {
				p.Fields[f.Name] = entity.ProfileField{
					Value:        f.Value,
					Confidence:   f.Confidence,
					FieldSources: []entity.FieldSourceRef{ref},
				}
				res.Updated = append(res.Updated, f.Name)
				continue
			}
			existing.FieldSources = putSourceRef(existing.FieldSources, ref)
			if existing.ManuallyEdited {
				p.Fields[f.Name] = existing
				res.Skipped = append(res.Skipped, f.Name)
				continue
			}
			existing.Value = f.Value
			existing.Confidence = f.Confidence
			res.Updated = append(res.Updated, f.Name)
			p.Fields[f.Name] = existing
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("merge profile for client %s: %w", clientID, err)
	}
	res.Profile = profile

	e.logger.InfoContext(ctx, "merge.applied",
		"client_id", clientID,
		"document_id", documentID.String(),
		"updated", len(res.Updated),
		"skipped_manual", len(res.Skipped),
		"profile_version", profile.Version)
	return res, nil
}

// putSourceRef records a document in a field's source history. A document
// already present keeps a single entry, updated in place.
func putSourceRef(refs []entity.FieldSourceRef, ref entity.FieldSourceRef) []entity.FieldSourceRef {
	for i := range refs {
		if refs[i].DocumentID == ref.DocumentID {
			refs[i] = ref
			return refs
		}
	}
	return append(refs, ref)
}

// Profile returns the durable profile for a client, empty when none has
// been created yet.
func (e *Engine) Profile(ctx context.Context, clientID string) (*entity.ClientProfile, error) {
	return e.store.GetProfile(ctx, clientID)
}

// SetField writes a manual value on the profile, marking the field as
// manually edited so later merges leave it alone.
func (e *Engine) SetField(ctx context.Context, clientID, name, value string) (*entity.ClientProfile, error) {
	lock := e.clientLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	return e.store.UpdateProfile(ctx, clientID, func(p *entity.ClientProfile) error {
		if p.Fields == nil {
			p.Fields = make(map[string]entity.ProfileField)
		}
		f := p.Fields[name]
		f.Value = value
		f.Confidence = 100
		f.ManuallyEdited = true
		p.Fields[name] = f
		return nil
	})
}

// ClearManualEdit unlocks a manually edited field. The current value stays
// until a future merge supplies a higher-confidence one.
func (e *Engine) ClearManualEdit(ctx context.Context, clientID, name string) (*entity.ClientProfile, error) {
	lock := e.clientLock(clientID)
	lock.Lock()
	defer lock.Unlock()

	return e.store.UpdateProfile(ctx, clientID, func(p *entity.ClientProfile) error {
		f, ok := p.Fields[name]
		if !ok {
			return fmt.Errorf("profile has no field %q", name)
		}
		f.ManuallyEdited = false
		p.Fields[name] = f
		return nil
	})
}

// GroupFields buckets a profile's fields for display.
func GroupFields(p *entity.ClientProfile) map[entity.FieldGroup][]string {
	out := make(map[entity.FieldGroup][]string)
	for name := range p.Fields {
		g := groupFor(name)
		out[g] = append(out[g], name)
	}
	return out
}
