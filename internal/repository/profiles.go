package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/docufill/docpipe/gen/ent"
	"github.com/docufill/docpipe/gen/ent/clientprofile"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
)

// ProfileRepository stores client profiles and implements the merge
// engine's store contract.
type ProfileRepository interface {
	GetProfile(ctx context.Context, clientID string) (*entity.ClientProfile, error)
	// UpdateProfile runs fn against the profile (creating it on first use)
	// inside a transaction with an optimistic version check. A concurrent
	// writer surfaces as a MergeConflictError and nothing is written.
	UpdateProfile(ctx context.Context, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error)
}

type profileRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProfileRepository(entc *ent.Client, log *slog.Logger) ProfileRepository {
	if log == nil {
		log = slog.Default()
	}
	return &profileRepo{ent: entc, log: log}
}

func (r *profileRepo) GetProfile(ctx context.Context, clientID string) (*entity.ClientProfile, error) {
	row, err := r.ent.ClientProfile.Query().
		Where(clientprofile.ClientID(clientID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		// profiles are created lazily; absent means empty
		return &entity.ClientProfile{
			ClientID: clientID,
			Fields:   map[string]entity.ProfileField{},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return profileFromRow(row)
}

func (r *profileRepo) UpdateProfile(ctx context.Context, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	out, err := r.updateInTx(ctx, tx, clientID, fn)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.log.Error("profile tx rollback failed", "client_id", clientID, "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile update: %w", err)
	}
	return out, nil
}

func (r *profileRepo) updateInTx(ctx context.Context, tx *ent.Tx, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error) {
	row, err := tx.ClientProfile.Query().
		Where(clientprofile.ClientID(clientID)).
		Only(ctx)

	if ent.IsNotFound(err) {
		p := &entity.ClientProfile{
			ClientID: clientID,
			Fields:   map[string]entity.ProfileField{},
			Version:  1,
		}
		if err := fn(p); err != nil {
			return nil, err
		}
		b, err := json.Marshal(p.Fields)
		if err != nil {
			return nil, fmt.Errorf("encode profile fields: %w", err)
		}
		created, err := tx.ClientProfile.Create().
			SetClientID(clientID).
			SetFields(b).
			SetVersion(1).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// another writer created the row first
				return nil, &common.MergeConflictError{ClientID: clientID}
			}
			return nil, err
		}
		return profileFromRow(created)
	}
	if err != nil {
		return nil, err
	}

	p, err := profileFromRow(row)
	if err != nil {
		return nil, err
	}
	prevVersion := p.Version
	if err := fn(p); err != nil {
		return nil, err
	}

	b, err := json.Marshal(p.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode profile fields: %w", err)
	}
	n, err := tx.ClientProfile.Update().
		Where(clientprofile.ID(row.ID), clientprofile.Version(prevVersion)).
		SetFields(b).
		SetVersion(prevVersion + 1).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &common.MergeConflictError{ClientID: clientID}
	}
	p.Version = prevVersion + 1
	return p, nil
}

func profileFromRow(row *ent.ClientProfile) (*entity.ClientProfile, error) {
	p := &entity.ClientProfile{
		ID:        row.ID,
		ClientID:  row.ClientID,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Fields:    map[string]entity.ProfileField{},
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &p.Fields); err != nil {
			return nil, fmt.Errorf("decode fields for profile %s: %w", row.ID, err)
		}
	}
	return p, nil
}
