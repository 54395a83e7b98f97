package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docufill/docpipe/gen/ent"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/internal/entity"
)

type TemplateRepository interface {
	Create(ctx context.Context, name string, fields []entity.TemplateField) (*entity.FormTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FormTemplate, error)
	// LatestByName returns the highest version carrying the given name.
	LatestByName(ctx context.Context, name string) (*entity.FormTemplate, error)
	List(ctx context.Context) ([]*entity.FormTemplate, error)
	// NewVersion writes an edited field list as a fresh version row; jobs
	// holding the old version keep seeing it unchanged.
	NewVersion(ctx context.Context, id uuid.UUID, fields []entity.TemplateField) (*entity.FormTemplate, error)
}

type templateRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, log *slog.Logger) TemplateRepository {
	if log == nil {
		log = slog.Default()
	}
	return &templateRepo{ent: entc, log: log}
}

func (r *templateRepo) Create(ctx context.Context, name string, fields []entity.TemplateField) (*entity.FormTemplate, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode template fields: %w", err)
	}
	row, err := r.ent.FormTemplate.Create().
		SetName(name).
		SetVersion(1).
		SetFields(b).
		Save(ctx)
	if err != nil {
		r.log.Error("form_template create failed", "name", name, "error", err)
		return nil, err
	}
	r.log.Info("form_template created", "template_id", row.ID, "name", name, "fields", len(fields))
	return templateFromRow(row)
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FormTemplate, error) {
	row, err := r.ent.FormTemplate.Query().Where(formtemplate.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return templateFromRow(row)
}

func (r *templateRepo) LatestByName(ctx context.Context, name string) (*entity.FormTemplate, error) {
	row, err := r.ent.FormTemplate.Query().
		Where(formtemplate.Name(name)).
		Order(formtemplate.ByVersion(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return templateFromRow(row)
}

func (r *templateRepo) List(ctx context.Context) ([]*entity.FormTemplate, error) {
	rows, err := r.ent.FormTemplate.Query().
		Order(formtemplate.ByName(), formtemplate.ByVersion()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.FormTemplate, 0, len(rows))
	for _, row := range rows {
		t, err := templateFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *templateRepo) NewVersion(ctx context.Context, id uuid.UUID, fields []entity.TemplateField) (*entity.FormTemplate, error) {
	prev, err := r.ent.FormTemplate.Query().Where(formtemplate.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode template fields: %w", err)
	}
	row, err := r.ent.FormTemplate.Create().
		SetName(prev.Name).
		SetVersion(prev.Version + 1).
		SetFields(b).
		Save(ctx)
	if err != nil {
		r.log.Error("form_template version bump failed", "template_id", id, "error", err)
		return nil, err
	}
	r.log.Info("form_template new version", "name", prev.Name, "version", prev.Version+1)
	return templateFromRow(row)
}

func templateFromRow(row *ent.FormTemplate) (*entity.FormTemplate, error) {
	t := &entity.FormTemplate{
		ID:        row.ID,
		Name:      row.Name,
		Version:   row.Version,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &t.Fields); err != nil {
			return nil, fmt.Errorf("decode fields for template %s: %w", row.ID, err)
		}
	}
	return t, nil
}
