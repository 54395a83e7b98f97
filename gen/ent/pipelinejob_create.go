// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/google/uuid"
)

// PipelineJobCreate is the builder for creating a PipelineJob entity.
type PipelineJobCreate struct {
	config
	mutation *PipelineJobMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *PipelineJobCreate) SetDocumentID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetClientID sets the "client_id" field.
func (_c *PipelineJobCreate) SetClientID(v string) *PipelineJobCreate {
	_c.mutation.SetClientID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *PipelineJobCreate) SetTemplateID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableTemplateID(v *uuid.UUID) *PipelineJobCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PipelineJobCreate) SetState(v string) *PipelineJobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableState(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *PipelineJobCreate) SetAttempt(v int) *PipelineJobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableAttempt(v *int) *PipelineJobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *PipelineJobCreate) SetMaxAttempts(v int) *PipelineJobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableMaxAttempts(v *int) *PipelineJobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *PipelineJobCreate) SetProgress(v int) *PipelineJobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableProgress(v *int) *PipelineJobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetClassification sets the "classification" field.
func (_c *PipelineJobCreate) SetClassification(v json.RawMessage) *PipelineJobCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetMappings sets the "mappings" field.
func (_c *PipelineJobCreate) SetMappings(v json.RawMessage) *PipelineJobCreate {
	_c.mutation.SetMappings(v)
	return _c
}

// SetLastAssessment sets the "last_assessment" field.
func (_c *PipelineJobCreate) SetLastAssessment(v json.RawMessage) *PipelineJobCreate {
	_c.mutation.SetLastAssessment(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *PipelineJobCreate) SetErrorCode(v string) *PipelineJobCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableErrorCode(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineJobCreate) SetErrorMessage(v string) *PipelineJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableErrorMessage(v *string) *PipelineJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineJobCreate) SetStartedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableStartedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *PipelineJobCreate) SetFinishedAt(v time.Time) *PipelineJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableFinishedAt(v *time.Time) *PipelineJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineJobCreate) SetID(v uuid.UUID) *PipelineJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineJobCreate) SetNillableID(v *uuid.UUID) *PipelineJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *PipelineJobCreate) SetDocument(v *Document) *PipelineJobCreate {
	return _c.SetDocumentID(v.ID)
}

// SetTemplate sets the "template" edge to the FormTemplate entity.
func (_c *PipelineJobCreate) SetTemplate(v *FormTemplate) *PipelineJobCreate {
	return _c.SetTemplateID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_c *PipelineJobCreate) AddResultIDs(ids ...uuid.UUID) *PipelineJobCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_c *PipelineJobCreate) AddResults(v ...*ExtractionResult) *PipelineJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_c *PipelineJobCreate) Mutation() *PipelineJobMutation {
	return _c.mutation
}

// Save creates the PipelineJob in the database.
func (_c *PipelineJobCreate) Save(ctx context.Context) (*PipelineJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineJobCreate) SaveX(ctx context.Context) *PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineJobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := pipelinejob.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := pipelinejob.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := pipelinejob.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := pipelinejob.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := pipelinejob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineJobCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "PipelineJob.document_id"`)}
	}
	if _, ok := _c.mutation.ClientID(); !ok {
		return &ValidationError{Name: "client_id", err: errors.New(`ent: missing required field "PipelineJob.client_id"`)}
	}
	if v, ok := _c.mutation.ClientID(); ok {
		if err := pipelinejob.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.client_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "PipelineJob.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := pipelinejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "PipelineJob.attempt"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "PipelineJob.max_attempts"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "PipelineJob.progress"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PipelineJob.started_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "PipelineJob.document"`)}
	}
	return nil
}

func (_c *PipelineJobCreate) sqlSave(ctx context.Context) (*PipelineJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineJobCreate) createSpec() (*PipelineJob, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinejob.Table, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClientID(); ok {
		_spec.SetField(pipelinejob.FieldClientID, field.TypeString, value)
		_node.ClientID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(pipelinejob.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(pipelinejob.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(pipelinejob.FieldClassification, field.TypeJSON, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Mappings(); ok {
		_spec.SetField(pipelinejob.FieldMappings, field.TypeJSON, value)
		_node.Mappings = value
	}
	if value, ok := _c.mutation.LastAssessment(); ok {
		_spec.SetField(pipelinejob.FieldLastAssessment, field.TypeJSON, value)
		_node.LastAssessment = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinejob.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.DocumentTable,
			Columns: []string{pipelinejob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pipelinejob.TemplateTable,
			Columns: []string{pipelinejob.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(formtemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TemplateID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipelinejob.ResultsTable,
			Columns: []string{pipelinejob.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineJobCreateBulk is the builder for creating many PipelineJob entities in bulk.
type PipelineJobCreateBulk struct {
	config
	err      error
	builders []*PipelineJobCreate
}

// Save creates the PipelineJob entities in the database.
func (_c *PipelineJobCreateBulk) Save(ctx context.Context) ([]*PipelineJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) SaveX(ctx context.Context) []*PipelineJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
