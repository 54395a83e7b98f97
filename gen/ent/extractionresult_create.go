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
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/google/uuid"
)

// ExtractionResultCreate is the builder for creating a ExtractionResult entity.
type ExtractionResultCreate struct {
	config
	mutation *ExtractionResultMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionResultCreate) SetDocumentID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ExtractionResultCreate) SetJobID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *ExtractionResultCreate) SetAttempt(v int) *ExtractionResultCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableAttempt(v *int) *ExtractionResultCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetFields sets the "fields" field.
func (_c *ExtractionResultCreate) SetFields(v json.RawMessage) *ExtractionResultCreate {
	_c.mutation.SetFields(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionResultCreate) SetConfidence(v float64) *ExtractionResultCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableConfidence(v *float64) *ExtractionResultCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPages sets the "pages" field.
func (_c *ExtractionResultCreate) SetPages(v int) *ExtractionResultCreate {
	_c.mutation.SetPages(v)
	return _c
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillablePages(v *int) *ExtractionResultCreate {
	if v != nil {
		_c.SetPages(*v)
	}
	return _c
}

// SetFailedPages sets the "failed_pages" field.
func (_c *ExtractionResultCreate) SetFailedPages(v []int) *ExtractionResultCreate {
	_c.mutation.SetFailedPages(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *ExtractionResultCreate) SetModelName(v string) *ExtractionResultCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableModelName(v *string) *ExtractionResultCreate {
	if v != nil {
		_c.SetModelName(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ExtractionResultCreate) SetElapsedMs(v int64) *ExtractionResultCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableElapsedMs(v *int64) *ExtractionResultCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *ExtractionResultCreate) SetOcrText(v string) *ExtractionResultCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableOcrText(v *string) *ExtractionResultCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionResultCreate) SetCreatedAt(v time.Time) *ExtractionResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableCreatedAt(v *time.Time) *ExtractionResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionResultCreate) SetID(v uuid.UUID) *ExtractionResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionResultCreate) SetNillableID(v *uuid.UUID) *ExtractionResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionResultCreate) SetDocument(v *Document) *ExtractionResultCreate {
	return _c.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the PipelineJob entity.
func (_c *ExtractionResultCreate) SetJob(v *PipelineJob) *ExtractionResultCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_c *ExtractionResultCreate) Mutation() *ExtractionResultMutation {
	return _c.mutation
}

// Save creates the ExtractionResult in the database.
func (_c *ExtractionResultCreate) Save(ctx context.Context) (*ExtractionResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionResultCreate) SaveX(ctx context.Context) *ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionResultCreate) defaults() {
	if _, ok := _c.mutation.Attempt(); !ok {
		v := extractionresult.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractionresult.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Pages(); !ok {
		v := extractionresult.DefaultPages
		_c.mutation.SetPages(v)
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := extractionresult.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractionresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionResultCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionResult.document_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ExtractionResult.job_id"`)}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "ExtractionResult.attempt"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractionResult.confidence"`)}
	}
	if _, ok := _c.mutation.Pages(); !ok {
		return &ValidationError{Name: "pages", err: errors.New(`ent: missing required field "ExtractionResult.pages"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ExtractionResult.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionResult.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionResult.document"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ExtractionResult.job"`)}
	}
	return nil
}

func (_c *ExtractionResultCreate) sqlSave(ctx context.Context) (*ExtractionResult, error) {
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

func (_c *ExtractionResultCreate) createSpec() (*ExtractionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionresult.Table, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(extractionresult.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
		_node.Fields = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Pages(); ok {
		_spec.SetField(extractionresult.FieldPages, field.TypeInt, value)
		_node.Pages = value
	}
	if value, ok := _c.mutation.FailedPages(); ok {
		_spec.SetField(extractionresult.FieldFailedPages, field.TypeJSON, value)
		_node.FailedPages = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
		_node.ModelName = &value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionresult.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(extractionresult.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.DocumentTable,
			Columns: []string{extractionresult.DocumentColumn},
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
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionresult.JobTable,
			Columns: []string{extractionresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionResultCreateBulk is the builder for creating many ExtractionResult entities in bulk.
type ExtractionResultCreateBulk struct {
	config
	err      error
	builders []*ExtractionResultCreate
}

// Save creates the ExtractionResult entities in the database.
func (_c *ExtractionResultCreateBulk) Save(ctx context.Context) ([]*ExtractionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionResultMutation)
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
func (_c *ExtractionResultCreateBulk) SaveX(ctx context.Context) []*ExtractionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
