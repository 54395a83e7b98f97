// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/docufill/docpipe/gen/ent/predicate"
	"github.com/google/uuid"
)

// ExtractionResultUpdate is the builder for updating ExtractionResult entities.
type ExtractionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdate) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdate) SetDocumentID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ExtractionResultUpdate) SetJobID(v uuid.UUID) *ExtractionResultUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableJobID(v *uuid.UUID) *ExtractionResultUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ExtractionResultUpdate) SetAttempt(v int) *ExtractionResultUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableAttempt(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ExtractionResultUpdate) AddAttempt(v int) *ExtractionResultUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdate) SetFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdate) AppendFields(v json.RawMessage) *ExtractionResultUpdate {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdate) ClearFields() *ExtractionResultUpdate {
	_u.mutation.ClearFields()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdate) SetConfidence(v float64) *ExtractionResultUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableConfidence(v *float64) *ExtractionResultUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdate) AddConfidence(v float64) *ExtractionResultUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionResultUpdate) SetPages(v int) *ExtractionResultUpdate {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillablePages(v *int) *ExtractionResultUpdate {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ExtractionResultUpdate) AddPages(v int) *ExtractionResultUpdate {
	_u.mutation.AddPages(v)
	return _u
}

// SetFailedPages sets the "failed_pages" field.
func (_u *ExtractionResultUpdate) SetFailedPages(v []int) *ExtractionResultUpdate {
	_u.mutation.SetFailedPages(v)
	return _u
}

// AppendFailedPages appends value to the "failed_pages" field.
func (_u *ExtractionResultUpdate) AppendFailedPages(v []int) *ExtractionResultUpdate {
	_u.mutation.AppendFailedPages(v)
	return _u
}

// ClearFailedPages clears the value of the "failed_pages" field.
func (_u *ExtractionResultUpdate) ClearFailedPages() *ExtractionResultUpdate {
	_u.mutation.ClearFailedPages()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionResultUpdate) SetModelName(v string) *ExtractionResultUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableModelName(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionResultUpdate) ClearModelName() *ExtractionResultUpdate {
	_u.mutation.ClearModelName()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ExtractionResultUpdate) SetElapsedMs(v int64) *ExtractionResultUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableElapsedMs(v *int64) *ExtractionResultUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ExtractionResultUpdate) AddElapsedMs(v int64) *ExtractionResultUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractionResultUpdate) SetOcrText(v string) *ExtractionResultUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractionResultUpdate) SetNillableOcrText(v *string) *ExtractionResultUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractionResultUpdate) ClearOcrText() *ExtractionResultUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) SetDocument(v *Document) *ExtractionResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the PipelineJob entity.
func (_u *ExtractionResultUpdate) SetJob(v *PipelineJob) *ExtractionResultUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdate) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdate) ClearDocument() *ExtractionResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearJob clears the "job" edge to the PipelineJob entity.
func (_u *ExtractionResultUpdate) ClearJob() *ExtractionResultUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.job"`)
	}
	return nil
}

func (_u *ExtractionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(extractionresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(extractionresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionresult.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(extractionresult.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPages(); ok {
		_spec.SetField(extractionresult.FieldFailedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFailedPages, value)
		})
	}
	if _u.mutation.FailedPagesCleared() {
		_spec.ClearField(extractionresult.FieldFailedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionresult.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionresult.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(extractionresult.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractionresult.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractionresult.FieldOcrText, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionResultUpdateOne is the builder for updating a single ExtractionResult entity.
type ExtractionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionResultMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionResultUpdateOne) SetDocumentID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *ExtractionResultUpdateOne) SetJobID(v uuid.UUID) *ExtractionResultUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableJobID(v *uuid.UUID) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ExtractionResultUpdateOne) SetAttempt(v int) *ExtractionResultUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableAttempt(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ExtractionResultUpdateOne) AddAttempt(v int) *ExtractionResultUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetFields sets the "fields" field.
func (_u *ExtractionResultUpdateOne) SetFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.SetFields(v)
	return _u
}

// AppendFields appends value to the "fields" field.
func (_u *ExtractionResultUpdateOne) AppendFields(v json.RawMessage) *ExtractionResultUpdateOne {
	_u.mutation.AppendFields(v)
	return _u
}

// ClearFields clears the value of the "fields" field.
func (_u *ExtractionResultUpdateOne) ClearFields() *ExtractionResultUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionResultUpdateOne) SetConfidence(v float64) *ExtractionResultUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableConfidence(v *float64) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionResultUpdateOne) AddConfidence(v float64) *ExtractionResultUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPages sets the "pages" field.
func (_u *ExtractionResultUpdateOne) SetPages(v int) *ExtractionResultUpdateOne {
	_u.mutation.ResetPages()
	_u.mutation.SetPages(v)
	return _u
}

// SetNillablePages sets the "pages" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillablePages(v *int) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetPages(*v)
	}
	return _u
}

// AddPages adds value to the "pages" field.
func (_u *ExtractionResultUpdateOne) AddPages(v int) *ExtractionResultUpdateOne {
	_u.mutation.AddPages(v)
	return _u
}

// SetFailedPages sets the "failed_pages" field.
func (_u *ExtractionResultUpdateOne) SetFailedPages(v []int) *ExtractionResultUpdateOne {
	_u.mutation.SetFailedPages(v)
	return _u
}

// AppendFailedPages appends value to the "failed_pages" field.
func (_u *ExtractionResultUpdateOne) AppendFailedPages(v []int) *ExtractionResultUpdateOne {
	_u.mutation.AppendFailedPages(v)
	return _u
}

// ClearFailedPages clears the value of the "failed_pages" field.
func (_u *ExtractionResultUpdateOne) ClearFailedPages() *ExtractionResultUpdateOne {
	_u.mutation.ClearFailedPages()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *ExtractionResultUpdateOne) SetModelName(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableModelName(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// ClearModelName clears the value of the "model_name" field.
func (_u *ExtractionResultUpdateOne) ClearModelName() *ExtractionResultUpdateOne {
	_u.mutation.ClearModelName()
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ExtractionResultUpdateOne) SetElapsedMs(v int64) *ExtractionResultUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableElapsedMs(v *int64) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ExtractionResultUpdateOne) AddElapsedMs(v int64) *ExtractionResultUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *ExtractionResultUpdateOne) SetOcrText(v string) *ExtractionResultUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *ExtractionResultUpdateOne) SetNillableOcrText(v *string) *ExtractionResultUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *ExtractionResultUpdateOne) ClearOcrText() *ExtractionResultUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) SetDocument(v *Document) *ExtractionResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetJob sets the "job" edge to the PipelineJob entity.
func (_u *ExtractionResultUpdateOne) SetJob(v *PipelineJob) *ExtractionResultUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the ExtractionResultMutation object of the builder.
func (_u *ExtractionResultUpdateOne) Mutation() *ExtractionResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionResultUpdateOne) ClearDocument() *ExtractionResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearJob clears the "job" edge to the PipelineJob entity.
func (_u *ExtractionResultUpdateOne) ClearJob() *ExtractionResultUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the ExtractionResultUpdate builder.
func (_u *ExtractionResultUpdateOne) Where(ps ...predicate.ExtractionResult) *ExtractionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionResultUpdateOne) Select(field string, fields ...string) *ExtractionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionResult entity.
func (_u *ExtractionResultUpdateOne) Save(ctx context.Context) (*ExtractionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) SaveX(ctx context.Context) *ExtractionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionResultUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.document"`)
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionResult.job"`)
	}
	return nil
}

func (_u *ExtractionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionresult.Table, extractionresult.Columns, sqlgraph.NewFieldSpec(extractionresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionresult.FieldID)
		for _, f := range fields {
			if !extractionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(extractionresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(extractionresult.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GetFields(); ok {
		_spec.SetField(extractionresult.FieldFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFields, value)
		})
	}
	if _u.mutation.FieldsCleared() {
		_spec.ClearField(extractionresult.FieldFields, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionresult.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Pages(); ok {
		_spec.SetField(extractionresult.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPages(); ok {
		_spec.AddField(extractionresult.FieldPages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedPages(); ok {
		_spec.SetField(extractionresult.FieldFailedPages, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailedPages(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionresult.FieldFailedPages, value)
		})
	}
	if _u.mutation.FailedPagesCleared() {
		_spec.ClearField(extractionresult.FieldFailedPages, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(extractionresult.FieldModelName, field.TypeString, value)
	}
	if _u.mutation.ModelNameCleared() {
		_spec.ClearField(extractionresult.FieldModelName, field.TypeString)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionresult.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(extractionresult.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(extractionresult.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(extractionresult.FieldOcrText, field.TypeString)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
