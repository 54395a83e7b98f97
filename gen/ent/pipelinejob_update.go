// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/docufill/docpipe/gen/ent/predicate"
	"github.com/google/uuid"
)

// PipelineJobUpdate is the builder for updating PipelineJob entities.
type PipelineJobUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineJobMutation
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdate) Where(ps ...predicate.PipelineJob) *PipelineJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *PipelineJobUpdate) SetDocumentID(v uuid.UUID) *PipelineJobUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableDocumentID(v *uuid.UUID) *PipelineJobUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PipelineJobUpdate) SetClientID(v string) *PipelineJobUpdate {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableClientID(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *PipelineJobUpdate) SetTemplateID(v uuid.UUID) *PipelineJobUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableTemplateID(v *uuid.UUID) *PipelineJobUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *PipelineJobUpdate) ClearTemplateID() *PipelineJobUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineJobUpdate) SetState(v string) *PipelineJobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableState(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineJobUpdate) SetAttempt(v int) *PipelineJobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableAttempt(v *int) *PipelineJobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineJobUpdate) AddAttempt(v int) *PipelineJobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *PipelineJobUpdate) SetMaxAttempts(v int) *PipelineJobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableMaxAttempts(v *int) *PipelineJobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *PipelineJobUpdate) AddMaxAttempts(v int) *PipelineJobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PipelineJobUpdate) SetProgress(v int) *PipelineJobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableProgress(v *int) *PipelineJobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PipelineJobUpdate) AddProgress(v int) *PipelineJobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *PipelineJobUpdate) SetClassification(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// AppendClassification appends value to the "classification" field.
func (_u *PipelineJobUpdate) AppendClassification(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.AppendClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *PipelineJobUpdate) ClearClassification() *PipelineJobUpdate {
	_u.mutation.ClearClassification()
	return _u
}

// SetMappings sets the "mappings" field.
func (_u *PipelineJobUpdate) SetMappings(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.SetMappings(v)
	return _u
}

// AppendMappings appends value to the "mappings" field.
func (_u *PipelineJobUpdate) AppendMappings(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.AppendMappings(v)
	return _u
}

// ClearMappings clears the value of the "mappings" field.
func (_u *PipelineJobUpdate) ClearMappings() *PipelineJobUpdate {
	_u.mutation.ClearMappings()
	return _u
}

// SetLastAssessment sets the "last_assessment" field.
func (_u *PipelineJobUpdate) SetLastAssessment(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.SetLastAssessment(v)
	return _u
}

// AppendLastAssessment appends value to the "last_assessment" field.
func (_u *PipelineJobUpdate) AppendLastAssessment(v json.RawMessage) *PipelineJobUpdate {
	_u.mutation.AppendLastAssessment(v)
	return _u
}

// ClearLastAssessment clears the value of the "last_assessment" field.
func (_u *PipelineJobUpdate) ClearLastAssessment() *PipelineJobUpdate {
	_u.mutation.ClearLastAssessment()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineJobUpdate) SetErrorCode(v string) *PipelineJobUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableErrorCode(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineJobUpdate) ClearErrorCode() *PipelineJobUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineJobUpdate) SetErrorMessage(v string) *PipelineJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableErrorMessage(v *string) *PipelineJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineJobUpdate) ClearErrorMessage() *PipelineJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineJobUpdate) SetStartedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableStartedAt(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineJobUpdate) SetFinishedAt(v time.Time) *PipelineJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineJobUpdate) SetNillableFinishedAt(v *time.Time) *PipelineJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineJobUpdate) ClearFinishedAt() *PipelineJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PipelineJobUpdate) SetDocument(v *Document) *PipelineJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetTemplate sets the "template" edge to the FormTemplate entity.
func (_u *PipelineJobUpdate) SetTemplate(v *FormTemplate) *PipelineJobUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *PipelineJobUpdate) AddResultIDs(ids ...uuid.UUID) *PipelineJobUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *PipelineJobUpdate) AddResults(v ...*ExtractionResult) *PipelineJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdate) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PipelineJobUpdate) ClearDocument() *PipelineJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTemplate clears the "template" edge to the FormTemplate entity.
func (_u *PipelineJobUpdate) ClearTemplate() *PipelineJobUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *PipelineJobUpdate) ClearResults() *PipelineJobUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *PipelineJobUpdate) RemoveResultIDs(ids ...uuid.UUID) *PipelineJobUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *PipelineJobUpdate) RemoveResults(v ...*ExtractionResult) *PipelineJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdate) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := pipelinejob.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := pipelinejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.state": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.document"`)
	}
	return nil
}

func (_u *PipelineJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(pipelinejob.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipelinejob.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinejob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinejob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(pipelinejob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(pipelinejob.FieldClassification, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassification(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldClassification, value)
		})
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(pipelinejob.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mappings(); ok {
		_spec.SetField(pipelinejob.FieldMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldMappings, value)
		})
	}
	if _u.mutation.MappingsCleared() {
		_spec.ClearField(pipelinejob.FieldMappings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastAssessment(); ok {
		_spec.SetField(pipelinejob.FieldLastAssessment, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLastAssessment(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldLastAssessment, value)
		})
	}
	if _u.mutation.LastAssessmentCleared() {
		_spec.ClearField(pipelinejob.FieldLastAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinejob.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinejob.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinejob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineJobUpdateOne is the builder for updating a single PipelineJob entity.
type PipelineJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineJobMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *PipelineJobUpdateOne) SetDocumentID(v uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableDocumentID(v *uuid.UUID) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetClientID sets the "client_id" field.
func (_u *PipelineJobUpdateOne) SetClientID(v string) *PipelineJobUpdateOne {
	_u.mutation.SetClientID(v)
	return _u
}

// SetNillableClientID sets the "client_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableClientID(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetClientID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *PipelineJobUpdateOne) SetTemplateID(v uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableTemplateID(v *uuid.UUID) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *PipelineJobUpdateOne) ClearTemplateID() *PipelineJobUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineJobUpdateOne) SetState(v string) *PipelineJobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableState(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *PipelineJobUpdateOne) SetAttempt(v int) *PipelineJobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableAttempt(v *int) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *PipelineJobUpdateOne) AddAttempt(v int) *PipelineJobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *PipelineJobUpdateOne) SetMaxAttempts(v int) *PipelineJobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableMaxAttempts(v *int) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *PipelineJobUpdateOne) AddMaxAttempts(v int) *PipelineJobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *PipelineJobUpdateOne) SetProgress(v int) *PipelineJobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableProgress(v *int) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *PipelineJobUpdateOne) AddProgress(v int) *PipelineJobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *PipelineJobUpdateOne) SetClassification(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// AppendClassification appends value to the "classification" field.
func (_u *PipelineJobUpdateOne) AppendClassification(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.AppendClassification(v)
	return _u
}

// ClearClassification clears the value of the "classification" field.
func (_u *PipelineJobUpdateOne) ClearClassification() *PipelineJobUpdateOne {
	_u.mutation.ClearClassification()
	return _u
}

// SetMappings sets the "mappings" field.
func (_u *PipelineJobUpdateOne) SetMappings(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.SetMappings(v)
	return _u
}

// AppendMappings appends value to the "mappings" field.
func (_u *PipelineJobUpdateOne) AppendMappings(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.AppendMappings(v)
	return _u
}

// ClearMappings clears the value of the "mappings" field.
func (_u *PipelineJobUpdateOne) ClearMappings() *PipelineJobUpdateOne {
	_u.mutation.ClearMappings()
	return _u
}

// SetLastAssessment sets the "last_assessment" field.
func (_u *PipelineJobUpdateOne) SetLastAssessment(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.SetLastAssessment(v)
	return _u
}

// AppendLastAssessment appends value to the "last_assessment" field.
func (_u *PipelineJobUpdateOne) AppendLastAssessment(v json.RawMessage) *PipelineJobUpdateOne {
	_u.mutation.AppendLastAssessment(v)
	return _u
}

// ClearLastAssessment clears the value of the "last_assessment" field.
func (_u *PipelineJobUpdateOne) ClearLastAssessment() *PipelineJobUpdateOne {
	_u.mutation.ClearLastAssessment()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *PipelineJobUpdateOne) SetErrorCode(v string) *PipelineJobUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableErrorCode(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *PipelineJobUpdateOne) ClearErrorCode() *PipelineJobUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineJobUpdateOne) SetErrorMessage(v string) *PipelineJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableErrorMessage(v *string) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *PipelineJobUpdateOne) ClearErrorMessage() *PipelineJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineJobUpdateOne) SetStartedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *PipelineJobUpdateOne) SetFinishedAt(v time.Time) *PipelineJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *PipelineJobUpdateOne) SetNillableFinishedAt(v *time.Time) *PipelineJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *PipelineJobUpdateOne) ClearFinishedAt() *PipelineJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *PipelineJobUpdateOne) SetDocument(v *Document) *PipelineJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetTemplate sets the "template" edge to the FormTemplate entity.
func (_u *PipelineJobUpdateOne) SetTemplate(v *FormTemplate) *PipelineJobUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by IDs.
func (_u *PipelineJobUpdateOne) AddResultIDs(ids ...uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExtractionResult entity.
func (_u *PipelineJobUpdateOne) AddResults(v ...*ExtractionResult) *PipelineJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the PipelineJobMutation object of the builder.
func (_u *PipelineJobUpdateOne) Mutation() *PipelineJobMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *PipelineJobUpdateOne) ClearDocument() *PipelineJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearTemplate clears the "template" edge to the FormTemplate entity.
func (_u *PipelineJobUpdateOne) ClearTemplate() *PipelineJobUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearResults clears all "results" edges to the ExtractionResult entity.
func (_u *PipelineJobUpdateOne) ClearResults() *PipelineJobUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExtractionResult entities by IDs.
func (_u *PipelineJobUpdateOne) RemoveResultIDs(ids ...uuid.UUID) *PipelineJobUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExtractionResult entities.
func (_u *PipelineJobUpdateOne) RemoveResults(v ...*ExtractionResult) *PipelineJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the PipelineJobUpdate builder.
func (_u *PipelineJobUpdateOne) Where(ps ...predicate.PipelineJob) *PipelineJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineJobUpdateOne) Select(field string, fields ...string) *PipelineJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineJob entity.
func (_u *PipelineJobUpdateOne) Save(ctx context.Context) (*PipelineJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) SaveX(ctx context.Context) *PipelineJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineJobUpdateOne) check() error {
	if v, ok := _u.mutation.ClientID(); ok {
		if err := pipelinejob.ClientIDValidator(v); err != nil {
			return &ValidationError{Name: "client_id", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.client_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := pipelinejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "PipelineJob.state": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PipelineJob.document"`)
	}
	return nil
}

func (_u *PipelineJobUpdateOne) sqlSave(ctx context.Context) (_node *PipelineJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinejob.Table, pipelinejob.Columns, sqlgraph.NewFieldSpec(pipelinejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinejob.FieldID)
		for _, f := range fields {
			if !pipelinejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinejob.FieldID {
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
	if value, ok := _u.mutation.ClientID(); ok {
		_spec.SetField(pipelinejob.FieldClientID, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipelinejob.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(pipelinejob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(pipelinejob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(pipelinejob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(pipelinejob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(pipelinejob.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(pipelinejob.FieldClassification, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedClassification(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldClassification, value)
		})
	}
	if _u.mutation.ClassificationCleared() {
		_spec.ClearField(pipelinejob.FieldClassification, field.TypeJSON)
	}
	if value, ok := _u.mutation.Mappings(); ok {
		_spec.SetField(pipelinejob.FieldMappings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldMappings, value)
		})
	}
	if _u.mutation.MappingsCleared() {
		_spec.ClearField(pipelinejob.FieldMappings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastAssessment(); ok {
		_spec.SetField(pipelinejob.FieldLastAssessment, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLastAssessment(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, pipelinejob.FieldLastAssessment, value)
		})
	}
	if _u.mutation.LastAssessmentCleared() {
		_spec.ClearField(pipelinejob.FieldLastAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(pipelinejob.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(pipelinejob.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinejob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(pipelinejob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinejob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(pipelinejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(pipelinejob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TemplateCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PipelineJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
