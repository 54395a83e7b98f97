// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docufill/docpipe/gen/ent/clientprofile"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/docufill/docpipe/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeClientProfile    = "ClientProfile"
	TypeDocument         = "Document"
	TypeExtractionResult = "ExtractionResult"
	TypeFormTemplate     = "FormTemplate"
	TypePipelineJob      = "PipelineJob"
)

// ClientProfileMutation represents an operation that mutates the ClientProfile nodes in the graph.
type ClientProfileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	client_id     *string
	fields        *json.RawMessage
	appendfields  json.RawMessage
	version       *int
	addversion    *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ClientProfile, error)
	predicates    []predicate.ClientProfile
}

var _ ent.Mutation = (*ClientProfileMutation)(nil)

// clientprofileOption allows management of the mutation configuration using functional options.
type clientprofileOption func(*ClientProfileMutation)

// newClientProfileMutation creates new mutation for the ClientProfile entity.
func newClientProfileMutation(c config, op Op, opts ...clientprofileOption) *ClientProfileMutation {
	m := &ClientProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeClientProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientProfileID sets the ID field of the mutation.
func withClientProfileID(id uuid.UUID) clientprofileOption {
	return func(m *ClientProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientProfile
		)
		m.oldValue = func(ctx context.Context) (*ClientProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientProfile sets the old ClientProfile of the mutation.
func withClientProfile(node *ClientProfile) clientprofileOption {
	return func(m *ClientProfileMutation) {
		m.oldValue = func(context.Context) (*ClientProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClientProfile entities.
func (m *ClientProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *ClientProfileMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *ClientProfileMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *ClientProfileMutation) ResetClientID() {
	m.client_id = nil
}

// SetFields sets the "fields" field.
func (m *ClientProfileMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ClientProfileMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ClientProfileMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ClientProfileMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *ClientProfileMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[clientprofile.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ClientProfileMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[clientprofile.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ClientProfileMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, clientprofile.FieldFields)
}

// SetVersion sets the "version" field.
func (m *ClientProfileMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ClientProfileMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ClientProfileMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ClientProfileMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ClientProfileMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClientProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClientProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClientProfile entity.
// If the ClientProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClientProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClientProfileMutation builder.
func (m *ClientProfileMutation) Where(ps ...predicate.ClientProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientProfile).
func (m *ClientProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.client_id != nil {
		fields = append(fields, clientprofile.FieldClientID)
	}
	if m.fields != nil {
		fields = append(fields, clientprofile.FieldFields)
	}
	if m.version != nil {
		fields = append(fields, clientprofile.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, clientprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clientprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientprofile.FieldClientID:
		return m.ClientID()
	case clientprofile.FieldFields:
		return m.GetFields()
	case clientprofile.FieldVersion:
		return m.Version()
	case clientprofile.FieldCreatedAt:
		return m.CreatedAt()
	case clientprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientprofile.FieldClientID:
		return m.OldClientID(ctx)
	case clientprofile.FieldFields:
		return m.OldFields(ctx)
	case clientprofile.FieldVersion:
		return m.OldVersion(ctx)
	case clientprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clientprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientprofile.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case clientprofile.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case clientprofile.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case clientprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clientprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientProfileMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, clientprofile.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientprofile.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientprofile.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ClientProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientprofile.FieldFields) {
		fields = append(fields, clientprofile.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientProfileMutation) ClearField(name string) error {
	switch name {
	case clientprofile.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown ClientProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientProfileMutation) ResetField(name string) error {
	switch name {
	case clientprofile.FieldClientID:
		m.ResetClientID()
		return nil
	case clientprofile.FieldFields:
		m.ResetFields()
		return nil
	case clientprofile.FieldVersion:
		m.ResetVersion()
		return nil
	case clientprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clientprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClientProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClientProfile edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	client_id      *string
	source_path    *string
	file_ext       *string
	format         *string
	content_hash   *string
	page_count     *int
	addpage_count  *int
	uploaded_at    *time.Time
	clearedFields  map[string]struct{}
	jobs           map[uuid.UUID]struct{}
	removedjobs    map[uuid.UUID]struct{}
	clearedjobs    bool
	results        map[uuid.UUID]struct{}
	removedresults map[uuid.UUID]struct{}
	clearedresults bool
	done           bool
	oldValue       func(context.Context) (*Document, error)
	predicates     []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id uuid.UUID) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientID sets the "client_id" field.
func (m *DocumentMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *DocumentMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *DocumentMutation) ResetClientID() {
	m.client_id = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *DocumentMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *DocumentMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *DocumentMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFormat sets the "format" field.
func (m *DocumentMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *DocumentMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *DocumentMutation) ResetFormat() {
	m.format = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the PipelineJob entity by ids.
func (m *DocumentMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the PipelineJob entity.
func (m *DocumentMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the PipelineJob entity was cleared.
func (m *DocumentMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the PipelineJob entity by IDs.
func (m *DocumentMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the PipelineJob entity.
func (m *DocumentMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *DocumentMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *DocumentMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *DocumentMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *DocumentMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *DocumentMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *DocumentMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *DocumentMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *DocumentMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.client_id != nil {
		fields = append(fields, document.FieldClientID)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.file_ext != nil {
		fields = append(fields, document.FieldFileExt)
	}
	if m.format != nil {
		fields = append(fields, document.FieldFormat)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldClientID:
		return m.ClientID()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFileExt:
		return m.FileExt()
	case document.FieldFormat:
		return m.Format()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldClientID:
		return m.OldClientID(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFileExt:
		return m.OldFileExt(ctx)
	case document.FieldFormat:
		return m.OldFormat(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case document.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldClientID:
		m.ResetClientID()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFileExt:
		m.ResetFileExt()
		return nil
	case document.FieldFormat:
		m.ResetFormat()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.results != nil {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, document.EdgeJobs)
	}
	if m.removedresults != nil {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, document.EdgeJobs)
	}
	if m.clearedresults {
		edges = append(edges, document.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeJobs:
		return m.clearedjobs
	case document.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeJobs:
		m.ResetJobs()
		return nil
	case document.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionResultMutation represents an operation that mutates the ExtractionResult nodes in the graph.
type ExtractionResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	attempt            *int
	addattempt         *int
	fields             *json.RawMessage
	appendfields       json.RawMessage
	confidence         *float64
	addconfidence      *float64
	pages              *int
	addpages           *int
	failed_pages       *[]int
	appendfailed_pages []int
	model_name         *string
	elapsed_ms         *int64
	addelapsed_ms      *int64
	ocr_text           *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	document           *uuid.UUID
	cleareddocument    bool
	job                *uuid.UUID
	clearedjob         bool
	done               bool
	oldValue           func(context.Context) (*ExtractionResult, error)
	predicates         []predicate.ExtractionResult
}

var _ ent.Mutation = (*ExtractionResultMutation)(nil)

// extractionresultOption allows management of the mutation configuration using functional options.
type extractionresultOption func(*ExtractionResultMutation)

// newExtractionResultMutation creates new mutation for the ExtractionResult entity.
func newExtractionResultMutation(c config, op Op, opts ...extractionresultOption) *ExtractionResultMutation {
	m := &ExtractionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionResultID sets the ID field of the mutation.
func withExtractionResultID(id uuid.UUID) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionResult
		)
		m.oldValue = func(ctx context.Context) (*ExtractionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionResult sets the old ExtractionResult of the mutation.
func withExtractionResult(node *ExtractionResult) extractionresultOption {
	return func(m *ExtractionResultMutation) {
		m.oldValue = func(context.Context) (*ExtractionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionResult entities.
func (m *ExtractionResultMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionResultMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionResultMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionResultMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionResultMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionResultMutation) ResetDocumentID() {
	m.document = nil
}

// SetJobID sets the "job_id" field.
func (m *ExtractionResultMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ExtractionResultMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ExtractionResultMutation) ResetJobID() {
	m.job = nil
}

// SetAttempt sets the "attempt" field.
func (m *ExtractionResultMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *ExtractionResultMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *ExtractionResultMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *ExtractionResultMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *ExtractionResultMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetFields sets the "fields" field.
func (m *ExtractionResultMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *ExtractionResultMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *ExtractionResultMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *ExtractionResultMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *ExtractionResultMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[extractionresult.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *ExtractionResultMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *ExtractionResultMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, extractionresult.FieldFields)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionResultMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionResultMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionResultMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionResultMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionResultMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetPages sets the "pages" field.
func (m *ExtractionResultMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *ExtractionResultMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *ExtractionResultMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *ExtractionResultMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *ExtractionResultMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// SetFailedPages sets the "failed_pages" field.
func (m *ExtractionResultMutation) SetFailedPages(i []int) {
	m.failed_pages = &i
	m.appendfailed_pages = nil
}

// FailedPages returns the value of the "failed_pages" field in the mutation.
func (m *ExtractionResultMutation) FailedPages() (r []int, exists bool) {
	v := m.failed_pages
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedPages returns the old "failed_pages" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldFailedPages(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedPages: %w", err)
	}
	return oldValue.FailedPages, nil
}

// AppendFailedPages adds i to the "failed_pages" field.
func (m *ExtractionResultMutation) AppendFailedPages(i []int) {
	m.appendfailed_pages = append(m.appendfailed_pages, i...)
}

// AppendedFailedPages returns the list of values that were appended to the "failed_pages" field in this mutation.
func (m *ExtractionResultMutation) AppendedFailedPages() ([]int, bool) {
	if len(m.appendfailed_pages) == 0 {
		return nil, false
	}
	return m.appendfailed_pages, true
}

// ClearFailedPages clears the value of the "failed_pages" field.
func (m *ExtractionResultMutation) ClearFailedPages() {
	m.failed_pages = nil
	m.appendfailed_pages = nil
	m.clearedFields[extractionresult.FieldFailedPages] = struct{}{}
}

// FailedPagesCleared returns if the "failed_pages" field was cleared in this mutation.
func (m *ExtractionResultMutation) FailedPagesCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldFailedPages]
	return ok
}

// ResetFailedPages resets all changes to the "failed_pages" field.
func (m *ExtractionResultMutation) ResetFailedPages() {
	m.failed_pages = nil
	m.appendfailed_pages = nil
	delete(m.clearedFields, extractionresult.FieldFailedPages)
}

// SetModelName sets the "model_name" field.
func (m *ExtractionResultMutation) SetModelName(s string) {
	m.model_name = &s
}

// ModelName returns the value of the "model_name" field in the mutation.
func (m *ExtractionResultMutation) ModelName() (r string, exists bool) {
	v := m.model_name
	if v == nil {
		return
	}
	return *v, true
}

// OldModelName returns the old "model_name" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldModelName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelName: %w", err)
	}
	return oldValue.ModelName, nil
}

// ClearModelName clears the value of the "model_name" field.
func (m *ExtractionResultMutation) ClearModelName() {
	m.model_name = nil
	m.clearedFields[extractionresult.FieldModelName] = struct{}{}
}

// ModelNameCleared returns if the "model_name" field was cleared in this mutation.
func (m *ExtractionResultMutation) ModelNameCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldModelName]
	return ok
}

// ResetModelName resets all changes to the "model_name" field.
func (m *ExtractionResultMutation) ResetModelName() {
	m.model_name = nil
	delete(m.clearedFields, extractionresult.FieldModelName)
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *ExtractionResultMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *ExtractionResultMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldElapsedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *ExtractionResultMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *ExtractionResultMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *ExtractionResultMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// SetOcrText sets the "ocr_text" field.
func (m *ExtractionResultMutation) SetOcrText(s string) {
	m.ocr_text = &s
}

// OcrText returns the value of the "ocr_text" field in the mutation.
func (m *ExtractionResultMutation) OcrText() (r string, exists bool) {
	v := m.ocr_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrText returns the old "ocr_text" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldOcrText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrText: %w", err)
	}
	return oldValue.OcrText, nil
}

// ClearOcrText clears the value of the "ocr_text" field.
func (m *ExtractionResultMutation) ClearOcrText() {
	m.ocr_text = nil
	m.clearedFields[extractionresult.FieldOcrText] = struct{}{}
}

// OcrTextCleared returns if the "ocr_text" field was cleared in this mutation.
func (m *ExtractionResultMutation) OcrTextCleared() bool {
	_, ok := m.clearedFields[extractionresult.FieldOcrText]
	return ok
}

// ResetOcrText resets all changes to the "ocr_text" field.
func (m *ExtractionResultMutation) ResetOcrText() {
	m.ocr_text = nil
	delete(m.clearedFields, extractionresult.FieldOcrText)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionResult entity.
// If the ExtractionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionResultMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionresult.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionResultMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionResultMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearJob clears the "job" edge to the PipelineJob entity.
func (m *ExtractionResultMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[extractionresult.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the PipelineJob entity was cleared.
func (m *ExtractionResultMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *ExtractionResultMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *ExtractionResultMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the ExtractionResultMutation builder.
func (m *ExtractionResultMutation) Where(ps ...predicate.ExtractionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionResult).
func (m *ExtractionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionResultMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.document != nil {
		fields = append(fields, extractionresult.FieldDocumentID)
	}
	if m.job != nil {
		fields = append(fields, extractionresult.FieldJobID)
	}
	if m.attempt != nil {
		fields = append(fields, extractionresult.FieldAttempt)
	}
	if m.fields != nil {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.confidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.pages != nil {
		fields = append(fields, extractionresult.FieldPages)
	}
	if m.failed_pages != nil {
		fields = append(fields, extractionresult.FieldFailedPages)
	}
	if m.model_name != nil {
		fields = append(fields, extractionresult.FieldModelName)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, extractionresult.FieldElapsedMs)
	}
	if m.ocr_text != nil {
		fields = append(fields, extractionresult.FieldOcrText)
	}
	if m.created_at != nil {
		fields = append(fields, extractionresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.DocumentID()
	case extractionresult.FieldJobID:
		return m.JobID()
	case extractionresult.FieldAttempt:
		return m.Attempt()
	case extractionresult.FieldFields:
		return m.GetFields()
	case extractionresult.FieldConfidence:
		return m.Confidence()
	case extractionresult.FieldPages:
		return m.Pages()
	case extractionresult.FieldFailedPages:
		return m.FailedPages()
	case extractionresult.FieldModelName:
		return m.ModelName()
	case extractionresult.FieldElapsedMs:
		return m.ElapsedMs()
	case extractionresult.FieldOcrText:
		return m.OcrText()
	case extractionresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionresult.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionresult.FieldJobID:
		return m.OldJobID(ctx)
	case extractionresult.FieldAttempt:
		return m.OldAttempt(ctx)
	case extractionresult.FieldFields:
		return m.OldFields(ctx)
	case extractionresult.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionresult.FieldPages:
		return m.OldPages(ctx)
	case extractionresult.FieldFailedPages:
		return m.OldFailedPages(ctx)
	case extractionresult.FieldModelName:
		return m.OldModelName(ctx)
	case extractionresult.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case extractionresult.FieldOcrText:
		return m.OldOcrText(ctx)
	case extractionresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionresult.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case extractionresult.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case extractionresult.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case extractionresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionresult.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case extractionresult.FieldFailedPages:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedPages(v)
		return nil
	case extractionresult.FieldModelName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelName(v)
		return nil
	case extractionresult.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case extractionresult.FieldOcrText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrText(v)
		return nil
	case extractionresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionResultMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, extractionresult.FieldAttempt)
	}
	if m.addconfidence != nil {
		fields = append(fields, extractionresult.FieldConfidence)
	}
	if m.addpages != nil {
		fields = append(fields, extractionresult.FieldPages)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, extractionresult.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionresult.FieldAttempt:
		return m.AddedAttempt()
	case extractionresult.FieldConfidence:
		return m.AddedConfidence()
	case extractionresult.FieldPages:
		return m.AddedPages()
	case extractionresult.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionresult.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case extractionresult.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionresult.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	case extractionresult.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionresult.FieldFields) {
		fields = append(fields, extractionresult.FieldFields)
	}
	if m.FieldCleared(extractionresult.FieldFailedPages) {
		fields = append(fields, extractionresult.FieldFailedPages)
	}
	if m.FieldCleared(extractionresult.FieldModelName) {
		fields = append(fields, extractionresult.FieldModelName)
	}
	if m.FieldCleared(extractionresult.FieldOcrText) {
		fields = append(fields, extractionresult.FieldOcrText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ClearField(name string) error {
	switch name {
	case extractionresult.FieldFields:
		m.ClearFields()
		return nil
	case extractionresult.FieldFailedPages:
		m.ClearFailedPages()
		return nil
	case extractionresult.FieldModelName:
		m.ClearModelName()
		return nil
	case extractionresult.FieldOcrText:
		m.ClearOcrText()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionResultMutation) ResetField(name string) error {
	switch name {
	case extractionresult.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionresult.FieldJobID:
		m.ResetJobID()
		return nil
	case extractionresult.FieldAttempt:
		m.ResetAttempt()
		return nil
	case extractionresult.FieldFields:
		m.ResetFields()
		return nil
	case extractionresult.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionresult.FieldPages:
		m.ResetPages()
		return nil
	case extractionresult.FieldFailedPages:
		m.ResetFailedPages()
		return nil
	case extractionresult.FieldModelName:
		m.ResetModelName()
		return nil
	case extractionresult.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case extractionresult.FieldOcrText:
		m.ResetOcrText()
		return nil
	case extractionresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.document != nil {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.job != nil {
		edges = append(edges, extractionresult.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionresult.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case extractionresult.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddocument {
		edges = append(edges, extractionresult.EdgeDocument)
	}
	if m.clearedjob {
		edges = append(edges, extractionresult.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionresult.EdgeDocument:
		return m.cleareddocument
	case extractionresult.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionResultMutation) ClearEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ClearDocument()
		return nil
	case extractionresult.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionResultMutation) ResetEdge(name string) error {
	switch name {
	case extractionresult.EdgeDocument:
		m.ResetDocument()
		return nil
	case extractionresult.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown ExtractionResult edge %s", name)
}

// FormTemplateMutation represents an operation that mutates the FormTemplate nodes in the graph.
type FormTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	version       *int
	addversion    *int
	fields        *json.RawMessage
	appendfields  json.RawMessage
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*FormTemplate, error)
	predicates    []predicate.FormTemplate
}

var _ ent.Mutation = (*FormTemplateMutation)(nil)

// formtemplateOption allows management of the mutation configuration using functional options.
type formtemplateOption func(*FormTemplateMutation)

// newFormTemplateMutation creates new mutation for the FormTemplate entity.
func newFormTemplateMutation(c config, op Op, opts ...formtemplateOption) *FormTemplateMutation {
	m := &FormTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeFormTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFormTemplateID sets the ID field of the mutation.
func withFormTemplateID(id uuid.UUID) formtemplateOption {
	return func(m *FormTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *FormTemplate
		)
		m.oldValue = func(ctx context.Context) (*FormTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FormTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFormTemplate sets the old FormTemplate of the mutation.
func withFormTemplate(node *FormTemplate) formtemplateOption {
	return func(m *FormTemplateMutation) {
		m.oldValue = func(context.Context) (*FormTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FormTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FormTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FormTemplate entities.
func (m *FormTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FormTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FormTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FormTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *FormTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FormTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the FormTemplate entity.
// If the FormTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FormTemplateMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *FormTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *FormTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the FormTemplate entity.
// If the FormTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *FormTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *FormTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *FormTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetFields sets the "fields" field.
func (m *FormTemplateMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *FormTemplateMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the FormTemplate entity.
// If the FormTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormTemplateMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *FormTemplateMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *FormTemplateMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ClearFields clears the value of the "fields" field.
func (m *FormTemplateMutation) ClearFields() {
	m.fields = nil
	m.appendfields = nil
	m.clearedFields[formtemplate.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *FormTemplateMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[formtemplate.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *FormTemplateMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
	delete(m.clearedFields, formtemplate.FieldFields)
}

// SetCreatedAt sets the "created_at" field.
func (m *FormTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FormTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FormTemplate entity.
// If the FormTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FormTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FormTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FormTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FormTemplate entity.
// If the FormTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FormTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FormTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the PipelineJob entity by ids.
func (m *FormTemplateMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the PipelineJob entity.
func (m *FormTemplateMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the PipelineJob entity was cleared.
func (m *FormTemplateMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the PipelineJob entity by IDs.
func (m *FormTemplateMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the PipelineJob entity.
func (m *FormTemplateMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *FormTemplateMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *FormTemplateMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the FormTemplateMutation builder.
func (m *FormTemplateMutation) Where(ps ...predicate.FormTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FormTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FormTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FormTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FormTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FormTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FormTemplate).
func (m *FormTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FormTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, formtemplate.FieldName)
	}
	if m.version != nil {
		fields = append(fields, formtemplate.FieldVersion)
	}
	if m.fields != nil {
		fields = append(fields, formtemplate.FieldFields)
	}
	if m.created_at != nil {
		fields = append(fields, formtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, formtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FormTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case formtemplate.FieldName:
		return m.Name()
	case formtemplate.FieldVersion:
		return m.Version()
	case formtemplate.FieldFields:
		return m.GetFields()
	case formtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case formtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FormTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case formtemplate.FieldName:
		return m.OldName(ctx)
	case formtemplate.FieldVersion:
		return m.OldVersion(ctx)
	case formtemplate.FieldFields:
		return m.OldFields(ctx)
	case formtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case formtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FormTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case formtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case formtemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case formtemplate.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case formtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case formtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FormTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FormTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, formtemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FormTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case formtemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FormTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case formtemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown FormTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FormTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(formtemplate.FieldFields) {
		fields = append(fields, formtemplate.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FormTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FormTemplateMutation) ClearField(name string) error {
	switch name {
	case formtemplate.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown FormTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FormTemplateMutation) ResetField(name string) error {
	switch name {
	case formtemplate.FieldName:
		m.ResetName()
		return nil
	case formtemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case formtemplate.FieldFields:
		m.ResetFields()
		return nil
	case formtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case formtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FormTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FormTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, formtemplate.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FormTemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case formtemplate.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FormTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, formtemplate.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FormTemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case formtemplate.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FormTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, formtemplate.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FormTemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case formtemplate.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FormTemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown FormTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FormTemplateMutation) ResetEdge(name string) error {
	switch name {
	case formtemplate.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown FormTemplate edge %s", name)
}

// PipelineJobMutation represents an operation that mutates the PipelineJob nodes in the graph.
type PipelineJobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	client_id             *string
	state                 *string
	attempt               *int
	addattempt            *int
	max_attempts          *int
	addmax_attempts       *int
	progress              *int
	addprogress           *int
	classification        *json.RawMessage
	appendclassification  json.RawMessage
	mappings              *json.RawMessage
	appendmappings        json.RawMessage
	last_assessment       *json.RawMessage
	appendlast_assessment json.RawMessage
	error_code            *string
	error_message         *string
	started_at            *time.Time
	finished_at           *time.Time
	clearedFields         map[string]struct{}
	document              *uuid.UUID
	cleareddocument       bool
	template              *uuid.UUID
	clearedtemplate       bool
	results               map[uuid.UUID]struct{}
	removedresults        map[uuid.UUID]struct{}
	clearedresults        bool
	done                  bool
	oldValue              func(context.Context) (*PipelineJob, error)
	predicates            []predicate.PipelineJob
}

var _ ent.Mutation = (*PipelineJobMutation)(nil)

// pipelinejobOption allows management of the mutation configuration using functional options.
type pipelinejobOption func(*PipelineJobMutation)

// newPipelineJobMutation creates new mutation for the PipelineJob entity.
func newPipelineJobMutation(c config, op Op, opts ...pipelinejobOption) *PipelineJobMutation {
	m := &PipelineJobMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineJobID sets the ID field of the mutation.
func withPipelineJobID(id uuid.UUID) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineJob
		)
		m.oldValue = func(ctx context.Context) (*PipelineJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineJob sets the old PipelineJob of the mutation.
func withPipelineJob(node *PipelineJob) pipelinejobOption {
	return func(m *PipelineJobMutation) {
		m.oldValue = func(context.Context) (*PipelineJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineJob entities.
func (m *PipelineJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *PipelineJobMutation) SetDocumentID(u uuid.UUID) {
	m.document = &u
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *PipelineJobMutation) DocumentID() (r uuid.UUID, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldDocumentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *PipelineJobMutation) ResetDocumentID() {
	m.document = nil
}

// SetClientID sets the "client_id" field.
func (m *PipelineJobMutation) SetClientID(s string) {
	m.client_id = &s
}

// ClientID returns the value of the "client_id" field in the mutation.
func (m *PipelineJobMutation) ClientID() (r string, exists bool) {
	v := m.client_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClientID returns the old "client_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldClientID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientID: %w", err)
	}
	return oldValue.ClientID, nil
}

// ResetClientID resets all changes to the "client_id" field.
func (m *PipelineJobMutation) ResetClientID() {
	m.client_id = nil
}

// SetTemplateID sets the "template_id" field.
func (m *PipelineJobMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *PipelineJobMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *PipelineJobMutation) ClearTemplateID() {
	m.template = nil
	m.clearedFields[pipelinejob.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *PipelineJobMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *PipelineJobMutation) ResetTemplateID() {
	m.template = nil
	delete(m.clearedFields, pipelinejob.FieldTemplateID)
}

// SetState sets the "state" field.
func (m *PipelineJobMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *PipelineJobMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *PipelineJobMutation) ResetState() {
	m.state = nil
}

// SetAttempt sets the "attempt" field.
func (m *PipelineJobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *PipelineJobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *PipelineJobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *PipelineJobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *PipelineJobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *PipelineJobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *PipelineJobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *PipelineJobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *PipelineJobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *PipelineJobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetProgress sets the "progress" field.
func (m *PipelineJobMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *PipelineJobMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *PipelineJobMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *PipelineJobMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *PipelineJobMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetClassification sets the "classification" field.
func (m *PipelineJobMutation) SetClassification(jm json.RawMessage) {
	m.classification = &jm
	m.appendclassification = nil
}

// Classification returns the value of the "classification" field in the mutation.
func (m *PipelineJobMutation) Classification() (r json.RawMessage, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldClassification(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// AppendClassification adds jm to the "classification" field.
func (m *PipelineJobMutation) AppendClassification(jm json.RawMessage) {
	m.appendclassification = append(m.appendclassification, jm...)
}

// AppendedClassification returns the list of values that were appended to the "classification" field in this mutation.
func (m *PipelineJobMutation) AppendedClassification() (json.RawMessage, bool) {
	if len(m.appendclassification) == 0 {
		return nil, false
	}
	return m.appendclassification, true
}

// ClearClassification clears the value of the "classification" field.
func (m *PipelineJobMutation) ClearClassification() {
	m.classification = nil
	m.appendclassification = nil
	m.clearedFields[pipelinejob.FieldClassification] = struct{}{}
}

// ClassificationCleared returns if the "classification" field was cleared in this mutation.
func (m *PipelineJobMutation) ClassificationCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldClassification]
	return ok
}

// ResetClassification resets all changes to the "classification" field.
func (m *PipelineJobMutation) ResetClassification() {
	m.classification = nil
	m.appendclassification = nil
	delete(m.clearedFields, pipelinejob.FieldClassification)
}

// SetMappings sets the "mappings" field.
func (m *PipelineJobMutation) SetMappings(jm json.RawMessage) {
	m.mappings = &jm
	m.appendmappings = nil
}

// Mappings returns the value of the "mappings" field in the mutation.
func (m *PipelineJobMutation) Mappings() (r json.RawMessage, exists bool) {
	v := m.mappings
	if v == nil {
		return
	}
	return *v, true
}

// OldMappings returns the old "mappings" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldMappings(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappings: %w", err)
	}
	return oldValue.Mappings, nil
}

// AppendMappings adds jm to the "mappings" field.
func (m *PipelineJobMutation) AppendMappings(jm json.RawMessage) {
	m.appendmappings = append(m.appendmappings, jm...)
}

// AppendedMappings returns the list of values that were appended to the "mappings" field in this mutation.
func (m *PipelineJobMutation) AppendedMappings() (json.RawMessage, bool) {
	if len(m.appendmappings) == 0 {
		return nil, false
	}
	return m.appendmappings, true
}

// ClearMappings clears the value of the "mappings" field.
func (m *PipelineJobMutation) ClearMappings() {
	m.mappings = nil
	m.appendmappings = nil
	m.clearedFields[pipelinejob.FieldMappings] = struct{}{}
}

// MappingsCleared returns if the "mappings" field was cleared in this mutation.
func (m *PipelineJobMutation) MappingsCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldMappings]
	return ok
}

// ResetMappings resets all changes to the "mappings" field.
func (m *PipelineJobMutation) ResetMappings() {
	m.mappings = nil
	m.appendmappings = nil
	delete(m.clearedFields, pipelinejob.FieldMappings)
}

// SetLastAssessment sets the "last_assessment" field.
func (m *PipelineJobMutation) SetLastAssessment(jm json.RawMessage) {
	m.last_assessment = &jm
	m.appendlast_assessment = nil
}

// LastAssessment returns the value of the "last_assessment" field in the mutation.
func (m *PipelineJobMutation) LastAssessment() (r json.RawMessage, exists bool) {
	v := m.last_assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAssessment returns the old "last_assessment" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldLastAssessment(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAssessment: %w", err)
	}
	return oldValue.LastAssessment, nil
}

// AppendLastAssessment adds jm to the "last_assessment" field.
func (m *PipelineJobMutation) AppendLastAssessment(jm json.RawMessage) {
	m.appendlast_assessment = append(m.appendlast_assessment, jm...)
}

// AppendedLastAssessment returns the list of values that were appended to the "last_assessment" field in this mutation.
func (m *PipelineJobMutation) AppendedLastAssessment() (json.RawMessage, bool) {
	if len(m.appendlast_assessment) == 0 {
		return nil, false
	}
	return m.appendlast_assessment, true
}

// ClearLastAssessment clears the value of the "last_assessment" field.
func (m *PipelineJobMutation) ClearLastAssessment() {
	m.last_assessment = nil
	m.appendlast_assessment = nil
	m.clearedFields[pipelinejob.FieldLastAssessment] = struct{}{}
}

// LastAssessmentCleared returns if the "last_assessment" field was cleared in this mutation.
func (m *PipelineJobMutation) LastAssessmentCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldLastAssessment]
	return ok
}

// ResetLastAssessment resets all changes to the "last_assessment" field.
func (m *PipelineJobMutation) ResetLastAssessment() {
	m.last_assessment = nil
	m.appendlast_assessment = nil
	delete(m.clearedFields, pipelinejob.FieldLastAssessment)
}

// SetErrorCode sets the "error_code" field.
func (m *PipelineJobMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *PipelineJobMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldErrorCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ClearErrorCode clears the value of the "error_code" field.
func (m *PipelineJobMutation) ClearErrorCode() {
	m.error_code = nil
	m.clearedFields[pipelinejob.FieldErrorCode] = struct{}{}
}

// ErrorCodeCleared returns if the "error_code" field was cleared in this mutation.
func (m *PipelineJobMutation) ErrorCodeCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldErrorCode]
	return ok
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *PipelineJobMutation) ResetErrorCode() {
	m.error_code = nil
	delete(m.clearedFields, pipelinejob.FieldErrorCode)
}

// SetErrorMessage sets the "error_message" field.
func (m *PipelineJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PipelineJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PipelineJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[pipelinejob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PipelineJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PipelineJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, pipelinejob.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *PipelineJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *PipelineJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the PipelineJob entity.
// If the PipelineJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *PipelineJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[pipelinejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *PipelineJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[pipelinejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *PipelineJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, pipelinejob.FieldFinishedAt)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *PipelineJobMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[pipelinejob.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *PipelineJobMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) DocumentIDs() (ids []uuid.UUID) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *PipelineJobMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// ClearTemplate clears the "template" edge to the FormTemplate entity.
func (m *PipelineJobMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[pipelinejob.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the FormTemplate entity was cleared.
func (m *PipelineJobMutation) TemplateCleared() bool {
	return m.TemplateIDCleared() || m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *PipelineJobMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *PipelineJobMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddResultIDs adds the "results" edge to the ExtractionResult entity by ids.
func (m *PipelineJobMutation) AddResultIDs(ids ...uuid.UUID) {
	if m.results == nil {
		m.results = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExtractionResult entity.
func (m *PipelineJobMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExtractionResult entity was cleared.
func (m *PipelineJobMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExtractionResult entity by IDs.
func (m *PipelineJobMutation) RemoveResultIDs(ids ...uuid.UUID) {
	if m.removedresults == nil {
		m.removedresults = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExtractionResult entity.
func (m *PipelineJobMutation) RemovedResultsIDs() (ids []uuid.UUID) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *PipelineJobMutation) ResultsIDs() (ids []uuid.UUID) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *PipelineJobMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the PipelineJobMutation builder.
func (m *PipelineJobMutation) Where(ps ...predicate.PipelineJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineJob).
func (m *PipelineJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.document != nil {
		fields = append(fields, pipelinejob.FieldDocumentID)
	}
	if m.client_id != nil {
		fields = append(fields, pipelinejob.FieldClientID)
	}
	if m.template != nil {
		fields = append(fields, pipelinejob.FieldTemplateID)
	}
	if m.state != nil {
		fields = append(fields, pipelinejob.FieldState)
	}
	if m.attempt != nil {
		fields = append(fields, pipelinejob.FieldAttempt)
	}
	if m.max_attempts != nil {
		fields = append(fields, pipelinejob.FieldMaxAttempts)
	}
	if m.progress != nil {
		fields = append(fields, pipelinejob.FieldProgress)
	}
	if m.classification != nil {
		fields = append(fields, pipelinejob.FieldClassification)
	}
	if m.mappings != nil {
		fields = append(fields, pipelinejob.FieldMappings)
	}
	if m.last_assessment != nil {
		fields = append(fields, pipelinejob.FieldLastAssessment)
	}
	if m.error_code != nil {
		fields = append(fields, pipelinejob.FieldErrorCode)
	}
	if m.error_message != nil {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, pipelinejob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldDocumentID:
		return m.DocumentID()
	case pipelinejob.FieldClientID:
		return m.ClientID()
	case pipelinejob.FieldTemplateID:
		return m.TemplateID()
	case pipelinejob.FieldState:
		return m.State()
	case pipelinejob.FieldAttempt:
		return m.Attempt()
	case pipelinejob.FieldMaxAttempts:
		return m.MaxAttempts()
	case pipelinejob.FieldProgress:
		return m.Progress()
	case pipelinejob.FieldClassification:
		return m.Classification()
	case pipelinejob.FieldMappings:
		return m.Mappings()
	case pipelinejob.FieldLastAssessment:
		return m.LastAssessment()
	case pipelinejob.FieldErrorCode:
		return m.ErrorCode()
	case pipelinejob.FieldErrorMessage:
		return m.ErrorMessage()
	case pipelinejob.FieldStartedAt:
		return m.StartedAt()
	case pipelinejob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinejob.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case pipelinejob.FieldClientID:
		return m.OldClientID(ctx)
	case pipelinejob.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case pipelinejob.FieldState:
		return m.OldState(ctx)
	case pipelinejob.FieldAttempt:
		return m.OldAttempt(ctx)
	case pipelinejob.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case pipelinejob.FieldProgress:
		return m.OldProgress(ctx)
	case pipelinejob.FieldClassification:
		return m.OldClassification(ctx)
	case pipelinejob.FieldMappings:
		return m.OldMappings(ctx)
	case pipelinejob.FieldLastAssessment:
		return m.OldLastAssessment(ctx)
	case pipelinejob.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case pipelinejob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case pipelinejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldDocumentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case pipelinejob.FieldClientID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientID(v)
		return nil
	case pipelinejob.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case pipelinejob.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case pipelinejob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case pipelinejob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case pipelinejob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case pipelinejob.FieldClassification:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case pipelinejob.FieldMappings:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappings(v)
		return nil
	case pipelinejob.FieldLastAssessment:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAssessment(v)
		return nil
	case pipelinejob.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case pipelinejob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case pipelinejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, pipelinejob.FieldAttempt)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, pipelinejob.FieldMaxAttempts)
	}
	if m.addprogress != nil {
		fields = append(fields, pipelinejob.FieldProgress)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinejob.FieldAttempt:
		return m.AddedAttempt()
	case pipelinejob.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case pipelinejob.FieldProgress:
		return m.AddedProgress()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinejob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	case pipelinejob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case pipelinejob.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinejob.FieldTemplateID) {
		fields = append(fields, pipelinejob.FieldTemplateID)
	}
	if m.FieldCleared(pipelinejob.FieldClassification) {
		fields = append(fields, pipelinejob.FieldClassification)
	}
	if m.FieldCleared(pipelinejob.FieldMappings) {
		fields = append(fields, pipelinejob.FieldMappings)
	}
	if m.FieldCleared(pipelinejob.FieldLastAssessment) {
		fields = append(fields, pipelinejob.FieldLastAssessment)
	}
	if m.FieldCleared(pipelinejob.FieldErrorCode) {
		fields = append(fields, pipelinejob.FieldErrorCode)
	}
	if m.FieldCleared(pipelinejob.FieldErrorMessage) {
		fields = append(fields, pipelinejob.FieldErrorMessage)
	}
	if m.FieldCleared(pipelinejob.FieldFinishedAt) {
		fields = append(fields, pipelinejob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineJobMutation) ClearField(name string) error {
	switch name {
	case pipelinejob.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case pipelinejob.FieldClassification:
		m.ClearClassification()
		return nil
	case pipelinejob.FieldMappings:
		m.ClearMappings()
		return nil
	case pipelinejob.FieldLastAssessment:
		m.ClearLastAssessment()
		return nil
	case pipelinejob.FieldErrorCode:
		m.ClearErrorCode()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case pipelinejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineJobMutation) ResetField(name string) error {
	switch name {
	case pipelinejob.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case pipelinejob.FieldClientID:
		m.ResetClientID()
		return nil
	case pipelinejob.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case pipelinejob.FieldState:
		m.ResetState()
		return nil
	case pipelinejob.FieldAttempt:
		m.ResetAttempt()
		return nil
	case pipelinejob.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case pipelinejob.FieldProgress:
		m.ResetProgress()
		return nil
	case pipelinejob.FieldClassification:
		m.ResetClassification()
		return nil
	case pipelinejob.FieldMappings:
		m.ResetMappings()
		return nil
	case pipelinejob.FieldLastAssessment:
		m.ResetLastAssessment()
		return nil
	case pipelinejob.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case pipelinejob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case pipelinejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.document != nil {
		edges = append(edges, pipelinejob.EdgeDocument)
	}
	if m.template != nil {
		edges = append(edges, pipelinejob.EdgeTemplate)
	}
	if m.results != nil {
		edges = append(edges, pipelinejob.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipelinejob.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case pipelinejob.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case pipelinejob.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedresults != nil {
		edges = append(edges, pipelinejob.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipelinejob.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocument {
		edges = append(edges, pipelinejob.EdgeDocument)
	}
	if m.clearedtemplate {
		edges = append(edges, pipelinejob.EdgeTemplate)
	}
	if m.clearedresults {
		edges = append(edges, pipelinejob.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineJobMutation) EdgeCleared(name string) bool {
	switch name {
	case pipelinejob.EdgeDocument:
		return m.cleareddocument
	case pipelinejob.EdgeTemplate:
		return m.clearedtemplate
	case pipelinejob.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineJobMutation) ClearEdge(name string) error {
	switch name {
	case pipelinejob.EdgeDocument:
		m.ClearDocument()
		return nil
	case pipelinejob.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineJobMutation) ResetEdge(name string) error {
	switch name {
	case pipelinejob.EdgeDocument:
		m.ResetDocument()
		return nil
	case pipelinejob.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case pipelinejob.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown PipelineJob edge %s", name)
}
