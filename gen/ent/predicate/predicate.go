// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ClientProfile is the predicate function for clientprofile builders.
type ClientProfile func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionResult is the predicate function for extractionresult builders.
type ExtractionResult func(*sql.Selector)

// FormTemplate is the predicate function for formtemplate builders.
type FormTemplate func(*sql.Selector)

// PipelineJob is the predicate function for pipelinejob builders.
type PipelineJob func(*sql.Selector)
