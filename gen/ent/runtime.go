// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docufill/docpipe/db/ent/schema"
	"github.com/docufill/docpipe/gen/ent/clientprofile"
	"github.com/docufill/docpipe/gen/ent/document"
	"github.com/docufill/docpipe/gen/ent/extractionresult"
	"github.com/docufill/docpipe/gen/ent/formtemplate"
	"github.com/docufill/docpipe/gen/ent/pipelinejob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	clientprofileFields := schema.ClientProfile{}.Fields()
	_ = clientprofileFields
	// clientprofileDescClientID is the schema descriptor for client_id field.
	clientprofileDescClientID := clientprofileFields[1].Descriptor()
	// clientprofile.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	clientprofile.ClientIDValidator = clientprofileDescClientID.Validators[0].(func(string) error)
	// clientprofileDescVersion is the schema descriptor for version field.
	clientprofileDescVersion := clientprofileFields[3].Descriptor()
	// clientprofile.DefaultVersion holds the default value on creation for the version field.
	clientprofile.DefaultVersion = clientprofileDescVersion.Default.(int)
	// clientprofileDescCreatedAt is the schema descriptor for created_at field.
	clientprofileDescCreatedAt := clientprofileFields[4].Descriptor()
	// clientprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	clientprofile.DefaultCreatedAt = clientprofileDescCreatedAt.Default.(func() time.Time)
	// clientprofileDescUpdatedAt is the schema descriptor for updated_at field.
	clientprofileDescUpdatedAt := clientprofileFields[5].Descriptor()
	// clientprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clientprofile.DefaultUpdatedAt = clientprofileDescUpdatedAt.Default.(func() time.Time)
	// clientprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clientprofile.UpdateDefaultUpdatedAt = clientprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clientprofileDescID is the schema descriptor for id field.
	clientprofileDescID := clientprofileFields[0].Descriptor()
	// clientprofile.DefaultID holds the default value on creation for the id field.
	clientprofile.DefaultID = clientprofileDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescClientID is the schema descriptor for client_id field.
	documentDescClientID := documentFields[1].Descriptor()
	// document.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	document.ClientIDValidator = documentDescClientID.Validators[0].(func(string) error)
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[3].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFormat is the schema descriptor for format field.
	documentDescFormat := documentFields[4].Descriptor()
	// document.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	document.FormatValidator = func() func(string) error {
		validators := documentDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[5].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = func() func(string) error {
		validators := documentDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[6].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[7].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractionresultFields := schema.ExtractionResult{}.Fields()
	_ = extractionresultFields
	// extractionresultDescAttempt is the schema descriptor for attempt field.
	extractionresultDescAttempt := extractionresultFields[3].Descriptor()
	// extractionresult.DefaultAttempt holds the default value on creation for the attempt field.
	extractionresult.DefaultAttempt = extractionresultDescAttempt.Default.(int)
	// extractionresultDescConfidence is the schema descriptor for confidence field.
	extractionresultDescConfidence := extractionresultFields[5].Descriptor()
	// extractionresult.DefaultConfidence holds the default value on creation for the confidence field.
	extractionresult.DefaultConfidence = extractionresultDescConfidence.Default.(float64)
	// extractionresultDescPages is the schema descriptor for pages field.
	extractionresultDescPages := extractionresultFields[6].Descriptor()
	// extractionresult.DefaultPages holds the default value on creation for the pages field.
	extractionresult.DefaultPages = extractionresultDescPages.Default.(int)
	// extractionresultDescElapsedMs is the schema descriptor for elapsed_ms field.
	extractionresultDescElapsedMs := extractionresultFields[9].Descriptor()
	// extractionresult.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	extractionresult.DefaultElapsedMs = extractionresultDescElapsedMs.Default.(int64)
	// extractionresultDescCreatedAt is the schema descriptor for created_at field.
	extractionresultDescCreatedAt := extractionresultFields[11].Descriptor()
	// extractionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionresult.DefaultCreatedAt = extractionresultDescCreatedAt.Default.(func() time.Time)
	// extractionresultDescID is the schema descriptor for id field.
	extractionresultDescID := extractionresultFields[0].Descriptor()
	// extractionresult.DefaultID holds the default value on creation for the id field.
	extractionresult.DefaultID = extractionresultDescID.Default.(func() uuid.UUID)
	formtemplateFields := schema.FormTemplate{}.Fields()
	_ = formtemplateFields
	// formtemplateDescName is the schema descriptor for name field.
	formtemplateDescName := formtemplateFields[1].Descriptor()
	// formtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	formtemplate.NameValidator = formtemplateDescName.Validators[0].(func(string) error)
	// formtemplateDescVersion is the schema descriptor for version field.
	formtemplateDescVersion := formtemplateFields[2].Descriptor()
	// formtemplate.DefaultVersion holds the default value on creation for the version field.
	formtemplate.DefaultVersion = formtemplateDescVersion.Default.(int)
	// formtemplateDescCreatedAt is the schema descriptor for created_at field.
	formtemplateDescCreatedAt := formtemplateFields[4].Descriptor()
	// formtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	formtemplate.DefaultCreatedAt = formtemplateDescCreatedAt.Default.(func() time.Time)
	// formtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	formtemplateDescUpdatedAt := formtemplateFields[5].Descriptor()
	// formtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	formtemplate.DefaultUpdatedAt = formtemplateDescUpdatedAt.Default.(func() time.Time)
	// formtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	formtemplate.UpdateDefaultUpdatedAt = formtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// formtemplateDescID is the schema descriptor for id field.
	formtemplateDescID := formtemplateFields[0].Descriptor()
	// formtemplate.DefaultID holds the default value on creation for the id field.
	formtemplate.DefaultID = formtemplateDescID.Default.(func() uuid.UUID)
	pipelinejobFields := schema.PipelineJob{}.Fields()
	_ = pipelinejobFields
	// pipelinejobDescClientID is the schema descriptor for client_id field.
	pipelinejobDescClientID := pipelinejobFields[2].Descriptor()
	// pipelinejob.ClientIDValidator is a validator for the "client_id" field. It is called by the builders before save.
	pipelinejob.ClientIDValidator = pipelinejobDescClientID.Validators[0].(func(string) error)
	// pipelinejobDescState is the schema descriptor for state field.
	pipelinejobDescState := pipelinejobFields[4].Descriptor()
	// pipelinejob.DefaultState holds the default value on creation for the state field.
	pipelinejob.DefaultState = pipelinejobDescState.Default.(string)
	// pipelinejob.StateValidator is a validator for the "state" field. It is called by the builders before save.
	pipelinejob.StateValidator = pipelinejobDescState.Validators[0].(func(string) error)
	// pipelinejobDescAttempt is the schema descriptor for attempt field.
	pipelinejobDescAttempt := pipelinejobFields[5].Descriptor()
	// pipelinejob.DefaultAttempt holds the default value on creation for the attempt field.
	pipelinejob.DefaultAttempt = pipelinejobDescAttempt.Default.(int)
	// pipelinejobDescMaxAttempts is the schema descriptor for max_attempts field.
	pipelinejobDescMaxAttempts := pipelinejobFields[6].Descriptor()
	// pipelinejob.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	pipelinejob.DefaultMaxAttempts = pipelinejobDescMaxAttempts.Default.(int)
	// pipelinejobDescProgress is the schema descriptor for progress field.
	pipelinejobDescProgress := pipelinejobFields[7].Descriptor()
	// pipelinejob.DefaultProgress holds the default value on creation for the progress field.
	pipelinejob.DefaultProgress = pipelinejobDescProgress.Default.(int)
	// pipelinejobDescStartedAt is the schema descriptor for started_at field.
	pipelinejobDescStartedAt := pipelinejobFields[13].Descriptor()
	// pipelinejob.DefaultStartedAt holds the default value on creation for the started_at field.
	pipelinejob.DefaultStartedAt = pipelinejobDescStartedAt.Default.(func() time.Time)
	// pipelinejobDescID is the schema descriptor for id field.
	pipelinejobDescID := pipelinejobFields[0].Descriptor()
	// pipelinejob.DefaultID holds the default value on creation for the id field.
	pipelinejob.DefaultID = pipelinejobDescID.Default.(func() uuid.UUID)
}
