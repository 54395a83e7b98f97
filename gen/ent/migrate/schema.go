// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientProfilesColumns holds the columns for the "client_profiles" table.
	ClientProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString, Unique: true},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClientProfilesTable holds the schema information for the "client_profiles" table.
	ClientProfilesTable = &schema.Table{
		Name:       "client_profiles",
		Columns:    ClientProfilesColumns,
		PrimaryKey: []*schema.Column{ClientProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientprofile_client_id",
				Unique:  true,
				Columns: []*schema.Column{ClientProfilesColumns[1]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString},
		{Name: "source_path", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Size: 64, SchemaType: map[string]string{"postgres": "char(64)"}},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_client_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[5]},
			},
			{
				Name:    "document_client_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[7]},
			},
		},
	}
	// ExtractionResultsColumns holds the columns for the "extraction_results" table.
	ExtractionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "attempt", Type: field.TypeInt, Default: 1},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "pages", Type: field.TypeInt, Default: 0},
		{Name: "failed_pages", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ExtractionResultsTable holds the schema information for the "extraction_results" table.
	ExtractionResultsTable = &schema.Table{
		Name:       "extraction_results",
		Columns:    ExtractionResultsColumns,
		PrimaryKey: []*schema.Column{ExtractionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_results_documents_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extraction_results_pipeline_jobs_results",
				Columns:    []*schema.Column{ExtractionResultsColumns[11]},
				RefColumns: []*schema.Column{PipelineJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionresult_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[10], ExtractionResultsColumns[9]},
			},
			{
				Name:    "extractionresult_job_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionResultsColumns[11]},
			},
		},
	}
	// FormTemplatesColumns holds the columns for the "form_templates" table.
	FormTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "fields", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FormTemplatesTable holds the schema information for the "form_templates" table.
	FormTemplatesTable = &schema.Table{
		Name:       "form_templates",
		Columns:    FormTemplatesColumns,
		PrimaryKey: []*schema.Column{FormTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "formtemplate_name_version",
				Unique:  true,
				Columns: []*schema.Column{FormTemplatesColumns[1], FormTemplatesColumns[2]},
			},
		},
	}
	// PipelineJobsColumns holds the columns for the "pipeline_jobs" table.
	PipelineJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "client_id", Type: field.TypeString},
		{Name: "state", Type: field.TypeString, Default: "QUEUED"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "classification", Type: field.TypeJSON, Nullable: true},
		{Name: "mappings", Type: field.TypeJSON, Nullable: true},
		{Name: "last_assessment", Type: field.TypeJSON, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
	}
	// PipelineJobsTable holds the schema information for the "pipeline_jobs" table.
	PipelineJobsTable = &schema.Table{
		Name:       "pipeline_jobs",
		Columns:    PipelineJobsColumns,
		PrimaryKey: []*schema.Column{PipelineJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pipeline_jobs_documents_jobs",
				Columns:    []*schema.Column{PipelineJobsColumns[13]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "pipeline_jobs_form_templates_jobs",
				Columns:    []*schema.Column{PipelineJobsColumns[14]},
				RefColumns: []*schema.Column{FormTemplatesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinejob_client_id_state_started_at",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[1], PipelineJobsColumns[2], PipelineJobsColumns[11]},
			},
			{
				Name:    "pipelinejob_document_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[13]},
			},
			{
				Name:    "pipelinejob_state",
				Unique:  false,
				Columns: []*schema.Column{PipelineJobsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientProfilesTable,
		DocumentsTable,
		ExtractionResultsTable,
		FormTemplatesTable,
		PipelineJobsTable,
	}
)

func init() {
	ClientProfilesTable.Annotation = &entsql.Annotation{
		Table: "client_profiles",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionResultsTable.ForeignKeys[1].RefTable = PipelineJobsTable
	ExtractionResultsTable.Annotation = &entsql.Annotation{
		Table: "extraction_results",
	}
	FormTemplatesTable.Annotation = &entsql.Annotation{
		Table: "form_templates",
	}
	PipelineJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	PipelineJobsTable.ForeignKeys[1].RefTable = FormTemplatesTable
	PipelineJobsTable.Annotation = &entsql.Annotation{
		Table: "pipeline_jobs",
	}
}
