package server

import (
	"time"

	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/entity"
)

func jobToProto(j *entity.PipelineJob) *v1.JobStatusResponse {
	out := &v1.JobStatusResponse{
		JobId:        j.ID.String(),
		DocumentId:   j.DocumentID.String(),
		ClientId:     j.ClientID,
		State:        string(j.State),
		Progress:     int32(j.Progress),
		Attempt:      int32(j.Attempt),
		MaxAttempts:  int32(j.MaxAttempts),
		ErrorCode:    string(j.ErrorCode),
		ErrorMessage: j.ErrorMessage,
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.TemplateID != nil {
		out.TemplateId = j.TemplateID.String()
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	if j.Classification != nil {
		out.Classification = classificationToProto(j.Classification)
	}
	for _, m := range j.Mappings {
		out.Mappings = append(out.Mappings, mappingToProto(m))
	}
	if j.LastAssessment != nil {
		out.LastAssessment = assessmentToProto(j.LastAssessment)
	}
	return out
}

func classificationToProto(c *entity.DocumentClassification) *v1.Classification {
	out := &v1.Classification{
		Category:          c.Category,
		Confidence:        c.Confidence,
		NeedsConfirmation: c.NeedsConfirmation,
	}
	for _, a := range c.Alternatives {
		out.Alternatives = append(out.Alternatives, &v1.CategoryAlternative{
			Category:   a.Category,
			Confidence: a.Confidence,
		})
	}
	return out
}

func mappingToProto(m entity.FieldMapping) *v1.FieldMapping {
	return &v1.FieldMapping{
		SourceField:     m.SourceField,
		SourceValue:     m.SourceValue,
		TargetField:     m.TargetField,
		Confidence:      m.Confidence,
		IsOverridden:    m.IsOverridden,
		OverrideValue:   m.OverrideValue,
		RequiredMissing: m.RequiredMissing,
		EffectiveValue:  m.EffectiveValue(),
	}
}

func assessmentToProto(a *entity.QualityAssessment) *v1.QualityAssessment {
	out := &v1.QualityAssessment{
		IsValid:          a.IsValid,
		OverallScore:     a.OverallScore,
		NeedsHumanReview: a.NeedsHumanReview,
	}
	for _, i := range a.Issues {
		out.Issues = append(out.Issues, &v1.QualityIssue{
			Field:   i.Field,
			Code:    i.Code,
			Message: i.Message,
		})
	}
	return out
}

func templateToProto(t *entity.FormTemplate) *v1.Template {
	out := &v1.Template{
		Id:        t.ID.String(),
		Name:      t.Name,
		Version:   int32(t.Version),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, f := range t.Fields {
		out.Fields = append(out.Fields, &v1.TemplateField{
			Name:     f.Name,
			Label:    f.Label,
			Required: f.Required,
			Type:     string(f.Type),
			Options:  f.Options,
			Order:    int32(f.Order),
		})
	}
	return out
}

func templateFieldsFromProto(fields []*v1.TemplateField) []entity.TemplateField {
	out := make([]entity.TemplateField, 0, len(fields))
	for i, f := range fields {
		order := int(f.GetOrder())
		if order == 0 {
			order = i
		}
		ftype := entity.TemplateFieldType(f.GetType())
		if ftype == "" {
			ftype = entity.FieldTypeText
		}
		out = append(out, entity.TemplateField{
			Name:     f.GetName(),
			Label:    f.GetLabel(),
			Required: f.GetRequired(),
			Type:     ftype,
			Options:  f.GetOptions(),
			Order:    order,
		})
	}
	return out
}
