package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/extract"
	"github.com/docufill/docpipe/internal/ocr"
	"github.com/docufill/docpipe/internal/resilience"
)

// runOnce is a single pass over the stages. Any error aborts the pass and
// lands in the recovery loop; nil means the job reached done.
func (o *Orchestrator) runOnce(ctx context.Context, job *entity.PipelineJob, doc *entity.Document, opts runOptions) error {
	// classifying covers text acquisition too: classification needs the
	// recognized text, so OCR runs here
	if err := o.transition(ctx, job, constants.JobStateClassifying); err != nil {
		return err
	}
	ocrCtx := ocr.WithContentHash(ocr.WithDocumentID(ctx, doc.ID.String()), doc.ContentHash)
	ocrRes, err := o.ocr.Extract(ocrCtx, doc.SourcePath)
	if err != nil {
		return err
	}

	classification := o.classifier.Classify(ocrRes.Text())
	if err := o.jobs.SaveClassification(ctx, job.ID, &classification); err != nil {
		return err
	}
	job.Classification = &classification
	o.publish(job)

	if err := o.transition(ctx, job, constants.JobStateExtracting); err != nil {
		return err
	}
	fields, elapsed, err := o.extractFields(ctx, job, doc, &ocrRes, constants.DocCategory(classification.Category), opts)
	if err != nil {
		return err
	}
	if err := o.recordResult(ctx, job, doc, &ocrRes, fields, elapsed, opts); err != nil {
		return err
	}

	var tmpl *entity.FormTemplate
	if job.TemplateID != nil {
		if err := o.transition(ctx, job, constants.JobStateMapping); err != nil {
			return err
		}
		tmpl, err = o.templates.GetByID(ctx, *job.TemplateID)
		if err != nil {
			return err
		}
		job.Mappings = o.mapper.Map(tmpl, fields)
		if err := o.jobs.SaveMappings(ctx, job.ID, job.Mappings); err != nil {
			return err
		}
		o.publish(job)

		if err := o.transition(ctx, job, constants.JobStateQA); err != nil {
			return err
		}
		assessment := o.assessor.Assess(tmpl, job.Mappings, job.Classification)
		if err := o.jobs.SaveAssessment(ctx, job.ID, &assessment); err != nil {
			return err
		}
		job.LastAssessment = &assessment
		o.publish(job)

		if !assessment.IsValid {
			return &common.ValidationError{
				Message:   assessmentSummary(assessment),
				Transient: assessment.Transient,
			}
		}
	}

	if err := o.transition(ctx, job, constants.JobStateMerging); err != nil {
		return err
	}
	if err := o.mergeFields(ctx, job, doc, fields); err != nil {
		return err
	}

	if err := o.jobs.MarkDone(ctx, job.ID); err != nil {
		return err
	}
	job.State = constants.JobStateDone
	job.Progress = constants.JobStateDone.Progress()
	job.ErrorCode = constants.ErrCodeNone
	job.ErrorMessage = ""
	now := time.Now()
	job.FinishedAt = &now
	o.publish(job)
	o.logger.InfoContext(ctx, "pipeline.done",
		"job_id", job.ID, "fields", fields.Len(), "attempts", job.Attempt+1)
	return nil
}

func (o *Orchestrator) extractFields(ctx context.Context, job *entity.PipelineJob, doc *entity.Document, ocrRes *ocr.ExtractionResult, category constants.DocCategory, opts runOptions) (*entity.FieldSet, time.Duration, error) {
	pages := make([]string, len(ocrRes.Pages))
	for i, p := range ocrRes.Pages {
		if p.Err == nil {
			pages[i] = p.Text
		}
	}

	start := time.Now()
	fields, err := o.extractor.Extract(ctx, extract.Request{
		Pages:          pages,
		Category:       category,
		DisableModel:   opts.disableModel,
		FilePath:       doc.SourcePath,
		OCRConfidence:  ocrRes.Confidence,
		ContentHashHex: doc.ContentHash,
	})
	if err != nil {
		return nil, 0, err
	}
	return fields, time.Since(start), nil
}

func (o *Orchestrator) recordResult(ctx context.Context, job *entity.PipelineJob, doc *entity.Document, ocrRes *ocr.ExtractionResult, fields *entity.FieldSet, elapsed time.Duration, opts runOptions) error {
	var failed []int
	for i, p := range ocrRes.Pages {
		if p.Err != nil {
			failed = append(failed, i)
		}
	}
	modelName := ""
	if !opts.disableModel {
		modelName = o.extractor.ModelName()
	}
	_, err := o.results.Create(ctx, &entity.ExtractionResult{
		DocumentID:  doc.ID,
		JobID:       job.ID,
		Attempt:     job.Attempt + 1,
		Fields:      fields,
		Confidence:  fields.AggregateConfidence(),
		Pages:       len(ocrRes.Pages),
		FailedPages: failed,
		ModelName:   modelName,
		ElapsedMS:   elapsed.Milliseconds(),
	})
	return err
}

// mergeFields folds the extracted fields into the client profile, retrying
// write conflicts from concurrent mergers.
func (o *Orchestrator) mergeFields(ctx context.Context, job *entity.PipelineJob, doc *entity.Document, fields *entity.FieldSet) error {
	cfg := o.retry
	cfg.ShouldRetry = func(err error) bool {
		var mc *common.MergeConflictError
		return errors.As(err, &mc)
	}
	return resilience.Do(ctx, cfg, func(ctx context.Context) error {
		_, err := o.merger.Merge(ctx, job.ClientID, doc.ID, fields, time.Now())
		return err
	})
}

func assessmentSummary(a entity.QualityAssessment) string {
	if len(a.Issues) == 0 {
		return "quality assessment rejected the mapping"
	}
	first := a.Issues[0]
	if len(a.Issues) == 1 {
		return first.Field + ": " + first.Message
	}
	return first.Field + ": " + first.Message + " (and more issues)"
}
