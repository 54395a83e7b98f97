package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/mapper"
	"github.com/docufill/docpipe/internal/repository"
)

// ProfileReader supplies the durable client profile the filler draws from.
type ProfileReader interface {
	Profile(ctx context.Context, clientID string) (*entity.ClientProfile, error)
}

// Service renders filled form values, either from a completed job's
// mappings or straight from a client's merged profile.
type Service struct {
	jobs      repository.JobRepository
	templates repository.TemplateRepository
	profiles  ProfileReader
	mapper    *mapper.Mapper
	outputDir string
	logger    *slog.Logger
}

func NewService(jobs repository.JobRepository, templates repository.TemplateRepository, profiles ProfileReader, m *mapper.Mapper, outputDir string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobs: jobs, templates: templates, profiles: profiles, mapper: m, outputDir: outputDir, logger: logger}
}

// FilledValuesXLSX builds the workbook for a job and returns it as bytes
// along with the row count. The job must carry mappings, i.e. was submitted
// with a form template.
func (s *Service) FilledValuesXLSX(ctx context.Context, jobID uuid.UUID) ([]byte, int, error) {
	start := time.Now()

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, 0, err
	}
	if job.TemplateID == nil || len(job.Mappings) == 0 {
		return nil, 0, common.WrapError(common.ErrInvalidInput, "job has no form mappings to export")
	}
	tmpl, err := s.templates.GetByID(ctx, *job.TemplateID)
	if err != nil {
		return nil, 0, err
	}

	f := excelize.NewFile()
	const sheet = "Filled Form"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// drop excelize's default sheet
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Field", "Value", "Confidence", "Source Field", "Overridden"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, m := range job.Mappings {
		label := m.TargetField
		if tf, ok := tmpl.FieldByName(m.TargetField); ok && tf.Label != "" {
			label = tf.Label
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, label)
		write(2, m.EffectiveValue())
		if m.Mapped() && !m.IsOverridden {
			write(3, fmt.Sprintf("%.0f", m.Confidence))
		} else {
			write(3, "")
		}
		write(4, m.SourceField)
		write(5, m.IsOverridden)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 40)
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 28)
	_ = f.SetColWidth(sheet, "E", "E", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.InfoContext(ctx, "export.xlsx.ok",
		"job_id", jobID.String(),
		"template", tmpl.Name,
		"rows", len(job.Mappings),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(job.Mappings), nil
}

// WriteFilledValues writes the workbook to dir (or the service default) and
// returns its path.
func (s *Service) WriteFilledValues(ctx context.Context, jobID uuid.UUID, dir string) (string, int, error) {
	b, rows, err := s.FilledValuesXLSX(ctx, jobID)
	if err != nil {
		return "", 0, err
	}
	if dir == "" {
		dir = s.outputDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, err
	}
	path := filepath.Join(dir, fmt.Sprintf("filled-%s.xlsx", jobID))
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", 0, err
	}
	return path, rows, nil
}

// FilledValues returns the mapping rows a UI needs without rendering a
// workbook.
func (s *Service) FilledValues(ctx context.Context, jobID uuid.UUID) (*entity.FormTemplate, []entity.FieldMapping, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job.TemplateID == nil {
		return nil, nil, common.WrapError(common.ErrInvalidInput, "job has no form template")
	}
	tmpl, err := s.templates.GetByID(ctx, *job.TemplateID)
	if err != nil {
		return nil, nil, err
	}
	return tmpl, job.Mappings, nil
}

// ProfileFilledValues fills an arbitrary template from a client's merged
// profile, so a template can be populated without rerunning a document
// through the pipeline.
func (s *Service) ProfileFilledValues(ctx context.Context, clientID string, templateID uuid.UUID) (*entity.FormTemplate, []entity.FieldMapping, error) {
	tmpl, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.profiles.Profile(ctx, clientID)
	if err != nil {
		return nil, nil, err
	}

	set := entity.NewFieldSet()
	for name, f := range profile.Fields {
		set.Put(entity.ExtractedField{Name: name, Value: f.Value, Confidence: f.Confidence})
	}
	mappings := s.mapper.Map(tmpl, set)

	s.logger.InfoContext(ctx, "export.profile_fill",
		"client_id", clientID,
		"template", tmpl.Name,
		"profile_fields", set.Len(),
		"mapped", len(mappings))
	return tmpl, mappings, nil
}
