package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/mapper"
)

type stubProfiles struct {
	profile *entity.ClientProfile
}

func (s *stubProfiles) Profile(_ context.Context, clientID string) (*entity.ClientProfile, error) {
	if s.profile == nil || s.profile.ClientID != clientID {
		return nil, errors.New("profile not found")
	}
	return s.profile, nil
}

type stubJobs struct {
	job *entity.PipelineJob
}

func (s *stubJobs) Create(context.Context, uuid.UUID, string, *uuid.UUID, int) (*entity.PipelineJob, error) {
	return nil, errors.New("not implemented")
}

func (s *stubJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.PipelineJob, error) {
	if s.job == nil || s.job.ID != id {
		return nil, errors.New("job not found")
	}
	return s.job, nil
}

func (s *stubJobs) SetState(context.Context, uuid.UUID, constants.JobState) error { return nil }
func (s *stubJobs) SetAttempt(context.Context, uuid.UUID, int) error              { return nil }
func (s *stubJobs) SaveClassification(context.Context, uuid.UUID, *entity.DocumentClassification) error {
	return nil
}
func (s *stubJobs) SaveMappings(context.Context, uuid.UUID, []entity.FieldMapping) error { return nil }
func (s *stubJobs) SaveAssessment(context.Context, uuid.UUID, *entity.QualityAssessment) error {
	return nil
}
func (s *stubJobs) MarkDone(context.Context, uuid.UUID) error { return nil }
func (s *stubJobs) MarkFailed(context.Context, uuid.UUID, constants.ErrorCode, string) error {
	return nil
}
func (s *stubJobs) MarkCancelled(context.Context, uuid.UUID) error { return nil }
func (s *stubJobs) ListUnfinished(context.Context) ([]*entity.PipelineJob, error) {
	return nil, nil
}
func (s *stubJobs) ListByClient(context.Context, string, int) ([]*entity.PipelineJob, error) {
	return nil, nil
}

type stubTemplates struct {
	tmpl *entity.FormTemplate
}

func (s *stubTemplates) Create(context.Context, string, []entity.TemplateField) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTemplates) GetByID(_ context.Context, id uuid.UUID) (*entity.FormTemplate, error) {
	if s.tmpl == nil || s.tmpl.ID != id {
		return nil, errors.New("template not found")
	}
	return s.tmpl, nil
}

func (s *stubTemplates) LatestByName(context.Context, string) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}
func (s *stubTemplates) List(context.Context) ([]*entity.FormTemplate, error) { return nil, nil }
func (s *stubTemplates) NewVersion(context.Context, uuid.UUID, []entity.TemplateField) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}

func exportFixture() (*stubJobs, *stubTemplates, uuid.UUID) {
	tmplID := uuid.New()
	jobID := uuid.New()

	tmpl := &entity.FormTemplate{
		ID:      tmplID,
		Name:    "visa-application",
		Version: 1,
		Fields: []entity.TemplateField{
			{Name: "full_name", Label: "Full Name", Required: true, Order: 1},
			{Name: "passport_number", Label: "Passport Number", Required: true, Order: 2},
			{Name: "email", Label: "Email Address", Order: 3},
		},
	}
	job := &entity.PipelineJob{
		ID:         jobID,
		ClientID:   "client-1",
		TemplateID: &tmplID,
		State:      constants.JobStateDone,
		Mappings: []entity.FieldMapping{
			{SourceField: "name", SourceValue: "JANE ROE", TargetField: "full_name", Confidence: 95},
			{
				SourceField: "document number", SourceValue: "AB1234567", TargetField: "passport_number",
				Confidence: 88, IsOverridden: true, OverrideValue: "AB7654321",
			},
			{TargetField: "email", Confidence: 0, RequiredMissing: false},
		},
	}
	return &stubJobs{job: job}, &stubTemplates{tmpl: tmpl}, jobID
}

func newTestService(jobs *stubJobs, templates *stubTemplates, dir string) *Service {
	return NewService(jobs, templates, &stubProfiles{}, mapper.NewMapper(0.6, nil), dir, nil)
}

func TestFilledValuesXLSX(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	svc := newTestService(jobs, templates, t.TempDir())

	b, rows, err := svc.FilledValuesXLSX(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Filled Form"
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Field", cell("A1"))
	assert.Equal(t, "Value", cell("B1"))

	assert.Equal(t, "Full Name", cell("A2"))
	assert.Equal(t, "JANE ROE", cell("B2"))
	assert.Equal(t, "95", cell("C2"))

	assert.Equal(t, "Passport Number", cell("A3"))
	assert.Equal(t, "AB7654321", cell("B3"), "override value wins")
	assert.Equal(t, "", cell("C3"), "overridden rows carry no automatic confidence")
	assert.Equal(t, "TRUE", cell("E3"))

	assert.Equal(t, "Email Address", cell("A4"))
	assert.Equal(t, entity.NoDataAvailable, cell("B4"))
}

func TestFilledValuesXLSX_NoMappings(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	jobs.job.Mappings = nil

	svc := newTestService(jobs, templates, t.TempDir())
	_, _, err := svc.FilledValuesXLSX(context.Background(), jobID)
	require.Error(t, err)
}

func TestFilledValuesXLSX_UnknownJob(t *testing.T) {
	jobs, templates, _ := exportFixture()
	svc := newTestService(jobs, templates, t.TempDir())
	_, _, err := svc.FilledValuesXLSX(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestWriteFilledValues(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	dir := t.TempDir()
	svc := newTestService(jobs, templates, dir)

	path, rows, err := svc.WriteFilledValues(context.Background(), jobID, "")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, filepath.Join(dir, "filled-"+jobID.String()+".xlsx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteFilledValues_ExplicitDirWins(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	fallback := t.TempDir()
	explicit := filepath.Join(t.TempDir(), "nested", "out")

	svc := newTestService(jobs, templates, fallback)
	path, _, err := svc.WriteFilledValues(context.Background(), jobID, explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, filepath.Dir(path))
}

func TestFilledValues(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	svc := newTestService(jobs, templates, t.TempDir())

	tmpl, mappings, err := svc.FilledValues(context.Background(), jobID)
	require.NoError(t, err)
	assert.Equal(t, "visa-application", tmpl.Name)
	assert.Len(t, mappings, 3)
}

func TestProfileFilledValues(t *testing.T) {
	_, templates, _ := exportFixture()
	profiles := &stubProfiles{profile: &entity.ClientProfile{
		ClientID: "client-1",
		Fields: map[string]entity.ProfileField{
			"Full Name":   {Value: "JANE ROE", Confidence: 95},
			"Passport No": {Value: "AB1234567", Confidence: 88},
		},
	}}
	svc := NewService(&stubJobs{}, templates, profiles, mapper.NewMapper(0.6, nil), t.TempDir(), nil)

	tmpl, mappings, err := svc.ProfileFilledValues(context.Background(), "client-1", templates.tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "visa-application", tmpl.Name)

	byTarget := map[string]entity.FieldMapping{}
	for _, m := range mappings {
		byTarget[m.TargetField] = m
	}
	assert.Equal(t, "JANE ROE", byTarget["full_name"].SourceValue)
	assert.Equal(t, "AB1234567", byTarget["passport_number"].SourceValue)
	assert.False(t, byTarget["email"].Mapped(), "profile has no email to draw from")
}

func TestProfileFilledValues_UnknownClient(t *testing.T) {
	_, templates, _ := exportFixture()
	svc := newTestService(&stubJobs{}, templates, t.TempDir())

	_, _, err := svc.ProfileFilledValues(context.Background(), "nobody", templates.tmpl.ID)
	require.Error(t, err)
}

func TestFilledValues_TemplateLessJob(t *testing.T) {
	jobs, templates, jobID := exportFixture()
	jobs.job.TemplateID = nil

	svc := newTestService(jobs, templates, t.TempDir())
	_, _, err := svc.FilledValues(context.Background(), jobID)
	require.Error(t, err)
}
