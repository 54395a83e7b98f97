package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/classify"
	"github.com/docufill/docpipe/internal/common"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/extract"
	"github.com/docufill/docpipe/internal/mapper"
	"github.com/docufill/docpipe/internal/merge"
	"github.com/docufill/docpipe/internal/ocr"
	"github.com/docufill/docpipe/internal/qa"
	"github.com/docufill/docpipe/internal/resilience"
)

const passportLayer = `REPUBLIC OF UTOPIA
PASSPORT
Passport No: AB1234567
Full Name: ROE, JANE
Date of Birth: 12/04/1990
Nationality: Utopian
Date of Issue: 01/02/2020
Date of Expiry: 01/02/2030
`

type textLayerRunner struct{ text string }

func (r textLayerRunner) Run(context.Context, string, ...string) ([]byte, []byte, error) {
	return []byte(r.text), nil, nil
}

type memJobs struct {
	mu     sync.Mutex
	jobs   map[uuid.UUID]*entity.PipelineJob
	states []constants.JobState

	// failClassifySaves makes that many SaveClassification calls fail with
	// the given error before succeeding.
	failClassifySaves int
	classifyErr       error
}

func newMemJobs() *memJobs {
	return &memJobs{jobs: make(map[uuid.UUID]*entity.PipelineJob)}
}

func (m *memJobs) add(job *entity.PipelineJob) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.ID] = job
}

func (m *memJobs) get(id uuid.UUID) *entity.PipelineJob {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.jobs[id]
}

func (m *memJobs) stateLog() []constants.JobState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]constants.JobState(nil), m.states...)
}

func (m *memJobs) Create(_ context.Context, documentID uuid.UUID, clientID string, templateID *uuid.UUID, maxAttempts int) (*entity.PipelineJob, error) {
	job := &entity.PipelineJob{
		ID:          uuid.New(),
		DocumentID:  documentID,
		ClientID:    clientID,
		TemplateID:  templateID,
		State:       constants.JobStateQueued,
		MaxAttempts: maxAttempts,
		StartedAt:   time.Now(),
	}
	m.add(job)
	return job, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.PipelineJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	cp := *job
	return &cp, nil
}

func (m *memJobs) SetState(_ context.Context, id uuid.UUID, state constants.JobState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].State = state
	m.states = append(m.states, state)
	return nil
}

func (m *memJobs) SetAttempt(_ context.Context, id uuid.UUID, attempt int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].Attempt = attempt
	return nil
}

func (m *memJobs) SaveClassification(_ context.Context, id uuid.UUID, c *entity.DocumentClassification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failClassifySaves > 0 {
		m.failClassifySaves--
		return m.classifyErr
	}
	m.jobs[id].Classification = c
	return nil
}

func (m *memJobs) SaveMappings(_ context.Context, id uuid.UUID, mappings []entity.FieldMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].Mappings = mappings
	return nil
}

func (m *memJobs) SaveAssessment(_ context.Context, id uuid.UUID, a *entity.QualityAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].LastAssessment = a
	return nil
}

func (m *memJobs) MarkDone(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.jobs[id].State = constants.JobStateDone
	m.jobs[id].FinishedAt = &now
	return nil
}

func (m *memJobs) MarkFailed(_ context.Context, id uuid.UUID, code constants.ErrorCode, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.jobs[id].State = constants.JobStateFailed
	m.jobs[id].ErrorCode = code
	m.jobs[id].ErrorMessage = message
	m.jobs[id].FinishedAt = &now
	return nil
}

func (m *memJobs) MarkCancelled(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.jobs[id].State = constants.JobStateCancelled
	m.jobs[id].ErrorCode = constants.ErrCodeCancelled
	m.jobs[id].FinishedAt = &now
	return nil
}

func (m *memJobs) ListUnfinished(context.Context) ([]*entity.PipelineJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.PipelineJob
	for _, j := range m.jobs {
		if !j.State.Terminal() {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobs) ListByClient(context.Context, string, int) ([]*entity.PipelineJob, error) {
	return nil, nil
}

type memOrcDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func (m *memOrcDocs) Create(_ context.Context, d *entity.Document) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	cp.ID = uuid.New()
	m.docs[cp.ID] = &cp
	return &cp, nil
}

func (m *memOrcDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	return d, nil
}

func (m *memOrcDocs) FindByHash(context.Context, string, string) (*entity.Document, error) {
	return nil, nil
}

func (m *memOrcDocs) ListByClient(context.Context, string) ([]*entity.Document, error) {
	return nil, nil
}

type memResults struct {
	mu   sync.Mutex
	rows []*entity.ExtractionResult
}

func (m *memResults) Create(_ context.Context, res *entity.ExtractionResult) (*entity.ExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *res
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	m.rows = append(m.rows, &cp)
	return &cp, nil
}

func (m *memResults) LatestForJob(_ context.Context, jobID uuid.UUID) (*entity.ExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].JobID == jobID {
			return m.rows[i], nil
		}
	}
	return nil, errors.New("no result")
}

func (m *memResults) LatestForDocument(_ context.Context, documentID uuid.UUID) (*entity.ExtractionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].DocumentID == documentID {
			return m.rows[i], nil
		}
	}
	return nil, errors.New("no result")
}

type memOrcTemplates struct {
	tmpl *entity.FormTemplate
}

func (m *memOrcTemplates) Create(context.Context, string, []entity.TemplateField) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}

func (m *memOrcTemplates) GetByID(_ context.Context, id uuid.UUID) (*entity.FormTemplate, error) {
	if m.tmpl == nil || m.tmpl.ID != id {
		return nil, errors.New("template not found")
	}
	return m.tmpl, nil
}

func (m *memOrcTemplates) LatestByName(context.Context, string) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}

func (m *memOrcTemplates) List(context.Context) ([]*entity.FormTemplate, error) { return nil, nil }

func (m *memOrcTemplates) NewVersion(context.Context, uuid.UUID, []entity.TemplateField) (*entity.FormTemplate, error) {
	return nil, errors.New("not implemented")
}

type memProfiles struct {
	mu       sync.Mutex
	profiles map[string]*entity.ClientProfile
}

func (m *memProfiles) UpdateProfile(_ context.Context, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[clientID]
	if !ok {
		p = &entity.ClientProfile{
			ID:       uuid.New(),
			ClientID: clientID,
			Fields:   make(map[string]entity.ProfileField),
		}
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	p.Version++
	m.profiles[clientID] = p
	return p, nil
}

func (m *memProfiles) GetProfile(_ context.Context, clientID string) (*entity.ClientProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[clientID]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

type orcFixture struct {
	orch     *Orchestrator
	jobs     *memJobs
	docs     *memOrcDocs
	results  *memResults
	tmpls    *memOrcTemplates
	profiles *memProfiles
}

func newOrcFixture(t *testing.T) *orcFixture {
	t.Helper()
	jobs := newMemJobs()
	docs := &memOrcDocs{docs: make(map[uuid.UUID]*entity.Document)}
	results := &memResults{}
	tmpls := &memOrcTemplates{}
	profiles := &memProfiles{profiles: make(map[string]*entity.ClientProfile)}

	extractor := ocr.NewExtractor(ocr.Config{}, nil).WithRunner(textLayerRunner{text: passportLayer})

	orch := NewOrchestrator(Deps{
		Jobs:       jobs,
		Docs:       docs,
		Results:    results,
		Templates:  tmpls,
		OCR:        extractor,
		Classifier: classify.New(nil),
		Extractor:  extract.NewExtractor(nil, nil),
		Mapper:     mapper.NewMapper(0.6, nil),
		Assessor:   qa.NewAssessor(nil),
		Merger:     merge.NewEngine(profiles, nil),
		Retry: resilience.RetryConfig{
			InitialBackoff: time.Millisecond,
			MaxBackoff:     2 * time.Millisecond,
			Multiplier:     2,
		},
	})
	return &orcFixture{orch: orch, jobs: jobs, docs: docs, results: results, tmpls: tmpls, profiles: profiles}
}

func (f *orcFixture) newJob(t *testing.T, templateID *uuid.UUID, maxAttempts int) *entity.PipelineJob {
	t.Helper()
	doc, err := f.docs.Create(context.Background(), &entity.Document{
		ClientID:    "client-1",
		SourcePath:  "passport.pdf",
		FileExt:     "pdf",
		Format:      constants.PDF,
		ContentHash: "deadbeef",
	})
	require.NoError(t, err)
	job, err := f.jobs.Create(context.Background(), doc.ID, "client-1", templateID, maxAttempts)
	require.NoError(t, err)
	return job
}

func TestProcessJob_ProfileOnlyPath(t *testing.T) {
	f := newOrcFixture(t)
	job := f.newJob(t, nil, 3)

	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateDone, stored.State)
	assert.NotNil(t, stored.FinishedAt)
	assert.Equal(t, []constants.JobState{
		constants.JobStateClassifying,
		constants.JobStateExtracting,
		constants.JobStateMerging,
	}, f.jobs.stateLog(), "template-less jobs skip mapping and qa")

	require.NotNil(t, stored.Classification)
	assert.Equal(t, string(constants.Passport), stored.Classification.Category)

	require.Len(t, f.results.rows, 1)
	res := f.results.rows[0]
	assert.Equal(t, 1, res.Attempt)
	assert.Empty(t, res.ModelName, "rule-only run records no model")
	field, ok := res.Fields.Get("Passport No")
	require.True(t, ok)
	assert.Equal(t, "AB1234567", field.Value)

	profile, err := f.profiles.GetProfile(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Contains(t, profile.Fields, "Passport No")
	assert.Contains(t, profile.Fields, "Full Name")
}

func TestProcessJob_TemplatePathRunsMappingAndQA(t *testing.T) {
	f := newOrcFixture(t)
	tmplID := uuid.New()
	f.tmpls.tmpl = &entity.FormTemplate{
		ID:   tmplID,
		Name: "id-intake",
		Fields: []entity.TemplateField{
			{Name: "full_name", Label: "Full Name", Required: true, Type: entity.FieldTypeText, Order: 1},
			{Name: "passport_number", Label: "Passport Number", Required: true, Type: entity.FieldTypeText, Order: 2},
			{Name: "date_of_birth", Label: "Date of Birth", Required: true, Type: entity.FieldTypeDate, Order: 3},
		},
	}
	job := f.newJob(t, &tmplID, 3)

	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateDone, stored.State)
	assert.Equal(t, []constants.JobState{
		constants.JobStateClassifying,
		constants.JobStateExtracting,
		constants.JobStateMapping,
		constants.JobStateQA,
		constants.JobStateMerging,
	}, f.jobs.stateLog())

	require.Len(t, stored.Mappings, 3)
	byTarget := map[string]entity.FieldMapping{}
	for _, m := range stored.Mappings {
		byTarget[m.TargetField] = m
	}
	assert.Equal(t, "AB1234567", byTarget["passport_number"].SourceValue)
	assert.Equal(t, "ROE, JANE", byTarget["full_name"].SourceValue)

	require.NotNil(t, stored.LastAssessment)
	assert.True(t, stored.LastAssessment.IsValid)
}

func TestProcessJob_ValidationFailureExhaustsAttempts(t *testing.T) {
	f := newOrcFixture(t)
	tmplID := uuid.New()
	f.tmpls.tmpl = &entity.FormTemplate{
		ID:   tmplID,
		Name: "contact-intake",
		Fields: []entity.TemplateField{
			{Name: "email", Label: "Email Address", Required: true, Type: entity.FieldTypeText, Order: 1},
		},
	}
	job := f.newJob(t, &tmplID, 2)

	err := f.orch.ProcessJob(context.Background(), job.ID)
	var vErr *common.ValidationError
	require.ErrorAs(t, err, &vErr)

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateFailed, stored.State)
	assert.Equal(t, constants.ErrCodeValidation, stored.ErrorCode)
	assert.NotEmpty(t, stored.ErrorMessage)
	assert.Equal(t, 2, stored.Attempt)
	assert.Contains(t, f.jobs.stateLog(), constants.JobStateErrorRecovery)
}

func TestProcessJob_TransientFailureRetries(t *testing.T) {
	f := newOrcFixture(t)
	f.jobs.failClassifySaves = 1
	f.jobs.classifyErr = common.NewTransientServiceError("db", errors.New("connection reset"))
	job := f.newJob(t, nil, 3)

	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateDone, stored.State)
	assert.Equal(t, 1, stored.Attempt, "one recovery pass recorded")
	assert.Contains(t, f.jobs.stateLog(), constants.JobStateErrorRecovery)
}

func TestProcessJob_RerunAfterCrashKeepsSingleSource(t *testing.T) {
	f := newOrcFixture(t)
	job := f.newJob(t, nil, 3)
	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))

	// A crash after the merge commit but before the done mark leaves the
	// job non-terminal; resume reruns the whole pipeline.
	stored := f.jobs.get(job.ID)
	stored.State = constants.JobStateMerging
	stored.FinishedAt = nil
	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))

	assert.Equal(t, constants.JobStateDone, f.jobs.get(job.ID).State)
	profile, err := f.profiles.GetProfile(context.Background(), "client-1")
	require.NoError(t, err)
	require.NotEmpty(t, profile.Fields)
	for name, field := range profile.Fields {
		assert.Len(t, field.FieldSources, 1, "field %s grew duplicate sources", name)
	}
}

func TestProcessJob_UnreadableInputFailsWithoutRetry(t *testing.T) {
	f := newOrcFixture(t)
	doc, err := f.docs.Create(context.Background(), &entity.Document{
		ClientID:    "client-1",
		SourcePath:  "broken.xyz",
		FileExt:     "xyz",
		ContentHash: "deadbeef",
	})
	require.NoError(t, err)
	job, err := f.jobs.Create(context.Background(), doc.ID, "client-1", nil, 3)
	require.NoError(t, err)

	err = f.orch.ProcessJob(context.Background(), job.ID)
	var exErr *common.ExtractionError
	require.ErrorAs(t, err, &exErr)

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateFailed, stored.State)
	assert.Equal(t, constants.ErrCodeExtraction, stored.ErrorCode)
	assert.Equal(t, 1, stored.Attempt, "fatal errors burn a single attempt")
	assert.NotContains(t, f.jobs.stateLog(), constants.JobStateErrorRecovery)
}

func TestProcessJob_AlreadyCancelled(t *testing.T) {
	f := newOrcFixture(t)
	job := f.newJob(t, nil, 3)
	require.NoError(t, f.jobs.MarkCancelled(context.Background(), job.ID))

	require.NoError(t, f.orch.ProcessJob(context.Background(), job.ID))
	assert.Empty(t, f.jobs.stateLog(), "terminal jobs run no stages")
}

func TestCancel_QueuedJob(t *testing.T) {
	f := newOrcFixture(t)
	job := f.newJob(t, nil, 3)

	require.NoError(t, f.orch.Cancel(context.Background(), job.ID))

	stored := f.jobs.get(job.ID)
	assert.Equal(t, constants.JobStateCancelled, stored.State)
	assert.Equal(t, constants.ErrCodeCancelled, stored.ErrorCode)
}

func TestCancel_TerminalJobIsNoop(t *testing.T) {
	f := newOrcFixture(t)
	job := f.newJob(t, nil, 3)
	require.NoError(t, f.jobs.MarkDone(context.Background(), job.ID))

	require.NoError(t, f.orch.Cancel(context.Background(), job.ID))
	assert.Equal(t, constants.JobStateDone, f.jobs.get(job.ID).State)
}
