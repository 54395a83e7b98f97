package merge

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/internal/entity"
)

// memStore is an in-memory ProfileStore with the same lazy-create and
// version-bump behavior as the database-backed one.
type memStore struct {
	mu       sync.Mutex
	profiles map[string]*entity.ClientProfile
}

func newMemStore() *memStore {
	return &memStore{profiles: make(map[string]*entity.ClientProfile)}
}

func (s *memStore) GetProfile(_ context.Context, clientID string) (*entity.ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[clientID]; ok {
		return cloneProfile(p), nil
	}
	return &entity.ClientProfile{
		ClientID: clientID,
		Fields:   make(map[string]entity.ProfileField),
	}, nil
}

func (s *memStore) UpdateProfile(_ context.Context, clientID string, fn func(p *entity.ClientProfile) error) (*entity.ClientProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[clientID]
	if !ok {
		p = &entity.ClientProfile{
			ID:        uuid.New(),
			ClientID:  clientID,
			Fields:    make(map[string]entity.ProfileField),
			Version:   0,
			CreatedAt: time.Now(),
		}
	}
	work := cloneProfile(p)
	if err := fn(work); err != nil {
		return nil, err
	}
	work.Version++
	work.UpdatedAt = time.Now()
	s.profiles[clientID] = work
	return cloneProfile(work), nil
}

func cloneProfile(p *entity.ClientProfile) *entity.ClientProfile {
	out := *p
	out.Fields = make(map[string]entity.ProfileField, len(p.Fields))
	for k, v := range p.Fields {
		srcs := make([]entity.FieldSourceRef, len(v.FieldSources))
		copy(srcs, v.FieldSources)
		v.FieldSources = srcs
		out.Fields[k] = v
	}
	return &out
}

func fieldSet(fields ...entity.ExtractedField) *entity.FieldSet {
	fs := entity.NewFieldSet()
	for _, f := range fields {
		fs.Put(f)
	}
	return fs
}

func TestMerge_CreatesProfileLazily(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)
	docID := uuid.New()

	res, err := e.Merge(ctx, "client-1", docID, fieldSet(
		entity.ExtractedField{Name: "full_name", Value: "Jane Roe", Confidence: 90},
	), time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{"full_name"}, res.Updated)
	assert.Equal(t, 1, res.Profile.Version)
	f := res.Profile.Fields["full_name"]
	assert.Equal(t, "Jane Roe", f.Value)
	assert.Equal(t, 90.0, f.Confidence)
	require.Len(t, f.FieldSources, 1)
	assert.Equal(t, docID, f.FieldSources[0].DocumentID)
}

func TestMerge_LaterDocumentOverwrites(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	_, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
		entity.ExtractedField{Name: "dob", Value: "1990-04-12", Confidence: 60},
	), time.Now())
	require.NoError(t, err)

	res, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
		entity.ExtractedField{Name: "dob", Value: "1990-04-21", Confidence: 95},
	), time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{"dob"}, res.Updated)
	assert.Equal(t, "1990-04-21", res.Profile.Fields["dob"].Value)
	assert.Equal(t, 95.0, res.Profile.Fields["dob"].Confidence)
}

func TestMerge_LowerConfidenceStillOverwrites(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	_, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
		entity.ExtractedField{Name: "nationality", Value: "UAE", Confidence: 90},
	), time.Now())
	require.NoError(t, err)

	res, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
		entity.ExtractedField{Name: "nationality", Value: "FRA", Confidence: 60},
	), time.Now())
	require.NoError(t, err)

	// The newest document wins regardless of confidence; only a manual
	// edit locks a field.
	assert.Equal(t, []string{"nationality"}, res.Updated)
	assert.Equal(t, "FRA", res.Profile.Fields["nationality"].Value)
	assert.Equal(t, 60.0, res.Profile.Fields["nationality"].Confidence)
	assert.Len(t, res.Profile.Fields["nationality"].FieldSources, 2)
}

func TestMerge_SameDocumentRerunKeepsOneSource(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)
	docID := uuid.New()

	_, err := e.Merge(ctx, "c", docID, fieldSet(
		entity.ExtractedField{Name: "email", Value: "a@example.com", Confidence: 80},
	), time.Now())
	require.NoError(t, err)

	// A resumed job repeats its merge; the source history must not grow.
	res, err := e.Merge(ctx, "c", docID, fieldSet(
		entity.ExtractedField{Name: "email", Value: "a@example.com", Confidence: 80},
	), time.Now())
	require.NoError(t, err)

	f := res.Profile.Fields["email"]
	assert.Equal(t, "a@example.com", f.Value)
	require.Len(t, f.FieldSources, 1)
	assert.Equal(t, docID, f.FieldSources[0].DocumentID)
}

func TestMerge_ManualEditNeverReplaced(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	_, err := e.SetField(ctx, "c", "full_name", "Corrected Name")
	require.NoError(t, err)

	res, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
		entity.ExtractedField{Name: "full_name", Value: "OCR Name", Confidence: 100},
	), time.Now())
	require.NoError(t, err)

	assert.Equal(t, []string{"full_name"}, res.Skipped)
	assert.Empty(t, res.Updated)
	f := res.Profile.Fields["full_name"]
	assert.Equal(t, "Corrected Name", f.Value)
	assert.True(t, f.ManuallyEdited)
	// Source ref is appended even for skipped fields.
	assert.Len(t, f.FieldSources, 1)
}

func TestMerge_EmptyFieldSetReadsProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	e := NewEngine(store, nil)

	_, err := e.SetField(ctx, "c", "email", "kept@example.com")
	require.NoError(t, err)

	res, err := e.Merge(ctx, "c", uuid.New(), entity.NewFieldSet(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, res.Updated)
	assert.Equal(t, "kept@example.com", res.Profile.Fields["email"].Value)
}

func TestMerge_VersionBumpsPerMerge(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	for i := 1; i <= 3; i++ {
		res, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
			entity.ExtractedField{Name: "email", Value: "a@b.c", Confidence: float64(50 + i)},
		), time.Now())
		require.NoError(t, err)
		assert.Equal(t, i, res.Profile.Version)
	}
}

func TestMerge_ConcurrentSameClient(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := e.Merge(ctx, "c", uuid.New(), fieldSet(
				entity.ExtractedField{Name: "counter", Value: "v", Confidence: float64(n)},
			), time.Now())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	p, err := e.Profile(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 20, p.Version)
	assert.Len(t, p.Fields["counter"].FieldSources, 20)
	assert.Equal(t, "v", p.Fields["counter"].Value)
}

func TestSetField_MarksManuallyEdited(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	p, err := e.SetField(ctx, "c", "phone", "+41 79 000 00 00")
	require.NoError(t, err)

	f := p.Fields["phone"]
	assert.Equal(t, "+41 79 000 00 00", f.Value)
	assert.Equal(t, 100.0, f.Confidence)
	assert.True(t, f.ManuallyEdited)
}

func TestClearManualEdit_UnlocksField(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	_, err := e.SetField(ctx, "c", "phone", "+41 79 000 00 00")
	require.NoError(t, err)
	p, err := e.ClearManualEdit(ctx, "c", "phone")
	require.NoError(t, err)

	f := p.Fields["phone"]
	assert.False(t, f.ManuallyEdited)
	// Value stays; only the lock is released, so the next merge may
	// overwrite it again.
	assert.Equal(t, "+41 79 000 00 00", f.Value)
}

func TestClearManualEdit_UnknownField(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(newMemStore(), nil)

	_, err := e.ClearManualEdit(ctx, "c", "nope")
	assert.Error(t, err)
}

func TestGroupFields(t *testing.T) {
	p := &entity.ClientProfile{Fields: map[string]entity.ProfileField{
		"full_name":       {},
		"email":           {},
		"date_of_birth":   {},
		"passport_number": {},
		"remarks":         {},
	}}

	groups := SortedGroupNames(GroupFields(p))
	assert.Contains(t, groups[entity.GroupIdentity], "full_name")
	assert.Contains(t, groups[entity.GroupContact], "email")
	assert.Contains(t, groups[entity.GroupDates], "date_of_birth")
	assert.Contains(t, groups[entity.GroupNumbers], "passport_number")
	assert.Contains(t, groups[entity.GroupOther], "remarks")
}
