package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docufill/docpipe/constants"
	"github.com/docufill/docpipe/internal/entity"
)

type memDocs struct {
	docs []*entity.Document
}

func (m *memDocs) Create(_ context.Context, d *entity.Document) (*entity.Document, error) {
	cp := *d
	cp.ID = uuid.New()
	cp.UploadedAt = time.Now().UTC()
	m.docs = append(m.docs, &cp)
	return &cp, nil
}

func (m *memDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, os.ErrNotExist
}

func (m *memDocs) FindByHash(_ context.Context, clientID, contentHash string) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.ClientID == clientID && d.ContentHash == contentHash {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDocs) ListByClient(_ context.Context, clientID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.ClientID == clientID {
			out = append(out, d)
		}
	}
	return out, nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestIngestPath_StoresDocument(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "passport.pdf", "%PDF-1.4 fake body")

	docs := &memDocs{}
	ing := NewFSIngestor(docs, nil)

	res, err := ing.IngestPath(context.Background(), "client-1", p)
	require.NoError(t, err)

	assert.False(t, res.Deduplicated)
	assert.NotEmpty(t, res.DocumentID)
	assert.Len(t, res.HashHex, 64)
	assert.Equal(t, "pdf", res.FileExt)
	require.Len(t, docs.docs, 1)
	assert.Equal(t, constants.PDF, docs.docs[0].Format)
	assert.Equal(t, "client-1", docs.docs[0].ClientID)
}

func TestIngestPath_DeduplicatesSameBytes(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.pdf", "same bytes")
	p2 := writeFile(t, dir, "b.pdf", "same bytes")

	docs := &memDocs{}
	ing := NewFSIngestor(docs, nil)

	first, err := ing.IngestPath(context.Background(), "client-1", p1)
	require.NoError(t, err)
	second, err := ing.IngestPath(context.Background(), "client-1", p2)
	require.NoError(t, err)

	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
	assert.Equal(t, first.HashHex, second.HashHex)
	assert.Len(t, docs.docs, 1)
}

func TestIngestPath_SameBytesDifferentClients(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.pdf", "same bytes")

	docs := &memDocs{}
	ing := NewFSIngestor(docs, nil)

	_, err := ing.IngestPath(context.Background(), "client-1", p)
	require.NoError(t, err)
	res, err := ing.IngestPath(context.Background(), "client-2", p)
	require.NoError(t, err)

	assert.False(t, res.Deduplicated, "dedup is scoped per client")
	assert.Len(t, docs.docs, 2)
}

func TestIngestPath_RejectsDisallowedExtension(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "notes.txt", "plain text")

	ing := NewFSIngestor(&memDocs{}, nil)
	_, err := ing.IngestPath(context.Background(), "client-1", p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestIngestPath_MissingFile(t *testing.T) {
	ing := NewFSIngestor(&memDocs{}, nil)
	_, err := ing.IngestPath(context.Background(), "client-1", filepath.Join(t.TempDir(), "gone.pdf"))
	require.Error(t, err)
}

func TestIngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "passport.pdf", "pdf one")
	writeFile(t, dir, "id.jpg", "jpeg body")
	writeFile(t, dir, "readme.md", "ignored extension")
	writeFile(t, dir, ".hidden.pdf", "hidden file")

	sub := filepath.Join(dir, ".cache")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "cached.pdf", "inside hidden dir")

	docs := &memDocs{}
	ing := NewFSIngestor(docs, nil)

	results, stats, err := ing.IngestDirectory(context.Background(), "client-1", dir, true)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Matched)
	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, 0, stats.Deduplicated)
	assert.Len(t, results, 2)
	assert.Len(t, docs.docs, 2)
}

func TestIngestDirectory_HiddenIncludedWhenNotSkipping(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.pdf", "hidden file")

	docs := &memDocs{}
	ing := NewFSIngestor(docs, nil)

	_, stats, err := ing.IngestDirectory(context.Background(), "client-1", dir, false)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Succeeded)
}

func TestIngestDirectory_DedupCounted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pdf", "same bytes")
	writeFile(t, dir, "b.pdf", "same bytes")

	ing := NewFSIngestor(&memDocs{}, nil)
	_, stats, err := ing.IngestDirectory(context.Background(), "client-1", dir, true)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Succeeded)
	assert.Equal(t, 1, stats.Deduplicated)
}

func TestIngestDirectory_EmptyRoot(t *testing.T) {
	ing := NewFSIngestor(&memDocs{}, nil)
	_, _, err := ing.IngestDirectory(context.Background(), "client-1", "   ", true)
	require.Error(t, err)
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt("pdf"))
	assert.True(t, AllowedExt(".HEIC"))
	assert.False(t, AllowedExt("txt"))
	assert.False(t, AllowedExt(""))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/tmp/.cache"))
	assert.True(t, IsHidden(".env"))
	assert.False(t, IsHidden("/tmp/docs/passport.pdf"))
}
