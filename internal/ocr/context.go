package ocr

import "context"

type ctxKey int

const (
	ctxKeyDocumentID ctxKey = iota
	ctxKeyContentHash
)

// WithDocumentID tags the context so OCR log events can name the document
// without the extractor depending on repository types.
func WithDocumentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyDocumentID, id)
}

// DocumentIDFromCtx returns the document ID set by WithDocumentID.
func DocumentIDFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyDocumentID).(string)
	return v, ok
}

// WithContentHash carries the document's content hash so rendered pages
// can be cached under a stable key.
func WithContentHash(ctx context.Context, hash string) context.Context {
	return context.WithValue(ctx, ctxKeyContentHash, hash)
}

// ContentHashFromCtx returns the hash set by WithContentHash.
func ContentHashFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyContentHash).(string)
	return v, ok
}
