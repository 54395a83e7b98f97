package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/ingest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type IngestionService struct {
	v1.UnimplementedIngestionServiceServer
	ingestor *ingest.FSIngestor
	logger   *slog.Logger
}

func NewIngestionService(ing *ingest.FSIngestor, logger *slog.Logger) *IngestionService {
	return &IngestionService{ingestor: ing, logger: logger}
}

// IngestFile implements v1.IngestionServiceServer
func (s *IngestionService) IngestFile(ctx context.Context, req *v1.IngestFileRequest) (*v1.IngestResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		s.logger.Error("ingest request missing client_id")
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		s.logger.Error("ingest request missing path", "client_id", clientID)
		return nil, status.Error(codes.InvalidArgument, "path is required")
	}

	s.logger.Info("starting file ingest", "client_id", clientID, "path", path)
	r, err := s.ingestor.IngestPath(ctx, clientID, path)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest: %v", err)
	}
	s.logger.Info("file ingest succeeded", "client_id", clientID, "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	return ingestionResultToProto(r), nil
}

// IngestDirectory implements v1.IngestionServiceServer
func (s *IngestionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		s.logger.Error("ingest directory request missing client_id")
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	root := strings.TrimSpace(req.GetRootPath())
	if root == "" {
		s.logger.Error("ingest directory request missing root_path", "client_id", clientID)
		return nil, status.Error(codes.InvalidArgument, "root_path is required")
	}

	s.logger.Info("starting directory ingest", "client_id", clientID, "root", root, "skip_hidden", req.GetSkipHidden())
	results, stats, err := s.ingestor.IngestDirectory(ctx, clientID, root, req.GetSkipHidden())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "ingest directory: %v", err)
	}

	resp := &v1.IngestDirectoryResponse{
		Scanned:      int32(stats.Scanned),
		Matched:      int32(stats.Matched),
		Succeeded:    int32(stats.Succeeded),
		Failed:       int32(stats.Failed),
		Deduplicated: int32(stats.Deduplicated),
	}
	for _, r := range results {
		resp.Results = append(resp.Results, ingestionResultToProto(r))
	}
	s.logger.Info("directory ingest finished",
		"client_id", clientID, "scanned", stats.Scanned, "succeeded", stats.Succeeded,
		"failed", stats.Failed, "deduplicated", stats.Deduplicated)
	return resp, nil
}

func ingestionResultToProto(r ingest.IngestionResult) *v1.IngestResponse {
	out := &v1.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
	if !r.UploadedAt.IsZero() {
		out.UploadedAt = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return out
}
