package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docufill/docpipe/gen/ent"
	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/export"
)

type ExportService struct {
	v1.UnimplementedExportServiceServer
	exporter *export.Service
	logger   *slog.Logger
}

func NewExportService(exp *export.Service, logger *slog.Logger) *ExportService {
	return &ExportService{exporter: exp, logger: logger}
}

// ExportFilledValues implements v1.ExportServiceServer
func (s *ExportService) ExportFilledValues(ctx context.Context, req *v1.ExportFilledValuesRequest) (*v1.ExportFilledValuesResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}

	path, rows, err := s.exporter.WriteFilledValues(ctx, jobID, strings.TrimSpace(req.GetOutputDir()))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.FailedPrecondition, "export filled values: %v", err)
	}
	s.logger.Info("filled values exported", "job_id", jobID, "path", path, "rows", rows)
	return &v1.ExportFilledValuesResponse{FilePath: path, Rows: int32(rows)}, nil
}
