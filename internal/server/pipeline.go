package server

import (
	"context"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docufill/docpipe/gen/ent"
	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/export"
	"github.com/docufill/docpipe/internal/mapper"
	"github.com/docufill/docpipe/internal/pipeline"
	"github.com/docufill/docpipe/internal/repository"
)

type PipelineService struct {
	v1.UnimplementedPipelineServiceServer
	pipeline  *pipeline.Service
	jobs      repository.JobRepository
	templates repository.TemplateRepository
	exporter  *export.Service
	logger    *slog.Logger
}

func NewPipelineService(p *pipeline.Service, jobs repository.JobRepository, templates repository.TemplateRepository, exp *export.Service, logger *slog.Logger) *PipelineService {
	return &PipelineService{
		pipeline:  p,
		jobs:      jobs,
		templates: templates,
		exporter:  exp,
		logger:    logger,
	}
}

// SubmitDocument implements v1.PipelineServiceServer
func (s *PipelineService) SubmitDocument(ctx context.Context, req *v1.SubmitDocumentRequest) (*v1.JobStatusResponse, error) {
	documentID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}
	var templateID *uuid.UUID
	if tid := strings.TrimSpace(req.GetTemplateId()); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			s.logger.Error("invalid template_id format for submit", "template_id", tid, "error", err)
			return nil, status.Error(codes.InvalidArgument, "template_id must be a UUID")
		}
		if _, err := s.templates.GetByID(ctx, id); err != nil {
			if ent.IsNotFound(err) {
				return nil, status.Error(codes.NotFound, "template not found")
			}
			return nil, status.Errorf(codes.Internal, "load template: %v", err)
		}
		templateID = &id
	}

	job, err := s.pipeline.Submit(ctx, documentID, templateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "document not found")
		}
		s.logger.Error("submit failed", "document_id", documentID, "error", err)
		return nil, status.Errorf(codes.Internal, "submit: %v", err)
	}
	s.logger.Info("document submitted", "job_id", job.ID, "document_id", documentID)
	return jobToProto(job), nil
}

// GetJobStatus implements v1.PipelineServiceServer
func (s *PipelineService) GetJobStatus(ctx context.Context, req *v1.GetJobStatusRequest) (*v1.JobStatusResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.pipeline.Status(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.Internal, "job status: %v", err)
	}
	return jobToProto(job), nil
}

// WatchJob implements v1.PipelineServiceServer. The stream delivers one
// snapshot immediately, then one per state change, and ends once the job
// is terminal.
func (s *PipelineService) WatchJob(req *v1.GetJobStatusRequest, stream v1.PipelineService_WatchJobServer) error {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return err
	}
	ctx := stream.Context()

	job, updates, stop, err := s.pipeline.Watch(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return status.Error(codes.NotFound, "job not found")
		}
		return status.Errorf(codes.Internal, "watch job: %v", err)
	}
	defer stop()

	if err := stream.Send(jobToProto(job)); err != nil {
		return err
	}
	if job.State.Terminal() {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			if err := stream.Send(jobToProto(snap)); err != nil {
				return err
			}
			if snap.State.Terminal() {
				return nil
			}
		}
	}
}

// CancelJob implements v1.PipelineServiceServer
func (s *PipelineService) CancelJob(ctx context.Context, req *v1.CancelJobRequest) (*v1.CancelJobResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	if err := s.pipeline.Cancel(ctx, jobID); err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.Internal, "cancel job: %v", err)
	}
	s.logger.Info("job cancel requested", "job_id", jobID)
	return &v1.CancelJobResponse{Cancelled: true}, nil
}

// ListJobs implements v1.PipelineServiceServer
func (s *PipelineService) ListJobs(ctx context.Context, req *v1.ListJobsRequest) (*v1.ListJobsResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	jobs, err := s.pipeline.ListByClient(ctx, clientID, int(req.GetLimit()))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list jobs: %v", err)
	}
	resp := &v1.ListJobsResponse{}
	for _, j := range jobs {
		resp.Jobs = append(resp.Jobs, jobToProto(j))
	}
	return resp, nil
}

// OverrideMapping implements v1.PipelineServiceServer
func (s *PipelineService) OverrideMapping(ctx context.Context, req *v1.OverrideMappingRequest) (*v1.JobStatusResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(req.GetTargetField())
	if target == "" {
		return nil, status.Error(codes.InvalidArgument, "target_field is required")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	if len(job.Mappings) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "job has no field mappings")
	}
	if !mapper.SetOverride(job.Mappings, target, req.GetValue()) {
		return nil, status.Errorf(codes.NotFound, "mapping for target field %q not found", target)
	}
	if err := s.jobs.SaveMappings(ctx, jobID, job.Mappings); err != nil {
		return nil, status.Errorf(codes.Internal, "save mappings: %v", err)
	}
	s.logger.Info("mapping overridden", "job_id", jobID, "target_field", target)
	return jobToProto(job), nil
}

// ResetMappingOverride implements v1.PipelineServiceServer
func (s *PipelineService) ResetMappingOverride(ctx context.Context, req *v1.ResetMappingOverrideRequest) (*v1.JobStatusResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(req.GetTargetField())
	if target == "" {
		return nil, status.Error(codes.InvalidArgument, "target_field is required")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "job not found")
		}
		return nil, status.Errorf(codes.Internal, "load job: %v", err)
	}
	if len(job.Mappings) == 0 {
		return nil, status.Error(codes.FailedPrecondition, "job has no field mappings")
	}

	required := false
	if job.TemplateID != nil {
		tmpl, err := s.templates.GetByID(ctx, *job.TemplateID)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "load template: %v", err)
		}
		if f, ok := tmpl.FieldByName(target); ok {
			required = f.Required
		}
	}
	if !mapper.ResetOverride(job.Mappings, target, required) {
		return nil, status.Errorf(codes.NotFound, "mapping for target field %q not found", target)
	}
	if err := s.jobs.SaveMappings(ctx, jobID, job.Mappings); err != nil {
		return nil, status.Errorf(codes.Internal, "save mappings: %v", err)
	}
	s.logger.Info("mapping override reset", "job_id", jobID, "target_field", target)
	return jobToProto(job), nil
}

// GetFilledValues implements v1.PipelineServiceServer. With a job_id the
// values come from that job's mappings; with client_id and template_id the
// template is filled from the client's merged profile instead.
func (s *PipelineService) GetFilledValues(ctx context.Context, req *v1.GetFilledValuesRequest) (*v1.GetFilledValuesResponse, error) {
	var (
		tmpl     *entity.FormTemplate
		mappings []entity.FieldMapping
	)
	switch {
	case strings.TrimSpace(req.GetJobId()) != "":
		jobID, err := parseUUIDField(req.GetJobId(), "job_id")
		if err != nil {
			return nil, err
		}
		tmpl, mappings, err = s.exporter.FilledValues(ctx, jobID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, status.Error(codes.NotFound, "job not found")
			}
			return nil, status.Errorf(codes.FailedPrecondition, "filled values: %v", err)
		}
	case strings.TrimSpace(req.GetClientId()) != "":
		templateID, err := parseUUIDField(req.GetTemplateId(), "template_id")
		if err != nil {
			return nil, err
		}
		tmpl, mappings, err = s.exporter.ProfileFilledValues(ctx, strings.TrimSpace(req.GetClientId()), templateID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, status.Error(codes.NotFound, "template or profile not found")
			}
			return nil, status.Errorf(codes.FailedPrecondition, "profile filled values: %v", err)
		}
	default:
		return nil, status.Error(codes.InvalidArgument, "job_id or client_id with template_id is required")
	}

	resp := &v1.GetFilledValuesResponse{
		TemplateId:   tmpl.ID.String(),
		TemplateName: tmpl.Name,
	}
	for _, m := range mappings {
		label := m.TargetField
		if f, ok := tmpl.FieldByName(m.TargetField); ok && f.Label != "" {
			label = f.Label
		}
		resp.Values = append(resp.Values, &v1.FilledValue{
			TargetField:     m.TargetField,
			Label:           label,
			Value:           m.EffectiveValue(),
			Confidence:      m.Confidence,
			IsOverridden:    m.IsOverridden,
			RequiredMissing: m.RequiredMissing,
		})
	}
	return resp, nil
}

func parseUUIDField(raw, name string) (uuid.UUID, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return id, nil
}
