package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docufill/docpipe/gen/ent"
	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/repository"
)

type TemplateService struct {
	v1.UnimplementedTemplateServiceServer
	templates repository.TemplateRepository
	logger    *slog.Logger
}

func NewTemplateService(templates repository.TemplateRepository, logger *slog.Logger) *TemplateService {
	return &TemplateService{templates: templates, logger: logger}
}

// CreateTemplate implements v1.TemplateServiceServer
func (s *TemplateService) CreateTemplate(ctx context.Context, req *v1.CreateTemplateRequest) (*v1.TemplateResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if len(req.GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one field is required")
	}
	if err := validateTemplateFields(req.GetFields()); err != nil {
		return nil, err
	}

	tmpl, err := s.templates.Create(ctx, name, templateFieldsFromProto(req.GetFields()))
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, status.Errorf(codes.AlreadyExists, "template %q already exists", name)
		}
		return nil, status.Errorf(codes.Internal, "create template: %v", err)
	}
	s.logger.Info("template created", "template_id", tmpl.ID, "name", name, "fields", len(tmpl.Fields))
	return &v1.TemplateResponse{Template: templateToProto(tmpl)}, nil
}

// GetTemplate implements v1.TemplateServiceServer
func (s *TemplateService) GetTemplate(ctx context.Context, req *v1.GetTemplateRequest) (*v1.TemplateResponse, error) {
	id, err := parseUUIDField(req.GetTemplateId(), "template_id")
	if err != nil {
		return nil, err
	}
	tmpl, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "get template: %v", err)
	}
	return &v1.TemplateResponse{Template: templateToProto(tmpl)}, nil
}

// ListTemplates implements v1.TemplateServiceServer
func (s *TemplateService) ListTemplates(ctx context.Context, _ *v1.ListTemplatesRequest) (*v1.ListTemplatesResponse, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list templates: %v", err)
	}
	resp := &v1.ListTemplatesResponse{}
	for _, t := range templates {
		resp.Templates = append(resp.Templates, templateToProto(t))
	}
	return resp, nil
}

// UpdateTemplate implements v1.TemplateServiceServer. Edits never mutate an
// existing version; a new version row is written instead.
func (s *TemplateService) UpdateTemplate(ctx context.Context, req *v1.UpdateTemplateRequest) (*v1.TemplateResponse, error) {
	id, err := parseUUIDField(req.GetTemplateId(), "template_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetFields()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one field is required")
	}
	if err := validateTemplateFields(req.GetFields()); err != nil {
		return nil, err
	}

	tmpl, err := s.templates.NewVersion(ctx, id, templateFieldsFromProto(req.GetFields()))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "update template: %v", err)
	}
	s.logger.Info("template version created", "template_id", tmpl.ID, "name", tmpl.Name, "version", tmpl.Version)
	return &v1.TemplateResponse{Template: templateToProto(tmpl)}, nil
}

func validateTemplateFields(fields []*v1.TemplateField) error {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.GetName())
		if name == "" {
			return status.Error(codes.InvalidArgument, "field name is required")
		}
		if _, dup := seen[name]; dup {
			return status.Errorf(codes.InvalidArgument, "duplicate field name %q", name)
		}
		seen[name] = struct{}{}
		switch f.GetType() {
		case "", "text", "number", "date", "select":
		default:
			return status.Errorf(codes.InvalidArgument, "field %q has unknown type %q", name, f.GetType())
		}
		if f.GetType() == "select" && len(f.GetOptions()) == 0 {
			return status.Errorf(codes.InvalidArgument, "select field %q needs options", name)
		}
	}
	return nil
}
