package server

import (
	"context"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/docufill/docpipe/gen/proto/docpipe/v1"
	"github.com/docufill/docpipe/internal/entity"
	"github.com/docufill/docpipe/internal/merge"
)

type ProfileService struct {
	v1.UnimplementedProfileServiceServer
	merger *merge.Engine
	logger *slog.Logger
}

func NewProfileService(m *merge.Engine, logger *slog.Logger) *ProfileService {
	return &ProfileService{merger: m, logger: logger}
}

// GetProfile implements v1.ProfileServiceServer
func (s *ProfileService) GetProfile(ctx context.Context, req *v1.GetProfileRequest) (*v1.GetProfileResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	p, err := s.merger.Profile(ctx, clientID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get profile: %v", err)
	}
	return profileToProto(p), nil
}

// SetProfileField implements v1.ProfileServiceServer
func (s *ProfileService) SetProfileField(ctx context.Context, req *v1.SetProfileFieldRequest) (*v1.GetProfileResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, status.Error(codes.InvalidArgument, "value is required")
	}

	p, err := s.merger.SetField(ctx, clientID, name, req.GetValue())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "set profile field: %v", err)
	}
	s.logger.Info("profile field set manually", "client_id", clientID, "field", name)
	return profileToProto(p), nil
}

// ClearManualEdit implements v1.ProfileServiceServer
func (s *ProfileService) ClearManualEdit(ctx context.Context, req *v1.ClearManualEditRequest) (*v1.GetProfileResponse, error) {
	clientID := strings.TrimSpace(req.GetClientId())
	if clientID == "" {
		return nil, status.Error(codes.InvalidArgument, "client_id is required")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	p, err := s.merger.ClearManualEdit(ctx, clientID, name)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "clear manual edit: %v", err)
	}
	s.logger.Info("profile field manual edit cleared", "client_id", clientID, "field", name)
	return profileToProto(p), nil
}

func profileToProto(p *entity.ClientProfile) *v1.GetProfileResponse {
	resp := &v1.GetProfileResponse{
		ClientId: p.ClientID,
		Version:  int32(p.Version),
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.UTC().Format(time.RFC3339)
	}

	groups := merge.SortedGroupNames(merge.GroupFields(p))
	order := []entity.FieldGroup{
		entity.GroupIdentity,
		entity.GroupContact,
		entity.GroupDates,
		entity.GroupNumbers,
		entity.GroupOther,
	}
	for _, g := range order {
		for _, name := range groups[g] {
			f := p.Fields[name]
			entry := &v1.ProfileFieldEntry{
				Name:           name,
				Value:          f.Value,
				Confidence:     f.Confidence,
				ManuallyEdited: f.ManuallyEdited,
				Group:          string(g),
			}
			for _, src := range f.FieldSources {
				entry.Sources = append(entry.Sources, &v1.FieldSourceRef{
					DocumentId:  src.DocumentID.String(),
					ExtractedAt: src.ExtractedAt.UTC().Format(time.RFC3339),
					Confidence:  src.Confidence,
				})
			}
			resp.Fields = append(resp.Fields, entry)
		}
	}
	return resp
}
