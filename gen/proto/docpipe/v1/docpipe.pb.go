// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docpipe/v1/docpipe.proto

package docpipev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{0}
}

func (x *IngestFileRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{1}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{2}
}

func (x *IngestDirectoryRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*IngestResponse      `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	Scanned       int32                  `protobuf:"varint,2,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       int32                  `protobuf:"varint,3,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     int32                  `protobuf:"varint,4,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Deduplicated  int32                  `protobuf:"varint,6,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{3}
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

func (x *IngestDirectoryResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() int32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() int32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() int32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

type SubmitDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,2,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"` // optional; empty means no form mapping
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{5}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{6}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     bool                   `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{7}
}

func (x *CancelJobResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{8}
}

func (x *ListJobsRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*JobStatusResponse   `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{9}
}

func (x *ListJobsResponse) GetJobs() []*JobStatusResponse {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type Classification struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Category          string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Confidence        float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..100
	NeedsConfirmation bool                   `protobuf:"varint,3,opt,name=needs_confirmation,json=needsConfirmation,proto3" json:"needs_confirmation,omitempty"`
	Alternatives      []*CategoryAlternative `protobuf:"bytes,4,rep,name=alternatives,proto3" json:"alternatives,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Classification) Reset() {
	*x = Classification{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Classification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Classification) ProtoMessage() {}

func (x *Classification) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Classification.ProtoReflect.Descriptor instead.
func (*Classification) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{10}
}

func (x *Classification) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Classification) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Classification) GetNeedsConfirmation() bool {
	if x != nil {
		return x.NeedsConfirmation
	}
	return false
}

func (x *Classification) GetAlternatives() []*CategoryAlternative {
	if x != nil {
		return x.Alternatives
	}
	return nil
}

type CategoryAlternative struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryAlternative) Reset() {
	*x = CategoryAlternative{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryAlternative) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryAlternative) ProtoMessage() {}

func (x *CategoryAlternative) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryAlternative.ProtoReflect.Descriptor instead.
func (*CategoryAlternative) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{11}
}

func (x *CategoryAlternative) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryAlternative) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type FieldMapping struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	SourceField     string                 `protobuf:"bytes,1,opt,name=source_field,json=sourceField,proto3" json:"source_field,omitempty"`
	SourceValue     string                 `protobuf:"bytes,2,opt,name=source_value,json=sourceValue,proto3" json:"source_value,omitempty"`
	TargetField     string                 `protobuf:"bytes,3,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	Confidence      float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..100
	IsOverridden    bool                   `protobuf:"varint,5,opt,name=is_overridden,json=isOverridden,proto3" json:"is_overridden,omitempty"`
	OverrideValue   string                 `protobuf:"bytes,6,opt,name=override_value,json=overrideValue,proto3" json:"override_value,omitempty"`
	RequiredMissing bool                   `protobuf:"varint,7,opt,name=required_missing,json=requiredMissing,proto3" json:"required_missing,omitempty"`
	EffectiveValue  string                 `protobuf:"bytes,8,opt,name=effective_value,json=effectiveValue,proto3" json:"effective_value,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FieldMapping) Reset() {
	*x = FieldMapping{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldMapping) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldMapping) ProtoMessage() {}

func (x *FieldMapping) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldMapping.ProtoReflect.Descriptor instead.
func (*FieldMapping) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{12}
}

func (x *FieldMapping) GetSourceField() string {
	if x != nil {
		return x.SourceField
	}
	return ""
}

func (x *FieldMapping) GetSourceValue() string {
	if x != nil {
		return x.SourceValue
	}
	return ""
}

func (x *FieldMapping) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *FieldMapping) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *FieldMapping) GetIsOverridden() bool {
	if x != nil {
		return x.IsOverridden
	}
	return false
}

func (x *FieldMapping) GetOverrideValue() string {
	if x != nil {
		return x.OverrideValue
	}
	return ""
}

func (x *FieldMapping) GetRequiredMissing() bool {
	if x != nil {
		return x.RequiredMissing
	}
	return false
}

func (x *FieldMapping) GetEffectiveValue() string {
	if x != nil {
		return x.EffectiveValue
	}
	return ""
}

type QualityIssue struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         string                 `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Message       string                 `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QualityIssue) Reset() {
	*x = QualityIssue{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityIssue) ProtoMessage() {}

func (x *QualityIssue) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityIssue.ProtoReflect.Descriptor instead.
func (*QualityIssue) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{13}
}

func (x *QualityIssue) GetField() string {
	if x != nil {
		return x.Field
	}
	return ""
}

func (x *QualityIssue) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *QualityIssue) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type QualityAssessment struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	IsValid          bool                   `protobuf:"varint,1,opt,name=is_valid,json=isValid,proto3" json:"is_valid,omitempty"`
	OverallScore     float64                `protobuf:"fixed64,2,opt,name=overall_score,json=overallScore,proto3" json:"overall_score,omitempty"` // 0..100
	Issues           []*QualityIssue        `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	NeedsHumanReview bool                   `protobuf:"varint,4,opt,name=needs_human_review,json=needsHumanReview,proto3" json:"needs_human_review,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *QualityAssessment) Reset() {
	*x = QualityAssessment{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QualityAssessment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QualityAssessment) ProtoMessage() {}

func (x *QualityAssessment) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QualityAssessment.ProtoReflect.Descriptor instead.
func (*QualityAssessment) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{14}
}

func (x *QualityAssessment) GetIsValid() bool {
	if x != nil {
		return x.IsValid
	}
	return false
}

func (x *QualityAssessment) GetOverallScore() float64 {
	if x != nil {
		return x.OverallScore
	}
	return 0
}

func (x *QualityAssessment) GetIssues() []*QualityIssue {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *QualityAssessment) GetNeedsHumanReview() bool {
	if x != nil {
		return x.NeedsHumanReview
	}
	return false
}

type JobStatusResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ClientId       string                 `protobuf:"bytes,3,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	TemplateId     string                 `protobuf:"bytes,4,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	State          string                 `protobuf:"bytes,5,opt,name=state,proto3" json:"state,omitempty"`
	Progress       int32                  `protobuf:"varint,6,opt,name=progress,proto3" json:"progress,omitempty"` // 0..100
	Attempt        int32                  `protobuf:"varint,7,opt,name=attempt,proto3" json:"attempt,omitempty"`
	MaxAttempts    int32                  `protobuf:"varint,8,opt,name=max_attempts,json=maxAttempts,proto3" json:"max_attempts,omitempty"`
	Classification *Classification        `protobuf:"bytes,9,opt,name=classification,proto3" json:"classification,omitempty"`
	Mappings       []*FieldMapping        `protobuf:"bytes,10,rep,name=mappings,proto3" json:"mappings,omitempty"`
	LastAssessment *QualityAssessment     `protobuf:"bytes,11,opt,name=last_assessment,json=lastAssessment,proto3" json:"last_assessment,omitempty"`
	ErrorCode      string                 `protobuf:"bytes,12,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	ErrorMessage   string                 `protobuf:"bytes,13,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	StartedAt      string                 `protobuf:"bytes,14,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC3339
	FinishedAt     string                 `protobuf:"bytes,15,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC3339, empty while running
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *JobStatusResponse) Reset() {
	*x = JobStatusResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobStatusResponse) ProtoMessage() {}

func (x *JobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobStatusResponse.ProtoReflect.Descriptor instead.
func (*JobStatusResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{15}
}

func (x *JobStatusResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *JobStatusResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *JobStatusResponse) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *JobStatusResponse) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *JobStatusResponse) GetState() string {
	if x != nil {
		return x.State
	}
	return ""
}

func (x *JobStatusResponse) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *JobStatusResponse) GetAttempt() int32 {
	if x != nil {
		return x.Attempt
	}
	return 0
}

func (x *JobStatusResponse) GetMaxAttempts() int32 {
	if x != nil {
		return x.MaxAttempts
	}
	return 0
}

func (x *JobStatusResponse) GetClassification() *Classification {
	if x != nil {
		return x.Classification
	}
	return nil
}

func (x *JobStatusResponse) GetMappings() []*FieldMapping {
	if x != nil {
		return x.Mappings
	}
	return nil
}

func (x *JobStatusResponse) GetLastAssessment() *QualityAssessment {
	if x != nil {
		return x.LastAssessment
	}
	return nil
}

func (x *JobStatusResponse) GetErrorCode() string {
	if x != nil {
		return x.ErrorCode
	}
	return ""
}

func (x *JobStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *JobStatusResponse) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *JobStatusResponse) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type OverrideMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetField   string                 `protobuf:"bytes,2,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *OverrideMappingRequest) Reset() {
	*x = OverrideMappingRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *OverrideMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*OverrideMappingRequest) ProtoMessage() {}

func (x *OverrideMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use OverrideMappingRequest.ProtoReflect.Descriptor instead.
func (*OverrideMappingRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{16}
}

func (x *OverrideMappingRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *OverrideMappingRequest) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *OverrideMappingRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ResetMappingOverrideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	TargetField   string                 `protobuf:"bytes,2,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetMappingOverrideRequest) Reset() {
	*x = ResetMappingOverrideRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetMappingOverrideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetMappingOverrideRequest) ProtoMessage() {}

func (x *ResetMappingOverrideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetMappingOverrideRequest.ProtoReflect.Descriptor instead.
func (*ResetMappingOverrideRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{17}
}

func (x *ResetMappingOverrideRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ResetMappingOverrideRequest) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

// Either job_id (values from that job's mappings) or client_id plus
// template_id (template filled from the client's merged profile).
type GetFilledValuesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	ClientId      string                 `protobuf:"bytes,2,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	TemplateId    string                 `protobuf:"bytes,3,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilledValuesRequest) Reset() {
	*x = GetFilledValuesRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilledValuesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilledValuesRequest) ProtoMessage() {}

func (x *GetFilledValuesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilledValuesRequest.ProtoReflect.Descriptor instead.
func (*GetFilledValuesRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{18}
}

func (x *GetFilledValuesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *GetFilledValuesRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *GetFilledValuesRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type FilledValue struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TargetField     string                 `protobuf:"bytes,1,opt,name=target_field,json=targetField,proto3" json:"target_field,omitempty"`
	Label           string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Value           string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	Confidence      float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	IsOverridden    bool                   `protobuf:"varint,5,opt,name=is_overridden,json=isOverridden,proto3" json:"is_overridden,omitempty"`
	RequiredMissing bool                   `protobuf:"varint,6,opt,name=required_missing,json=requiredMissing,proto3" json:"required_missing,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FilledValue) Reset() {
	*x = FilledValue{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FilledValue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FilledValue) ProtoMessage() {}

func (x *FilledValue) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FilledValue.ProtoReflect.Descriptor instead.
func (*FilledValue) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{19}
}

func (x *FilledValue) GetTargetField() string {
	if x != nil {
		return x.TargetField
	}
	return ""
}

func (x *FilledValue) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *FilledValue) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *FilledValue) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *FilledValue) GetIsOverridden() bool {
	if x != nil {
		return x.IsOverridden
	}
	return false
}

func (x *FilledValue) GetRequiredMissing() bool {
	if x != nil {
		return x.RequiredMissing
	}
	return false
}

type GetFilledValuesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	TemplateName  string                 `protobuf:"bytes,2,opt,name=template_name,json=templateName,proto3" json:"template_name,omitempty"`
	Values        []*FilledValue         `protobuf:"bytes,3,rep,name=values,proto3" json:"values,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFilledValuesResponse) Reset() {
	*x = GetFilledValuesResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFilledValuesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFilledValuesResponse) ProtoMessage() {}

func (x *GetFilledValuesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFilledValuesResponse.ProtoReflect.Descriptor instead.
func (*GetFilledValuesResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{20}
}

func (x *GetFilledValuesResponse) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *GetFilledValuesResponse) GetTemplateName() string {
	if x != nil {
		return x.TemplateName
	}
	return ""
}

func (x *GetFilledValuesResponse) GetValues() []*FilledValue {
	if x != nil {
		return x.Values
	}
	return nil
}

type GetProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileRequest) Reset() {
	*x = GetProfileRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileRequest) ProtoMessage() {}

func (x *GetProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileRequest.ProtoReflect.Descriptor instead.
func (*GetProfileRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{21}
}

func (x *GetProfileRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

type FieldSourceRef struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ExtractedAt   string                 `protobuf:"bytes,2,opt,name=extracted_at,json=extractedAt,proto3" json:"extracted_at,omitempty"` // RFC3339
	Confidence    float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FieldSourceRef) Reset() {
	*x = FieldSourceRef{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FieldSourceRef) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FieldSourceRef) ProtoMessage() {}

func (x *FieldSourceRef) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FieldSourceRef.ProtoReflect.Descriptor instead.
func (*FieldSourceRef) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{22}
}

func (x *FieldSourceRef) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *FieldSourceRef) GetExtractedAt() string {
	if x != nil {
		return x.ExtractedAt
	}
	return ""
}

func (x *FieldSourceRef) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type ProfileFieldEntry struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Name           string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Value          string                 `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Confidence     float64                `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..100
	ManuallyEdited bool                   `protobuf:"varint,4,opt,name=manually_edited,json=manuallyEdited,proto3" json:"manually_edited,omitempty"`
	Group          string                 `protobuf:"bytes,5,opt,name=group,proto3" json:"group,omitempty"` // identity | contact | dates | numbers | other
	Sources        []*FieldSourceRef      `protobuf:"bytes,6,rep,name=sources,proto3" json:"sources,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ProfileFieldEntry) Reset() {
	*x = ProfileFieldEntry{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProfileFieldEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProfileFieldEntry) ProtoMessage() {}

func (x *ProfileFieldEntry) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProfileFieldEntry.ProtoReflect.Descriptor instead.
func (*ProfileFieldEntry) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{23}
}

func (x *ProfileFieldEntry) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ProfileFieldEntry) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ProfileFieldEntry) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ProfileFieldEntry) GetManuallyEdited() bool {
	if x != nil {
		return x.ManuallyEdited
	}
	return false
}

func (x *ProfileFieldEntry) GetGroup() string {
	if x != nil {
		return x.Group
	}
	return ""
}

func (x *ProfileFieldEntry) GetSources() []*FieldSourceRef {
	if x != nil {
		return x.Sources
	}
	return nil
}

type GetProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Version       int32                  `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	Fields        []*ProfileFieldEntry   `protobuf:"bytes,3,rep,name=fields,proto3" json:"fields,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetProfileResponse) Reset() {
	*x = GetProfileResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetProfileResponse) ProtoMessage() {}

func (x *GetProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetProfileResponse.ProtoReflect.Descriptor instead.
func (*GetProfileResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{24}
}

func (x *GetProfileResponse) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *GetProfileResponse) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *GetProfileResponse) GetFields() []*ProfileFieldEntry {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *GetProfileResponse) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SetProfileFieldRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Value         string                 `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetProfileFieldRequest) Reset() {
	*x = SetProfileFieldRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetProfileFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetProfileFieldRequest) ProtoMessage() {}

func (x *SetProfileFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetProfileFieldRequest.ProtoReflect.Descriptor instead.
func (*SetProfileFieldRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{25}
}

func (x *SetProfileFieldRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *SetProfileFieldRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SetProfileFieldRequest) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

type ClearManualEditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ClientId      string                 `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ClearManualEditRequest) Reset() {
	*x = ClearManualEditRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ClearManualEditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ClearManualEditRequest) ProtoMessage() {}

func (x *ClearManualEditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ClearManualEditRequest.ProtoReflect.Descriptor instead.
func (*ClearManualEditRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{26}
}

func (x *ClearManualEditRequest) GetClientId() string {
	if x != nil {
		return x.ClientId
	}
	return ""
}

func (x *ClearManualEditRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type TemplateField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Label         string                 `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	Required      bool                   `protobuf:"varint,3,opt,name=required,proto3" json:"required,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"` // text | number | date | select
	Options       []string               `protobuf:"bytes,5,rep,name=options,proto3" json:"options,omitempty"`
	Order         int32                  `protobuf:"varint,6,opt,name=order,proto3" json:"order,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TemplateField) Reset() {
	*x = TemplateField{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TemplateField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TemplateField) ProtoMessage() {}

func (x *TemplateField) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TemplateField.ProtoReflect.Descriptor instead.
func (*TemplateField) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{27}
}

func (x *TemplateField) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *TemplateField) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *TemplateField) GetRequired() bool {
	if x != nil {
		return x.Required
	}
	return false
}

func (x *TemplateField) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *TemplateField) GetOptions() []string {
	if x != nil {
		return x.Options
	}
	return nil
}

func (x *TemplateField) GetOrder() int32 {
	if x != nil {
		return x.Order
	}
	return 0
}

type Template struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Version       int32                  `protobuf:"varint,3,opt,name=version,proto3" json:"version,omitempty"`
	Fields        []*TemplateField       `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Template) Reset() {
	*x = Template{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Template) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Template) ProtoMessage() {}

func (x *Template) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Template.ProtoReflect.Descriptor instead.
func (*Template) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{28}
}

func (x *Template) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Template) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Template) GetVersion() int32 {
	if x != nil {
		return x.Version
	}
	return 0
}

func (x *Template) GetFields() []*TemplateField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *Template) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Template) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Fields        []*TemplateField       `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateTemplateRequest) Reset() {
	*x = CreateTemplateRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateTemplateRequest) ProtoMessage() {}

func (x *CreateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateTemplateRequest.ProtoReflect.Descriptor instead.
func (*CreateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{29}
}

func (x *CreateTemplateRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateTemplateRequest) GetFields() []*TemplateField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type GetTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTemplateRequest) Reset() {
	*x = GetTemplateRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTemplateRequest) ProtoMessage() {}

func (x *GetTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTemplateRequest.ProtoReflect.Descriptor instead.
func (*GetTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{30}
}

func (x *GetTemplateRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

type ListTemplatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesRequest) Reset() {
	*x = ListTemplatesRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesRequest) ProtoMessage() {}

func (x *ListTemplatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesRequest.ProtoReflect.Descriptor instead.
func (*ListTemplatesRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{31}
}

type ListTemplatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Templates     []*Template            `protobuf:"bytes,1,rep,name=templates,proto3" json:"templates,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTemplatesResponse) Reset() {
	*x = ListTemplatesResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTemplatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTemplatesResponse) ProtoMessage() {}

func (x *ListTemplatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTemplatesResponse.ProtoReflect.Descriptor instead.
func (*ListTemplatesResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{32}
}

func (x *ListTemplatesResponse) GetTemplates() []*Template {
	if x != nil {
		return x.Templates
	}
	return nil
}

type UpdateTemplateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TemplateId    string                 `protobuf:"bytes,1,opt,name=template_id,json=templateId,proto3" json:"template_id,omitempty"`
	Fields        []*TemplateField       `protobuf:"bytes,2,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateTemplateRequest) Reset() {
	*x = UpdateTemplateRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateTemplateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateTemplateRequest) ProtoMessage() {}

func (x *UpdateTemplateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateTemplateRequest.ProtoReflect.Descriptor instead.
func (*UpdateTemplateRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{33}
}

func (x *UpdateTemplateRequest) GetTemplateId() string {
	if x != nil {
		return x.TemplateId
	}
	return ""
}

func (x *UpdateTemplateRequest) GetFields() []*TemplateField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type TemplateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Template      *Template              `protobuf:"bytes,1,opt,name=template,proto3" json:"template,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TemplateResponse) Reset() {
	*x = TemplateResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TemplateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TemplateResponse) ProtoMessage() {}

func (x *TemplateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TemplateResponse.ProtoReflect.Descriptor instead.
func (*TemplateResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{34}
}

func (x *TemplateResponse) GetTemplate() *Template {
	if x != nil {
		return x.Template
	}
	return nil
}

type ExportFilledValuesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	OutputDir     string                 `protobuf:"bytes,2,opt,name=output_dir,json=outputDir,proto3" json:"output_dir,omitempty"` // optional; defaults to the server's export dir
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFilledValuesRequest) Reset() {
	*x = ExportFilledValuesRequest{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFilledValuesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFilledValuesRequest) ProtoMessage() {}

func (x *ExportFilledValuesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFilledValuesRequest.ProtoReflect.Descriptor instead.
func (*ExportFilledValuesRequest) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{35}
}

func (x *ExportFilledValuesRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExportFilledValuesRequest) GetOutputDir() string {
	if x != nil {
		return x.OutputDir
	}
	return ""
}

type ExportFilledValuesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FilePath      string                 `protobuf:"bytes,1,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Rows          int32                  `protobuf:"varint,2,opt,name=rows,proto3" json:"rows,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFilledValuesResponse) Reset() {
	*x = ExportFilledValuesResponse{}
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFilledValuesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFilledValuesResponse) ProtoMessage() {}

func (x *ExportFilledValuesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docpipe_v1_docpipe_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFilledValuesResponse.ProtoReflect.Descriptor instead.
func (*ExportFilledValuesResponse) Descriptor() ([]byte, []int) {
	return file_docpipe_v1_docpipe_proto_rawDescGZIP(), []int{36}
}

func (x *ExportFilledValuesResponse) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ExportFilledValuesResponse) GetRows() int32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

var File_docpipe_v1_docpipe_proto protoreflect.FileDescriptor

const file_docpipe_v1_docpipe_proto_rawDesc = "" +
	"\n" +
	"\x18docpipe/v1/docpipe.proto\x12\n" +
	"docpipe.v1\"D\n" +
	"\x11IngestFileRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\xf2\x01\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"s\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xdd\x01\n" +
	"\x17IngestDirectoryResponse\x124\n" +
	"\aresults\x18\x01 \x03(\v2\x1a.docpipe.v1.IngestResponseR\aresults\x12\x18\n" +
	"\ascanned\x18\x02 \x01(\x05R\ascanned\x12\x18\n" +
	"\amatched\x18\x03 \x01(\x05R\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x04 \x01(\x05R\tsucceeded\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x12\"\n" +
	"\fdeduplicated\x18\x06 \x01(\x05R\fdeduplicated\"Y\n" +
	"\x15SubmitDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vtemplate_id\x18\x02 \x01(\tR\n" +
	"templateId\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"1\n" +
	"\x11CancelJobResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\bR\tcancelled\"D\n" +
	"\x0fListJobsRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"E\n" +
	"\x10ListJobsResponse\x121\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1d.docpipe.v1.JobStatusResponseR\x04jobs\"\xc0\x01\n" +
	"\x0eClassification\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\x12-\n" +
	"\x12needs_confirmation\x18\x03 \x01(\bR\x11needsConfirmation\x12C\n" +
	"\falternatives\x18\x04 \x03(\v2\x1f.docpipe.v1.CategoryAlternativeR\falternatives\"Q\n" +
	"\x13CategoryAlternative\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"\xb7\x02\n" +
	"\fFieldMapping\x12!\n" +
	"\fsource_field\x18\x01 \x01(\tR\vsourceField\x12!\n" +
	"\fsource_value\x18\x02 \x01(\tR\vsourceValue\x12!\n" +
	"\ftarget_field\x18\x03 \x01(\tR\vtargetField\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\ris_overridden\x18\x05 \x01(\bR\fisOverridden\x12%\n" +
	"\x0eoverride_value\x18\x06 \x01(\tR\roverrideValue\x12)\n" +
	"\x10required_missing\x18\a \x01(\bR\x0frequiredMissing\x12'\n" +
	"\x0feffective_value\x18\b \x01(\tR\x0eeffectiveValue\"R\n" +
	"\fQualityIssue\x12\x14\n" +
	"\x05field\x18\x01 \x01(\tR\x05field\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x18\n" +
	"\amessage\x18\x03 \x01(\tR\amessage\"\xb3\x01\n" +
	"\x11QualityAssessment\x12\x19\n" +
	"\bis_valid\x18\x01 \x01(\bR\aisValid\x12#\n" +
	"\roverall_score\x18\x02 \x01(\x01R\foverallScore\x120\n" +
	"\x06issues\x18\x03 \x03(\v2\x18.docpipe.v1.QualityIssueR\x06issues\x12,\n" +
	"\x12needs_human_review\x18\x04 \x01(\bR\x10needsHumanReview\"\xbe\x04\n" +
	"\x11JobStatusResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1b\n" +
	"\tclient_id\x18\x03 \x01(\tR\bclientId\x12\x1f\n" +
	"\vtemplate_id\x18\x04 \x01(\tR\n" +
	"templateId\x12\x14\n" +
	"\x05state\x18\x05 \x01(\tR\x05state\x12\x1a\n" +
	"\bprogress\x18\x06 \x01(\x05R\bprogress\x12\x18\n" +
	"\aattempt\x18\a \x01(\x05R\aattempt\x12!\n" +
	"\fmax_attempts\x18\b \x01(\x05R\vmaxAttempts\x12B\n" +
	"\x0eclassification\x18\t \x01(\v2\x1a.docpipe.v1.ClassificationR\x0eclassification\x124\n" +
	"\bmappings\x18\n" +
	" \x03(\v2\x18.docpipe.v1.FieldMappingR\bmappings\x12F\n" +
	"\x0flast_assessment\x18\v \x01(\v2\x1d.docpipe.v1.QualityAssessmentR\x0elastAssessment\x12\x1d\n" +
	"\n" +
	"error_code\x18\f \x01(\tR\terrorCode\x12#\n" +
	"\rerror_message\x18\r \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"started_at\x18\x0e \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x0f \x01(\tR\n" +
	"finishedAt\"h\n" +
	"\x16OverrideMappingRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\ftarget_field\x18\x02 \x01(\tR\vtargetField\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"W\n" +
	"\x1bResetMappingOverrideRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12!\n" +
	"\ftarget_field\x18\x02 \x01(\tR\vtargetField\"m\n" +
	"\x16GetFilledValuesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1b\n" +
	"\tclient_id\x18\x02 \x01(\tR\bclientId\x12\x1f\n" +
	"\vtemplate_id\x18\x03 \x01(\tR\n" +
	"templateId\"\xcc\x01\n" +
	"\vFilledValue\x12!\n" +
	"\ftarget_field\x18\x01 \x01(\tR\vtargetField\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\x12#\n" +
	"\ris_overridden\x18\x05 \x01(\bR\fisOverridden\x12)\n" +
	"\x10required_missing\x18\x06 \x01(\bR\x0frequiredMissing\"\x90\x01\n" +
	"\x17GetFilledValuesResponse\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x12#\n" +
	"\rtemplate_name\x18\x02 \x01(\tR\ftemplateName\x12/\n" +
	"\x06values\x18\x03 \x03(\v2\x17.docpipe.v1.FilledValueR\x06values\"0\n" +
	"\x11GetProfileRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\"t\n" +
	"\x0eFieldSourceRef\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\fextracted_at\x18\x02 \x01(\tR\vextractedAt\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\"\xd2\x01\n" +
	"\x11ProfileFieldEntry\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12'\n" +
	"\x0fmanually_edited\x18\x04 \x01(\bR\x0emanuallyEdited\x12\x14\n" +
	"\x05group\x18\x05 \x01(\tR\x05group\x124\n" +
	"\asources\x18\x06 \x03(\v2\x1a.docpipe.v1.FieldSourceRefR\asources\"\xa1\x01\n" +
	"\x12GetProfileResponse\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x18\n" +
	"\aversion\x18\x02 \x01(\x05R\aversion\x125\n" +
	"\x06fields\x18\x03 \x03(\v2\x1d.docpipe.v1.ProfileFieldEntryR\x06fields\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\tR\tupdatedAt\"_\n" +
	"\x16SetProfileFieldRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05value\x18\x03 \x01(\tR\x05value\"I\n" +
	"\x16ClearManualEditRequest\x12\x1b\n" +
	"\tclient_id\x18\x01 \x01(\tR\bclientId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"\x99\x01\n" +
	"\rTemplateField\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05label\x18\x02 \x01(\tR\x05label\x12\x1a\n" +
	"\brequired\x18\x03 \x01(\bR\brequired\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12\x18\n" +
	"\aoptions\x18\x05 \x03(\tR\aoptions\x12\x14\n" +
	"\x05order\x18\x06 \x01(\x05R\x05order\"\xb9\x01\n" +
	"\bTemplate\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aversion\x18\x03 \x01(\x05R\aversion\x121\n" +
	"\x06fields\x18\x04 \x03(\v2\x19.docpipe.v1.TemplateFieldR\x06fields\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"^\n" +
	"\x15CreateTemplateRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x121\n" +
	"\x06fields\x18\x02 \x03(\v2\x19.docpipe.v1.TemplateFieldR\x06fields\"5\n" +
	"\x12GetTemplateRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\"\x16\n" +
	"\x14ListTemplatesRequest\"K\n" +
	"\x15ListTemplatesResponse\x122\n" +
	"\ttemplates\x18\x01 \x03(\v2\x14.docpipe.v1.TemplateR\ttemplates\"k\n" +
	"\x15UpdateTemplateRequest\x12\x1f\n" +
	"\vtemplate_id\x18\x01 \x01(\tR\n" +
	"templateId\x121\n" +
	"\x06fields\x18\x02 \x03(\v2\x19.docpipe.v1.TemplateFieldR\x06fields\"D\n" +
	"\x10TemplateResponse\x120\n" +
	"\btemplate\x18\x01 \x01(\v2\x14.docpipe.v1.TemplateR\btemplate\"Q\n" +
	"\x19ExportFilledValuesRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1d\n" +
	"\n" +
	"output_dir\x18\x02 \x01(\tR\toutputDir\"M\n" +
	"\x1aExportFilledValuesResponse\x12\x1b\n" +
	"\tfile_path\x18\x01 \x01(\tR\bfilePath\x12\x12\n" +
	"\x04rows\x18\x02 \x01(\x05R\x04rows2\xb7\x01\n" +
	"\x10IngestionService\x12G\n" +
	"\n" +
	"IngestFile\x12\x1d.docpipe.v1.IngestFileRequest\x1a\x1a.docpipe.v1.IngestResponse\x12Z\n" +
	"\x0fIngestDirectory\x12\".docpipe.v1.IngestDirectoryRequest\x1a#.docpipe.v1.IngestDirectoryResponse2\xa6\x05\n" +
	"\x0fPipelineService\x12R\n" +
	"\x0eSubmitDocument\x12!.docpipe.v1.SubmitDocumentRequest\x1a\x1d.docpipe.v1.JobStatusResponse\x12N\n" +
	"\fGetJobStatus\x12\x1f.docpipe.v1.GetJobStatusRequest\x1a\x1d.docpipe.v1.JobStatusResponse\x12L\n" +
	"\bWatchJob\x12\x1f.docpipe.v1.GetJobStatusRequest\x1a\x1d.docpipe.v1.JobStatusResponse0\x01\x12H\n" +
	"\tCancelJob\x12\x1c.docpipe.v1.CancelJobRequest\x1a\x1d.docpipe.v1.CancelJobResponse\x12E\n" +
	"\bListJobs\x12\x1b.docpipe.v1.ListJobsRequest\x1a\x1c.docpipe.v1.ListJobsResponse\x12T\n" +
	"\x0fOverrideMapping\x12\".docpipe.v1.OverrideMappingRequest\x1a\x1d.docpipe.v1.JobStatusResponse\x12^\n" +
	"\x14ResetMappingOverride\x12'.docpipe.v1.ResetMappingOverrideRequest\x1a\x1d.docpipe.v1.JobStatusResponse\x12Z\n" +
	"\x0fGetFilledValues\x12\".docpipe.v1.GetFilledValuesRequest\x1a#.docpipe.v1.GetFilledValuesResponse2\x8b\x02\n" +
	"\x0eProfileService\x12K\n" +
	"\n" +
	"GetProfile\x12\x1d.docpipe.v1.GetProfileRequest\x1a\x1e.docpipe.v1.GetProfileResponse\x12U\n" +
	"\x0fSetProfileField\x12\".docpipe.v1.SetProfileFieldRequest\x1a\x1e.docpipe.v1.GetProfileResponse\x12U\n" +
	"\x0fClearManualEdit\x12\".docpipe.v1.ClearManualEditRequest\x1a\x1e.docpipe.v1.GetProfileResponse2\xda\x02\n" +
	"\x0fTemplateService\x12Q\n" +
	"\x0eCreateTemplate\x12!.docpipe.v1.CreateTemplateRequest\x1a\x1c.docpipe.v1.TemplateResponse\x12K\n" +
	"\vGetTemplate\x12\x1e.docpipe.v1.GetTemplateRequest\x1a\x1c.docpipe.v1.TemplateResponse\x12T\n" +
	"\rListTemplates\x12 .docpipe.v1.ListTemplatesRequest\x1a!.docpipe.v1.ListTemplatesResponse\x12Q\n" +
	"\x0eUpdateTemplate\x12!.docpipe.v1.UpdateTemplateRequest\x1a\x1c.docpipe.v1.TemplateResponse2t\n" +
	"\rExportService\x12c\n" +
	"\x12ExportFilledValues\x12%.docpipe.v1.ExportFilledValuesRequest\x1a&.docpipe.v1.ExportFilledValuesResponseB<Z:github.com/docufill/docpipe/gen/proto/docpipe/v1;docpipev1b\x06proto3"

var (
	file_docpipe_v1_docpipe_proto_rawDescOnce sync.Once
	file_docpipe_v1_docpipe_proto_rawDescData []byte
)

func file_docpipe_v1_docpipe_proto_rawDescGZIP() []byte {
	file_docpipe_v1_docpipe_proto_rawDescOnce.Do(func() {
		file_docpipe_v1_docpipe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)))
	})
	return file_docpipe_v1_docpipe_proto_rawDescData
}

var file_docpipe_v1_docpipe_proto_msgTypes = make([]protoimpl.MessageInfo, 37)
var file_docpipe_v1_docpipe_proto_goTypes = []any{
	(*IngestFileRequest)(nil),           // 0: docpipe.v1.IngestFileRequest
	(*IngestResponse)(nil),              // 1: docpipe.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),      // 2: docpipe.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),     // 3: docpipe.v1.IngestDirectoryResponse
	(*SubmitDocumentRequest)(nil),       // 4: docpipe.v1.SubmitDocumentRequest
	(*GetJobStatusRequest)(nil),         // 5: docpipe.v1.GetJobStatusRequest
	(*CancelJobRequest)(nil),            // 6: docpipe.v1.CancelJobRequest
	(*CancelJobResponse)(nil),           // 7: docpipe.v1.CancelJobResponse
	(*ListJobsRequest)(nil),             // 8: docpipe.v1.ListJobsRequest
	(*ListJobsResponse)(nil),            // 9: docpipe.v1.ListJobsResponse
	(*Classification)(nil),              // 10: docpipe.v1.Classification
	(*CategoryAlternative)(nil),         // 11: docpipe.v1.CategoryAlternative
	(*FieldMapping)(nil),                // 12: docpipe.v1.FieldMapping
	(*QualityIssue)(nil),                // 13: docpipe.v1.QualityIssue
	(*QualityAssessment)(nil),           // 14: docpipe.v1.QualityAssessment
	(*JobStatusResponse)(nil),           // 15: docpipe.v1.JobStatusResponse
	(*OverrideMappingRequest)(nil),      // 16: docpipe.v1.OverrideMappingRequest
	(*ResetMappingOverrideRequest)(nil), // 17: docpipe.v1.ResetMappingOverrideRequest
	(*GetFilledValuesRequest)(nil),      // 18: docpipe.v1.GetFilledValuesRequest
	(*FilledValue)(nil),                 // 19: docpipe.v1.FilledValue
	(*GetFilledValuesResponse)(nil),     // 20: docpipe.v1.GetFilledValuesResponse
	(*GetProfileRequest)(nil),           // 21: docpipe.v1.GetProfileRequest
	(*FieldSourceRef)(nil),              // 22: docpipe.v1.FieldSourceRef
	(*ProfileFieldEntry)(nil),           // 23: docpipe.v1.ProfileFieldEntry
	(*GetProfileResponse)(nil),          // 24: docpipe.v1.GetProfileResponse
	(*SetProfileFieldRequest)(nil),      // 25: docpipe.v1.SetProfileFieldRequest
	(*ClearManualEditRequest)(nil),      // 26: docpipe.v1.ClearManualEditRequest
	(*TemplateField)(nil),               // 27: docpipe.v1.TemplateField
	(*Template)(nil),                    // 28: docpipe.v1.Template
	(*CreateTemplateRequest)(nil),       // 29: docpipe.v1.CreateTemplateRequest
	(*GetTemplateRequest)(nil),          // 30: docpipe.v1.GetTemplateRequest
	(*ListTemplatesRequest)(nil),        // 31: docpipe.v1.ListTemplatesRequest
	(*ListTemplatesResponse)(nil),       // 32: docpipe.v1.ListTemplatesResponse
	(*UpdateTemplateRequest)(nil),       // 33: docpipe.v1.UpdateTemplateRequest
	(*TemplateResponse)(nil),            // 34: docpipe.v1.TemplateResponse
	(*ExportFilledValuesRequest)(nil),   // 35: docpipe.v1.ExportFilledValuesRequest
	(*ExportFilledValuesResponse)(nil),  // 36: docpipe.v1.ExportFilledValuesResponse
}
var file_docpipe_v1_docpipe_proto_depIdxs = []int32{
	1,  // 0: docpipe.v1.IngestDirectoryResponse.results:type_name -> docpipe.v1.IngestResponse
	15, // 1: docpipe.v1.ListJobsResponse.jobs:type_name -> docpipe.v1.JobStatusResponse
	11, // 2: docpipe.v1.Classification.alternatives:type_name -> docpipe.v1.CategoryAlternative
	13, // 3: docpipe.v1.QualityAssessment.issues:type_name -> docpipe.v1.QualityIssue
	10, // 4: docpipe.v1.JobStatusResponse.classification:type_name -> docpipe.v1.Classification
	12, // 5: docpipe.v1.JobStatusResponse.mappings:type_name -> docpipe.v1.FieldMapping
	14, // 6: docpipe.v1.JobStatusResponse.last_assessment:type_name -> docpipe.v1.QualityAssessment
	19, // 7: docpipe.v1.GetFilledValuesResponse.values:type_name -> docpipe.v1.FilledValue
	22, // 8: docpipe.v1.ProfileFieldEntry.sources:type_name -> docpipe.v1.FieldSourceRef
	23, // 9: docpipe.v1.GetProfileResponse.fields:type_name -> docpipe.v1.ProfileFieldEntry
	27, // 10: docpipe.v1.Template.fields:type_name -> docpipe.v1.TemplateField
	27, // 11: docpipe.v1.CreateTemplateRequest.fields:type_name -> docpipe.v1.TemplateField
	28, // 12: docpipe.v1.ListTemplatesResponse.templates:type_name -> docpipe.v1.Template
	27, // 13: docpipe.v1.UpdateTemplateRequest.fields:type_name -> docpipe.v1.TemplateField
	28, // 14: docpipe.v1.TemplateResponse.template:type_name -> docpipe.v1.Template
	0,  // 15: docpipe.v1.IngestionService.IngestFile:input_type -> docpipe.v1.IngestFileRequest
	2,  // 16: docpipe.v1.IngestionService.IngestDirectory:input_type -> docpipe.v1.IngestDirectoryRequest
	4,  // 17: docpipe.v1.PipelineService.SubmitDocument:input_type -> docpipe.v1.SubmitDocumentRequest
	5,  // 18: docpipe.v1.PipelineService.GetJobStatus:input_type -> docpipe.v1.GetJobStatusRequest
	5,  // 19: docpipe.v1.PipelineService.WatchJob:input_type -> docpipe.v1.GetJobStatusRequest
	6,  // 20: docpipe.v1.PipelineService.CancelJob:input_type -> docpipe.v1.CancelJobRequest
	8,  // 21: docpipe.v1.PipelineService.ListJobs:input_type -> docpipe.v1.ListJobsRequest
	16, // 22: docpipe.v1.PipelineService.OverrideMapping:input_type -> docpipe.v1.OverrideMappingRequest
	17, // 23: docpipe.v1.PipelineService.ResetMappingOverride:input_type -> docpipe.v1.ResetMappingOverrideRequest
	18, // 24: docpipe.v1.PipelineService.GetFilledValues:input_type -> docpipe.v1.GetFilledValuesRequest
	21, // 25: docpipe.v1.ProfileService.GetProfile:input_type -> docpipe.v1.GetProfileRequest
	25, // 26: docpipe.v1.ProfileService.SetProfileField:input_type -> docpipe.v1.SetProfileFieldRequest
	26, // 27: docpipe.v1.ProfileService.ClearManualEdit:input_type -> docpipe.v1.ClearManualEditRequest
	29, // 28: docpipe.v1.TemplateService.CreateTemplate:input_type -> docpipe.v1.CreateTemplateRequest
	30, // 29: docpipe.v1.TemplateService.GetTemplate:input_type -> docpipe.v1.GetTemplateRequest
	31, // 30: docpipe.v1.TemplateService.ListTemplates:input_type -> docpipe.v1.ListTemplatesRequest
	33, // 31: docpipe.v1.TemplateService.UpdateTemplate:input_type -> docpipe.v1.UpdateTemplateRequest
	35, // 32: docpipe.v1.ExportService.ExportFilledValues:input_type -> docpipe.v1.ExportFilledValuesRequest
	1,  // 33: docpipe.v1.IngestionService.IngestFile:output_type -> docpipe.v1.IngestResponse
	3,  // 34: docpipe.v1.IngestionService.IngestDirectory:output_type -> docpipe.v1.IngestDirectoryResponse
	15, // 35: docpipe.v1.PipelineService.SubmitDocument:output_type -> docpipe.v1.JobStatusResponse
	15, // 36: docpipe.v1.PipelineService.GetJobStatus:output_type -> docpipe.v1.JobStatusResponse
	15, // 37: docpipe.v1.PipelineService.WatchJob:output_type -> docpipe.v1.JobStatusResponse
	7,  // 38: docpipe.v1.PipelineService.CancelJob:output_type -> docpipe.v1.CancelJobResponse
	9,  // 39: docpipe.v1.PipelineService.ListJobs:output_type -> docpipe.v1.ListJobsResponse
	15, // 40: docpipe.v1.PipelineService.OverrideMapping:output_type -> docpipe.v1.JobStatusResponse
	15, // 41: docpipe.v1.PipelineService.ResetMappingOverride:output_type -> docpipe.v1.JobStatusResponse
	20, // 42: docpipe.v1.PipelineService.GetFilledValues:output_type -> docpipe.v1.GetFilledValuesResponse
	24, // 43: docpipe.v1.ProfileService.GetProfile:output_type -> docpipe.v1.GetProfileResponse
	24, // 44: docpipe.v1.ProfileService.SetProfileField:output_type -> docpipe.v1.GetProfileResponse
	24, // 45: docpipe.v1.ProfileService.ClearManualEdit:output_type -> docpipe.v1.GetProfileResponse
	34, // 46: docpipe.v1.TemplateService.CreateTemplate:output_type -> docpipe.v1.TemplateResponse
	34, // 47: docpipe.v1.TemplateService.GetTemplate:output_type -> docpipe.v1.TemplateResponse
	32, // 48: docpipe.v1.TemplateService.ListTemplates:output_type -> docpipe.v1.ListTemplatesResponse
	34, // 49: docpipe.v1.TemplateService.UpdateTemplate:output_type -> docpipe.v1.TemplateResponse
	36, // 50: docpipe.v1.ExportService.ExportFilledValues:output_type -> docpipe.v1.ExportFilledValuesResponse
	33, // [33:51] is the sub-list for method output_type
	15, // [15:33] is the sub-list for method input_type
	15, // [15:15] is the sub-list for extension type_name
	15, // [15:15] is the sub-list for extension extendee
	0,  // [0:15] is the sub-list for field type_name
}

func init() { file_docpipe_v1_docpipe_proto_init() }
func file_docpipe_v1_docpipe_proto_init() {
	if File_docpipe_v1_docpipe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docpipe_v1_docpipe_proto_rawDesc), len(file_docpipe_v1_docpipe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   37,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_docpipe_v1_docpipe_proto_goTypes,
		DependencyIndexes: file_docpipe_v1_docpipe_proto_depIdxs,
		MessageInfos:      file_docpipe_v1_docpipe_proto_msgTypes,
	}.Build()
	File_docpipe_v1_docpipe_proto = out.File
	file_docpipe_v1_docpipe_proto_goTypes = nil
	file_docpipe_v1_docpipe_proto_depIdxs = nil
}
