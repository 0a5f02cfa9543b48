// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: dtr/v1/dtr.proto

package dtrpb

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

type DtrFormat struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CompanyId       string                 `protobuf:"bytes,3,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"` // empty = usable across all companies
	Pattern         string                 `protobuf:"bytes,4,opt,name=pattern,proto3" json:"pattern,omitempty"`
	ExtractionRules map[string]string      `protobuf:"bytes,5,rep,name=extraction_rules,json=extractionRules,proto3" json:"extraction_rules,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Example         string                 `protobuf:"bytes,6,opt,name=example,proto3" json:"example,omitempty"`
	IsActive        bool                   `protobuf:"varint,7,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DtrFormat) Reset() {
	*x = DtrFormat{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DtrFormat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DtrFormat) ProtoMessage() {}

func (x *DtrFormat) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DtrFormat.ProtoReflect.Descriptor instead.
func (*DtrFormat) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{0}
}

func (x *DtrFormat) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DtrFormat) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DtrFormat) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *DtrFormat) GetPattern() string {
	if x != nil {
		return x.Pattern
	}
	return ""
}

func (x *DtrFormat) GetExtractionRules() map[string]string {
	if x != nil {
		return x.ExtractionRules
	}
	return nil
}

func (x *DtrFormat) GetExample() string {
	if x != nil {
		return x.Example
	}
	return ""
}

func (x *DtrFormat) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *DtrFormat) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Prediction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"`                      // YYYY-MM-DD
	TimeIn        string                 `protobuf:"bytes,2,opt,name=time_in,json=timeIn,proto3" json:"time_in,omitempty"`    // HH:MM, 24-hour
	TimeOut       string                 `protobuf:"bytes,3,opt,name=time_out,json=timeOut,proto3" json:"time_out,omitempty"` // HH:MM, 24-hour
	BreakHours    float64                `protobuf:"fixed64,4,opt,name=break_hours,json=breakHours,proto3" json:"break_hours,omitempty"`
	OvertimeHours float64                `protobuf:"fixed64,5,opt,name=overtime_hours,json=overtimeHours,proto3" json:"overtime_hours,omitempty"`
	RegularHours  float64                `protobuf:"fixed64,6,opt,name=regular_hours,json=regularHours,proto3" json:"regular_hours,omitempty"`
	EmployeeName  string                 `protobuf:"bytes,7,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	EmployeeId    int64                  `protobuf:"varint,8,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	HasEmployeeId bool                   `protobuf:"varint,9,opt,name=has_employee_id,json=hasEmployeeId,proto3" json:"has_employee_id,omitempty"`
	CompanyId     string                 `protobuf:"bytes,10,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	FormatId      string                 `protobuf:"bytes,11,opt,name=format_id,json=formatId,proto3" json:"format_id,omitempty"`
	Confidence    float32                `protobuf:"fixed32,12,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,13,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	IsNewFormat   bool                   `protobuf:"varint,14,opt,name=is_new_format,json=isNewFormat,proto3" json:"is_new_format,omitempty"`
	RawText       string                 `protobuf:"bytes,15,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Prediction) Reset() {
	*x = Prediction{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Prediction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Prediction) ProtoMessage() {}

func (x *Prediction) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Prediction.ProtoReflect.Descriptor instead.
func (*Prediction) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{1}
}

func (x *Prediction) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *Prediction) GetTimeIn() string {
	if x != nil {
		return x.TimeIn
	}
	return ""
}

func (x *Prediction) GetTimeOut() string {
	if x != nil {
		return x.TimeOut
	}
	return ""
}

func (x *Prediction) GetBreakHours() float64 {
	if x != nil {
		return x.BreakHours
	}
	return 0
}

func (x *Prediction) GetOvertimeHours() float64 {
	if x != nil {
		return x.OvertimeHours
	}
	return 0
}

func (x *Prediction) GetRegularHours() float64 {
	if x != nil {
		return x.RegularHours
	}
	return 0
}

func (x *Prediction) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *Prediction) GetEmployeeId() int64 {
	if x != nil {
		return x.EmployeeId
	}
	return 0
}

func (x *Prediction) GetHasEmployeeId() bool {
	if x != nil {
		return x.HasEmployeeId
	}
	return false
}

func (x *Prediction) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *Prediction) GetFormatId() string {
	if x != nil {
		return x.FormatId
	}
	return ""
}

func (x *Prediction) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Prediction) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *Prediction) GetIsNewFormat() bool {
	if x != nil {
		return x.IsNewFormat
	}
	return false
}

func (x *Prediction) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

type PendingIntake struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	CompanyId     string                 `protobuf:"bytes,3,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	ParsedData    map[string]string      `protobuf:"bytes,4,rep,name=parsed_data,json=parsedData,proto3" json:"parsed_data,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	IsProcessed   bool                   `protobuf:"varint,5,opt,name=is_processed,json=isProcessed,proto3" json:"is_processed,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PendingIntake) Reset() {
	*x = PendingIntake{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PendingIntake) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PendingIntake) ProtoMessage() {}

func (x *PendingIntake) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PendingIntake.ProtoReflect.Descriptor instead.
func (*PendingIntake) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{2}
}

func (x *PendingIntake) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PendingIntake) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *PendingIntake) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *PendingIntake) GetParsedData() map[string]string {
	if x != nil {
		return x.ParsedData
	}
	return nil
}

func (x *PendingIntake) GetIsProcessed() bool {
	if x != nil {
		return x.IsProcessed
	}
	return false
}

func (x *PendingIntake) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ParseTextRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawText       string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"` // optional scope hint
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseTextRequest) Reset() {
	*x = ParseTextRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseTextRequest) ProtoMessage() {}

func (x *ParseTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseTextRequest.ProtoReflect.Descriptor instead.
func (*ParseTextRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{3}
}

func (x *ParseTextRequest) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ParseTextRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ParseDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Image         []byte                 `protobuf:"bytes,1,opt,name=image,proto3" json:"image,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseDocumentRequest) Reset() {
	*x = ParseDocumentRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseDocumentRequest) ProtoMessage() {}

func (x *ParseDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseDocumentRequest.ProtoReflect.Descriptor instead.
func (*ParseDocumentRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{4}
}

func (x *ParseDocumentRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *ParseDocumentRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ParseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Prediction    *Prediction            `protobuf:"bytes,1,opt,name=prediction,proto3" json:"prediction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseResponse) Reset() {
	*x = ParseResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseResponse) ProtoMessage() {}

func (x *ParseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseResponse.ProtoReflect.Descriptor instead.
func (*ParseResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{5}
}

func (x *ParseResponse) GetPrediction() *Prediction {
	if x != nil {
		return x.Prediction
	}
	return nil
}

type ListFormatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CompanyId     string                 `protobuf:"bytes,1,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"` // optional; empty lists all scopes
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFormatsRequest) Reset() {
	*x = ListFormatsRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormatsRequest) ProtoMessage() {}

func (x *ListFormatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormatsRequest.ProtoReflect.Descriptor instead.
func (*ListFormatsRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{6}
}

func (x *ListFormatsRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ListFormatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Formats       []*DtrFormat           `protobuf:"bytes,1,rep,name=formats,proto3" json:"formats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFormatsResponse) Reset() {
	*x = ListFormatsResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFormatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFormatsResponse) ProtoMessage() {}

func (x *ListFormatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFormatsResponse.ProtoReflect.Descriptor instead.
func (*ListFormatsResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{7}
}

func (x *ListFormatsResponse) GetFormats() []*DtrFormat {
	if x != nil {
		return x.Formats
	}
	return nil
}

type CreateFormatRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CompanyId       string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	Pattern         string                 `protobuf:"bytes,3,opt,name=pattern,proto3" json:"pattern,omitempty"`
	ExtractionRules map[string]string      `protobuf:"bytes,4,rep,name=extraction_rules,json=extractionRules,proto3" json:"extraction_rules,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	Example         string                 `protobuf:"bytes,5,opt,name=example,proto3" json:"example,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateFormatRequest) Reset() {
	*x = CreateFormatRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFormatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFormatRequest) ProtoMessage() {}

func (x *CreateFormatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFormatRequest.ProtoReflect.Descriptor instead.
func (*CreateFormatRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{8}
}

func (x *CreateFormatRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFormatRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

func (x *CreateFormatRequest) GetPattern() string {
	if x != nil {
		return x.Pattern
	}
	return ""
}

func (x *CreateFormatRequest) GetExtractionRules() map[string]string {
	if x != nil {
		return x.ExtractionRules
	}
	return nil
}

func (x *CreateFormatRequest) GetExample() string {
	if x != nil {
		return x.Example
	}
	return ""
}

type CreateFormatResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        *DtrFormat             `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFormatResponse) Reset() {
	*x = CreateFormatResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFormatResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFormatResponse) ProtoMessage() {}

func (x *CreateFormatResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFormatResponse.ProtoReflect.Descriptor instead.
func (*CreateFormatResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{9}
}

func (x *CreateFormatResponse) GetFormat() *DtrFormat {
	if x != nil {
		return x.Format
	}
	return nil
}

type SetFormatActiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	IsActive      bool                   `protobuf:"varint,2,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFormatActiveRequest) Reset() {
	*x = SetFormatActiveRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFormatActiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFormatActiveRequest) ProtoMessage() {}

func (x *SetFormatActiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFormatActiveRequest.ProtoReflect.Descriptor instead.
func (*SetFormatActiveRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{10}
}

func (x *SetFormatActiveRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SetFormatActiveRequest) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type SetFormatActiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        *DtrFormat             `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFormatActiveResponse) Reset() {
	*x = SetFormatActiveResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFormatActiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFormatActiveResponse) ProtoMessage() {}

func (x *SetFormatActiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFormatActiveResponse.ProtoReflect.Descriptor instead.
func (*SetFormatActiveResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{11}
}

func (x *SetFormatActiveResponse) GetFormat() *DtrFormat {
	if x != nil {
		return x.Format
	}
	return nil
}

type ListPendingIntakesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingIntakesRequest) Reset() {
	*x = ListPendingIntakesRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingIntakesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingIntakesRequest) ProtoMessage() {}

func (x *ListPendingIntakesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingIntakesRequest.ProtoReflect.Descriptor instead.
func (*ListPendingIntakesRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{12}
}

type ListPendingIntakesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Intakes       []*PendingIntake       `protobuf:"bytes,1,rep,name=intakes,proto3" json:"intakes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPendingIntakesResponse) Reset() {
	*x = ListPendingIntakesResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPendingIntakesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPendingIntakesResponse) ProtoMessage() {}

func (x *ListPendingIntakesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPendingIntakesResponse.ProtoReflect.Descriptor instead.
func (*ListPendingIntakesResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{13}
}

func (x *ListPendingIntakesResponse) GetIntakes() []*PendingIntake {
	if x != nil {
		return x.Intakes
	}
	return nil
}

type ApproveIntakeRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	IntakeId        string                 `protobuf:"bytes,1,opt,name=intake_id,json=intakeId,proto3" json:"intake_id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Pattern         string                 `protobuf:"bytes,3,opt,name=pattern,proto3" json:"pattern,omitempty"`
	ExtractionRules map[string]string      `protobuf:"bytes,4,rep,name=extraction_rules,json=extractionRules,proto3" json:"extraction_rules,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	CompanyId       string                 `protobuf:"bytes,5,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ApproveIntakeRequest) Reset() {
	*x = ApproveIntakeRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveIntakeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveIntakeRequest) ProtoMessage() {}

func (x *ApproveIntakeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveIntakeRequest.ProtoReflect.Descriptor instead.
func (*ApproveIntakeRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{14}
}

func (x *ApproveIntakeRequest) GetIntakeId() string {
	if x != nil {
		return x.IntakeId
	}
	return ""
}

func (x *ApproveIntakeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ApproveIntakeRequest) GetPattern() string {
	if x != nil {
		return x.Pattern
	}
	return ""
}

func (x *ApproveIntakeRequest) GetExtractionRules() map[string]string {
	if x != nil {
		return x.ExtractionRules
	}
	return nil
}

func (x *ApproveIntakeRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ApproveIntakeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Format        *DtrFormat             `protobuf:"bytes,1,opt,name=format,proto3" json:"format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApproveIntakeResponse) Reset() {
	*x = ApproveIntakeResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApproveIntakeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApproveIntakeResponse) ProtoMessage() {}

func (x *ApproveIntakeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApproveIntakeResponse.ProtoReflect.Descriptor instead.
func (*ApproveIntakeResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{15}
}

func (x *ApproveIntakeResponse) GetFormat() *DtrFormat {
	if x != nil {
		return x.Format
	}
	return nil
}

type ExportAttendanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RawTexts      []string               `protobuf:"bytes,1,rep,name=raw_texts,json=rawTexts,proto3" json:"raw_texts,omitempty"`
	CompanyId     string                 `protobuf:"bytes,2,opt,name=company_id,json=companyId,proto3" json:"company_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAttendanceRequest) Reset() {
	*x = ExportAttendanceRequest{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAttendanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAttendanceRequest) ProtoMessage() {}

func (x *ExportAttendanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAttendanceRequest.ProtoReflect.Descriptor instead.
func (*ExportAttendanceRequest) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{16}
}

func (x *ExportAttendanceRequest) GetRawTexts() []string {
	if x != nil {
		return x.RawTexts
	}
	return nil
}

func (x *ExportAttendanceRequest) GetCompanyId() string {
	if x != nil {
		return x.CompanyId
	}
	return ""
}

type ExportAttendanceResponse struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Xlsx             []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	NeedsReviewCount int32                  `protobuf:"varint,2,opt,name=needs_review_count,json=needsReviewCount,proto3" json:"needs_review_count,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ExportAttendanceResponse) Reset() {
	*x = ExportAttendanceResponse{}
	mi := &file_dtr_v1_dtr_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAttendanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAttendanceResponse) ProtoMessage() {}

func (x *ExportAttendanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_dtr_v1_dtr_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAttendanceResponse.ProtoReflect.Descriptor instead.
func (*ExportAttendanceResponse) Descriptor() ([]byte, []int) {
	return file_dtr_v1_dtr_proto_rawDescGZIP(), []int{17}
}

func (x *ExportAttendanceResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportAttendanceResponse) GetNeedsReviewCount() int32 {
	if x != nil {
		return x.NeedsReviewCount
	}
	return 0
}

var File_dtr_v1_dtr_proto protoreflect.FileDescriptor

const file_dtr_v1_dtr_proto_rawDesc = "" +
	"\n" +
	"\x10dtr/v1/dtr.proto\x12\x06dtr.v1\"\xd5\x02\n" +
	"\tDtrFormat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"company_id\x18\x03 \x01(\tR\tcompanyId\x12\x18\n" +
	"\apattern\x18\x04 \x01(\tR\apattern\x12Q\n" +
	"\x10extraction_rules\x18\x05 \x03(\v2&.dtr.v1.DtrFormat.ExtractionRulesEntryR\x0fextractionRules\x12\x18\n" +
	"\aexample\x18\x06 \x01(\tR\aexample\x12\x1b\n" +
	"\tis_active\x18\a \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x1aB\n" +
	"\x14ExtractionRulesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xed\x03\n" +
	"\n" +
	"Prediction\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x17\n" +
	"\atime_in\x18\x02 \x01(\tR\x06timeIn\x12\x19\n" +
	"\btime_out\x18\x03 \x01(\tR\atimeOut\x12\x1f\n" +
	"\vbreak_hours\x18\x04 \x01(\x01R\n" +
	"breakHours\x12%\n" +
	"\x0eovertime_hours\x18\x05 \x01(\x01R\rovertimeHours\x12#\n" +
	"\rregular_hours\x18\x06 \x01(\x01R\fregularHours\x12#\n" +
	"\remployee_name\x18\a \x01(\tR\femployeeName\x12\x1f\n" +
	"\vemployee_id\x18\b \x01(\x03R\n" +
	"employeeId\x12&\n" +
	"\x0fhas_employee_id\x18\t \x01(\bR\rhasEmployeeId\x12\x1d\n" +
	"\n" +
	"company_id\x18\n" +
	" \x01(\tR\tcompanyId\x12\x1b\n" +
	"\tformat_id\x18\v \x01(\tR\bformatId\x12\x1e\n" +
	"\n" +
	"confidence\x18\f \x01(\x02R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\r \x01(\bR\vneedsReview\x12\"\n" +
	"\ris_new_format\x18\x0e \x01(\bR\visNewFormat\x12\x19\n" +
	"\braw_text\x18\x0f \x01(\tR\arawText\"\xa2\x02\n" +
	"\rPendingIntake\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\x12\x1d\n" +
	"\n" +
	"company_id\x18\x03 \x01(\tR\tcompanyId\x12F\n" +
	"\vparsed_data\x18\x04 \x03(\v2%.dtr.v1.PendingIntake.ParsedDataEntryR\n" +
	"parsedData\x12!\n" +
	"\fis_processed\x18\x05 \x01(\bR\visProcessed\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x1a=\n" +
	"\x0fParsedDataEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"L\n" +
	"\x10ParseTextRequest\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\"K\n" +
	"\x14ParseDocumentRequest\x12\x14\n" +
	"\x05image\x18\x01 \x01(\fR\x05image\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\"C\n" +
	"\rParseResponse\x122\n" +
	"\n" +
	"prediction\x18\x01 \x01(\v2\x12.dtr.v1.PredictionR\n" +
	"prediction\"3\n" +
	"\x12ListFormatsRequest\x12\x1d\n" +
	"\n" +
	"company_id\x18\x01 \x01(\tR\tcompanyId\"B\n" +
	"\x13ListFormatsResponse\x12+\n" +
	"\aformats\x18\x01 \x03(\v2\x11.dtr.v1.DtrFormatR\aformats\"\x9d\x02\n" +
	"\x13CreateFormatRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\x12\x18\n" +
	"\apattern\x18\x03 \x01(\tR\apattern\x12[\n" +
	"\x10extraction_rules\x18\x04 \x03(\v20.dtr.v1.CreateFormatRequest.ExtractionRulesEntryR\x0fextractionRules\x12\x18\n" +
	"\aexample\x18\x05 \x01(\tR\aexample\x1aB\n" +
	"\x14ExtractionRulesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"A\n" +
	"\x14CreateFormatResponse\x12)\n" +
	"\x06format\x18\x01 \x01(\v2\x11.dtr.v1.DtrFormatR\x06format\"E\n" +
	"\x16SetFormatActiveRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tis_active\x18\x02 \x01(\bR\bisActive\"D\n" +
	"\x17SetFormatActiveResponse\x12)\n" +
	"\x06format\x18\x01 \x01(\v2\x11.dtr.v1.DtrFormatR\x06format\"\x1b\n" +
	"\x19ListPendingIntakesRequest\"M\n" +
	"\x1aListPendingIntakesResponse\x12/\n" +
	"\aintakes\x18\x01 \x03(\v2\x15.dtr.v1.PendingIntakeR\aintakes\"\xa2\x02\n" +
	"\x14ApproveIntakeRequest\x12\x1b\n" +
	"\tintake_id\x18\x01 \x01(\tR\bintakeId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\apattern\x18\x03 \x01(\tR\apattern\x12\\\n" +
	"\x10extraction_rules\x18\x04 \x03(\v21.dtr.v1.ApproveIntakeRequest.ExtractionRulesEntryR\x0fextractionRules\x12\x1d\n" +
	"\n" +
	"company_id\x18\x05 \x01(\tR\tcompanyId\x1aB\n" +
	"\x14ExtractionRulesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"B\n" +
	"\x15ApproveIntakeResponse\x12)\n" +
	"\x06format\x18\x01 \x01(\v2\x11.dtr.v1.DtrFormatR\x06format\"U\n" +
	"\x17ExportAttendanceRequest\x12\x1b\n" +
	"\traw_texts\x18\x01 \x03(\tR\brawTexts\x12\x1d\n" +
	"\n" +
	"company_id\x18\x02 \x01(\tR\tcompanyId\"\\\n" +
	"\x18ExportAttendanceResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12,\n" +
	"\x12needs_review_count\x18\x02 \x01(\x05R\x10needsReviewCount2\xf9\x04\n" +
	"\n" +
	"DtrService\x12<\n" +
	"\tParseText\x12\x18.dtr.v1.ParseTextRequest\x1a\x15.dtr.v1.ParseResponse\x12D\n" +
	"\rParseDocument\x12\x1c.dtr.v1.ParseDocumentRequest\x1a\x15.dtr.v1.ParseResponse\x12F\n" +
	"\vListFormats\x12\x1a.dtr.v1.ListFormatsRequest\x1a\x1b.dtr.v1.ListFormatsResponse\x12I\n" +
	"\fCreateFormat\x12\x1b.dtr.v1.CreateFormatRequest\x1a\x1c.dtr.v1.CreateFormatResponse\x12R\n" +
	"\x0fSetFormatActive\x12\x1e.dtr.v1.SetFormatActiveRequest\x1a\x1f.dtr.v1.SetFormatActiveResponse\x12[\n" +
	"\x12ListPendingIntakes\x12!.dtr.v1.ListPendingIntakesRequest\x1a\".dtr.v1.ListPendingIntakesResponse\x12L\n" +
	"\rApproveIntake\x12\x1c.dtr.v1.ApproveIntakeRequest\x1a\x1d.dtr.v1.ApproveIntakeResponse\x12U\n" +
	"\x10ExportAttendance\x12\x1f.dtr.v1.ExportAttendanceRequest\x1a .dtr.v1.ExportAttendanceResponseB#Z!dtr-engine/gen/proto/dtr/v1;dtrpbb\x06proto3"

var (
	file_dtr_v1_dtr_proto_rawDescOnce sync.Once
	file_dtr_v1_dtr_proto_rawDescData []byte
)

func file_dtr_v1_dtr_proto_rawDescGZIP() []byte {
	file_dtr_v1_dtr_proto_rawDescOnce.Do(func() {
		file_dtr_v1_dtr_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_dtr_v1_dtr_proto_rawDesc), len(file_dtr_v1_dtr_proto_rawDesc)))
	})
	return file_dtr_v1_dtr_proto_rawDescData
}

var file_dtr_v1_dtr_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_dtr_v1_dtr_proto_goTypes = []any{
	(*DtrFormat)(nil),                  // 0: dtr.v1.DtrFormat
	(*Prediction)(nil),                 // 1: dtr.v1.Prediction
	(*PendingIntake)(nil),              // 2: dtr.v1.PendingIntake
	(*ParseTextRequest)(nil),           // 3: dtr.v1.ParseTextRequest
	(*ParseDocumentRequest)(nil),       // 4: dtr.v1.ParseDocumentRequest
	(*ParseResponse)(nil),              // 5: dtr.v1.ParseResponse
	(*ListFormatsRequest)(nil),         // 6: dtr.v1.ListFormatsRequest
	(*ListFormatsResponse)(nil),        // 7: dtr.v1.ListFormatsResponse
	(*CreateFormatRequest)(nil),        // 8: dtr.v1.CreateFormatRequest
	(*CreateFormatResponse)(nil),       // 9: dtr.v1.CreateFormatResponse
	(*SetFormatActiveRequest)(nil),     // 10: dtr.v1.SetFormatActiveRequest
	(*SetFormatActiveResponse)(nil),    // 11: dtr.v1.SetFormatActiveResponse
	(*ListPendingIntakesRequest)(nil),  // 12: dtr.v1.ListPendingIntakesRequest
	(*ListPendingIntakesResponse)(nil), // 13: dtr.v1.ListPendingIntakesResponse
	(*ApproveIntakeRequest)(nil),       // 14: dtr.v1.ApproveIntakeRequest
	(*ApproveIntakeResponse)(nil),      // 15: dtr.v1.ApproveIntakeResponse
	(*ExportAttendanceRequest)(nil),    // 16: dtr.v1.ExportAttendanceRequest
	(*ExportAttendanceResponse)(nil),   // 17: dtr.v1.ExportAttendanceResponse
	nil,                                // 18: dtr.v1.DtrFormat.ExtractionRulesEntry
	nil,                                // 19: dtr.v1.PendingIntake.ParsedDataEntry
	nil,                                // 20: dtr.v1.CreateFormatRequest.ExtractionRulesEntry
	nil,                                // 21: dtr.v1.ApproveIntakeRequest.ExtractionRulesEntry
}
var file_dtr_v1_dtr_proto_depIdxs = []int32{
	18, // 0: dtr.v1.DtrFormat.extraction_rules:type_name -> dtr.v1.DtrFormat.ExtractionRulesEntry
	19, // 1: dtr.v1.PendingIntake.parsed_data:type_name -> dtr.v1.PendingIntake.ParsedDataEntry
	1,  // 2: dtr.v1.ParseResponse.prediction:type_name -> dtr.v1.Prediction
	0,  // 3: dtr.v1.ListFormatsResponse.formats:type_name -> dtr.v1.DtrFormat
	20, // 4: dtr.v1.CreateFormatRequest.extraction_rules:type_name -> dtr.v1.CreateFormatRequest.ExtractionRulesEntry
	0,  // 5: dtr.v1.CreateFormatResponse.format:type_name -> dtr.v1.DtrFormat
	0,  // 6: dtr.v1.SetFormatActiveResponse.format:type_name -> dtr.v1.DtrFormat
	2,  // 7: dtr.v1.ListPendingIntakesResponse.intakes:type_name -> dtr.v1.PendingIntake
	21, // 8: dtr.v1.ApproveIntakeRequest.extraction_rules:type_name -> dtr.v1.ApproveIntakeRequest.ExtractionRulesEntry
	0,  // 9: dtr.v1.ApproveIntakeResponse.format:type_name -> dtr.v1.DtrFormat
	3,  // 10: dtr.v1.DtrService.ParseText:input_type -> dtr.v1.ParseTextRequest
	4,  // 11: dtr.v1.DtrService.ParseDocument:input_type -> dtr.v1.ParseDocumentRequest
	6,  // 12: dtr.v1.DtrService.ListFormats:input_type -> dtr.v1.ListFormatsRequest
	8,  // 13: dtr.v1.DtrService.CreateFormat:input_type -> dtr.v1.CreateFormatRequest
	10, // 14: dtr.v1.DtrService.SetFormatActive:input_type -> dtr.v1.SetFormatActiveRequest
	12, // 15: dtr.v1.DtrService.ListPendingIntakes:input_type -> dtr.v1.ListPendingIntakesRequest
	14, // 16: dtr.v1.DtrService.ApproveIntake:input_type -> dtr.v1.ApproveIntakeRequest
	16, // 17: dtr.v1.DtrService.ExportAttendance:input_type -> dtr.v1.ExportAttendanceRequest
	5,  // 18: dtr.v1.DtrService.ParseText:output_type -> dtr.v1.ParseResponse
	5,  // 19: dtr.v1.DtrService.ParseDocument:output_type -> dtr.v1.ParseResponse
	7,  // 20: dtr.v1.DtrService.ListFormats:output_type -> dtr.v1.ListFormatsResponse
	9,  // 21: dtr.v1.DtrService.CreateFormat:output_type -> dtr.v1.CreateFormatResponse
	11, // 22: dtr.v1.DtrService.SetFormatActive:output_type -> dtr.v1.SetFormatActiveResponse
	13, // 23: dtr.v1.DtrService.ListPendingIntakes:output_type -> dtr.v1.ListPendingIntakesResponse
	15, // 24: dtr.v1.DtrService.ApproveIntake:output_type -> dtr.v1.ApproveIntakeResponse
	17, // 25: dtr.v1.DtrService.ExportAttendance:output_type -> dtr.v1.ExportAttendanceResponse
	18, // [18:26] is the sub-list for method output_type
	10, // [10:18] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_dtr_v1_dtr_proto_init() }
func file_dtr_v1_dtr_proto_init() {
	if File_dtr_v1_dtr_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_dtr_v1_dtr_proto_rawDesc), len(file_dtr_v1_dtr_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_dtr_v1_dtr_proto_goTypes,
		DependencyIndexes: file_dtr_v1_dtr_proto_depIdxs,
		MessageInfos:      file_dtr_v1_dtr_proto_msgTypes,
	}.Build()
	File_dtr_v1_dtr_proto = out.File
	file_dtr_v1_dtr_proto_goTypes = nil
	file_dtr_v1_dtr_proto_depIdxs = nil
}
