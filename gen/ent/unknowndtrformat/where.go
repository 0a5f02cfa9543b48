// Code generated by ent, DO NOT EDIT.

package unknowndtrformat

import (
	"dtr-engine/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLTE(FieldID, id))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldRawText, v))
}

// ImageData applies equality check predicate on the "image_data" field. It's identical to ImageDataEQ.
func ImageData(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldImageData, v))
}

// CompanyID applies equality check predicate on the "company_id" field. It's identical to CompanyIDEQ.
func CompanyID(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldCompanyID, v))
}

// IsProcessed applies equality check predicate on the "is_processed" field. It's identical to IsProcessedEQ.
func IsProcessed(v bool) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldIsProcessed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldCreatedAt, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldContainsFold(FieldRawText, v))
}

// ImageDataEQ applies the EQ predicate on the "image_data" field.
func ImageDataEQ(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldImageData, v))
}

// ImageDataNEQ applies the NEQ predicate on the "image_data" field.
func ImageDataNEQ(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldImageData, v))
}

// ImageDataIn applies the In predicate on the "image_data" field.
func ImageDataIn(vs ...[]byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIn(FieldImageData, vs...))
}

// ImageDataNotIn applies the NotIn predicate on the "image_data" field.
func ImageDataNotIn(vs ...[]byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotIn(FieldImageData, vs...))
}

// ImageDataGT applies the GT predicate on the "image_data" field.
func ImageDataGT(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGT(FieldImageData, v))
}

// ImageDataGTE applies the GTE predicate on the "image_data" field.
func ImageDataGTE(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGTE(FieldImageData, v))
}

// ImageDataLT applies the LT predicate on the "image_data" field.
func ImageDataLT(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLT(FieldImageData, v))
}

// ImageDataLTE applies the LTE predicate on the "image_data" field.
func ImageDataLTE(v []byte) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLTE(FieldImageData, v))
}

// ImageDataIsNil applies the IsNil predicate on the "image_data" field.
func ImageDataIsNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIsNull(FieldImageData))
}

// ImageDataNotNil applies the NotNil predicate on the "image_data" field.
func ImageDataNotNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotNull(FieldImageData))
}

// CompanyIDEQ applies the EQ predicate on the "company_id" field.
func CompanyIDEQ(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldCompanyID, v))
}

// CompanyIDNEQ applies the NEQ predicate on the "company_id" field.
func CompanyIDNEQ(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldCompanyID, v))
}

// CompanyIDIn applies the In predicate on the "company_id" field.
func CompanyIDIn(vs ...uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIn(FieldCompanyID, vs...))
}

// CompanyIDNotIn applies the NotIn predicate on the "company_id" field.
func CompanyIDNotIn(vs ...uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotIn(FieldCompanyID, vs...))
}

// CompanyIDGT applies the GT predicate on the "company_id" field.
func CompanyIDGT(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGT(FieldCompanyID, v))
}

// CompanyIDGTE applies the GTE predicate on the "company_id" field.
func CompanyIDGTE(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGTE(FieldCompanyID, v))
}

// CompanyIDLT applies the LT predicate on the "company_id" field.
func CompanyIDLT(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLT(FieldCompanyID, v))
}

// CompanyIDLTE applies the LTE predicate on the "company_id" field.
func CompanyIDLTE(v uuid.UUID) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLTE(FieldCompanyID, v))
}

// CompanyIDIsNil applies the IsNil predicate on the "company_id" field.
func CompanyIDIsNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIsNull(FieldCompanyID))
}

// CompanyIDNotNil applies the NotNil predicate on the "company_id" field.
func CompanyIDNotNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotNull(FieldCompanyID))
}

// ParsedDataIsNil applies the IsNil predicate on the "parsed_data" field.
func ParsedDataIsNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIsNull(FieldParsedData))
}

// ParsedDataNotNil applies the NotNil predicate on the "parsed_data" field.
func ParsedDataNotNil() predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotNull(FieldParsedData))
}

// IsProcessedEQ applies the EQ predicate on the "is_processed" field.
func IsProcessedEQ(v bool) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldIsProcessed, v))
}

// IsProcessedNEQ applies the NEQ predicate on the "is_processed" field.
func IsProcessedNEQ(v bool) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldIsProcessed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UnknownDtrFormat) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UnknownDtrFormat) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UnknownDtrFormat) predicate.UnknownDtrFormat {
	return predicate.UnknownDtrFormat(sql.NotPredicates(p))
}
