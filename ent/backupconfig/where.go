// Code generated by ent, DO NOT EDIT.

package backupconfig

import (
	"notted/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldID, id))
}

// WebdavURL applies equality check predicate on the "webdav_url" field. It's identical to WebdavURLEQ.
func WebdavURL(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavURL, v))
}

// WebdavUser applies equality check predicate on the "webdav_user" field. It's identical to WebdavUserEQ.
func WebdavUser(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavUser, v))
}

// WebdavPassword applies equality check predicate on the "webdav_password" field. It's identical to WebdavPasswordEQ.
func WebdavPassword(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavPassword, v))
}

// S3Endpoint applies equality check predicate on the "s3_endpoint" field. It's identical to S3EndpointEQ.
func S3Endpoint(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Endpoint, v))
}

// S3Region applies equality check predicate on the "s3_region" field. It's identical to S3RegionEQ.
func S3Region(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Region, v))
}

// S3Bucket applies equality check predicate on the "s3_bucket" field. It's identical to S3BucketEQ.
func S3Bucket(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Bucket, v))
}

// S3AccessKey applies equality check predicate on the "s3_access_key" field. It's identical to S3AccessKeyEQ.
func S3AccessKey(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3AccessKey, v))
}

// S3SecretKey applies equality check predicate on the "s3_secret_key" field. It's identical to S3SecretKeyEQ.
func S3SecretKey(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3SecretKey, v))
}

// AutoBackupEnabled applies equality check predicate on the "auto_backup_enabled" field. It's identical to AutoBackupEnabledEQ.
func AutoBackupEnabled(v bool) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldAutoBackupEnabled, v))
}

// BackupSchedule applies equality check predicate on the "backup_schedule" field. It's identical to BackupScheduleEQ.
func BackupSchedule(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldBackupSchedule, v))
}

// LastBackupAt applies equality check predicate on the "last_backup_at" field. It's identical to LastBackupAtEQ.
func LastBackupAt(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldLastBackupAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// WebdavURLEQ applies the EQ predicate on the "webdav_url" field.
func WebdavURLEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavURL, v))
}

// WebdavURLNEQ applies the NEQ predicate on the "webdav_url" field.
func WebdavURLNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldWebdavURL, v))
}

// WebdavURLIn applies the In predicate on the "webdav_url" field.
func WebdavURLIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldWebdavURL, vs...))
}

// WebdavURLNotIn applies the NotIn predicate on the "webdav_url" field.
func WebdavURLNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldWebdavURL, vs...))
}

// WebdavURLGT applies the GT predicate on the "webdav_url" field.
func WebdavURLGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldWebdavURL, v))
}

// WebdavURLGTE applies the GTE predicate on the "webdav_url" field.
func WebdavURLGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldWebdavURL, v))
}

// WebdavURLLT applies the LT predicate on the "webdav_url" field.
func WebdavURLLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldWebdavURL, v))
}

// WebdavURLLTE applies the LTE predicate on the "webdav_url" field.
func WebdavURLLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldWebdavURL, v))
}

// WebdavURLContains applies the Contains predicate on the "webdav_url" field.
func WebdavURLContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldWebdavURL, v))
}

// WebdavURLHasPrefix applies the HasPrefix predicate on the "webdav_url" field.
func WebdavURLHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldWebdavURL, v))
}

// WebdavURLHasSuffix applies the HasSuffix predicate on the "webdav_url" field.
func WebdavURLHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldWebdavURL, v))
}

// WebdavURLIsNil applies the IsNil predicate on the "webdav_url" field.
func WebdavURLIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldWebdavURL))
}

// WebdavURLNotNil applies the NotNil predicate on the "webdav_url" field.
func WebdavURLNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldWebdavURL))
}

// WebdavURLEqualFold applies the EqualFold predicate on the "webdav_url" field.
func WebdavURLEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldWebdavURL, v))
}

// WebdavURLContainsFold applies the ContainsFold predicate on the "webdav_url" field.
func WebdavURLContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldWebdavURL, v))
}

// WebdavUserEQ applies the EQ predicate on the "webdav_user" field.
func WebdavUserEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavUser, v))
}

// WebdavUserNEQ applies the NEQ predicate on the "webdav_user" field.
func WebdavUserNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldWebdavUser, v))
}

// WebdavUserIn applies the In predicate on the "webdav_user" field.
func WebdavUserIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldWebdavUser, vs...))
}

// WebdavUserNotIn applies the NotIn predicate on the "webdav_user" field.
func WebdavUserNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldWebdavUser, vs...))
}

// WebdavUserGT applies the GT predicate on the "webdav_user" field.
func WebdavUserGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldWebdavUser, v))
}

// WebdavUserGTE applies the GTE predicate on the "webdav_user" field.
func WebdavUserGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldWebdavUser, v))
}

// WebdavUserLT applies the LT predicate on the "webdav_user" field.
func WebdavUserLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldWebdavUser, v))
}

// WebdavUserLTE applies the LTE predicate on the "webdav_user" field.
func WebdavUserLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldWebdavUser, v))
}

// WebdavUserContains applies the Contains predicate on the "webdav_user" field.
func WebdavUserContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldWebdavUser, v))
}

// WebdavUserHasPrefix applies the HasPrefix predicate on the "webdav_user" field.
func WebdavUserHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldWebdavUser, v))
}

// WebdavUserHasSuffix applies the HasSuffix predicate on the "webdav_user" field.
func WebdavUserHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldWebdavUser, v))
}

// WebdavUserIsNil applies the IsNil predicate on the "webdav_user" field.
func WebdavUserIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldWebdavUser))
}

// WebdavUserNotNil applies the NotNil predicate on the "webdav_user" field.
func WebdavUserNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldWebdavUser))
}

// WebdavUserEqualFold applies the EqualFold predicate on the "webdav_user" field.
func WebdavUserEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldWebdavUser, v))
}

// WebdavUserContainsFold applies the ContainsFold predicate on the "webdav_user" field.
func WebdavUserContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldWebdavUser, v))
}

// WebdavPasswordEQ applies the EQ predicate on the "webdav_password" field.
func WebdavPasswordEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldWebdavPassword, v))
}

// WebdavPasswordNEQ applies the NEQ predicate on the "webdav_password" field.
func WebdavPasswordNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldWebdavPassword, v))
}

// WebdavPasswordIn applies the In predicate on the "webdav_password" field.
func WebdavPasswordIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldWebdavPassword, vs...))
}

// WebdavPasswordNotIn applies the NotIn predicate on the "webdav_password" field.
func WebdavPasswordNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldWebdavPassword, vs...))
}

// WebdavPasswordGT applies the GT predicate on the "webdav_password" field.
func WebdavPasswordGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldWebdavPassword, v))
}

// WebdavPasswordGTE applies the GTE predicate on the "webdav_password" field.
func WebdavPasswordGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldWebdavPassword, v))
}

// WebdavPasswordLT applies the LT predicate on the "webdav_password" field.
func WebdavPasswordLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldWebdavPassword, v))
}

// WebdavPasswordLTE applies the LTE predicate on the "webdav_password" field.
func WebdavPasswordLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldWebdavPassword, v))
}

// WebdavPasswordContains applies the Contains predicate on the "webdav_password" field.
func WebdavPasswordContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldWebdavPassword, v))
}

// WebdavPasswordHasPrefix applies the HasPrefix predicate on the "webdav_password" field.
func WebdavPasswordHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldWebdavPassword, v))
}

// WebdavPasswordHasSuffix applies the HasSuffix predicate on the "webdav_password" field.
func WebdavPasswordHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldWebdavPassword, v))
}

// WebdavPasswordIsNil applies the IsNil predicate on the "webdav_password" field.
func WebdavPasswordIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldWebdavPassword))
}

// WebdavPasswordNotNil applies the NotNil predicate on the "webdav_password" field.
func WebdavPasswordNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldWebdavPassword))
}

// WebdavPasswordEqualFold applies the EqualFold predicate on the "webdav_password" field.
func WebdavPasswordEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldWebdavPassword, v))
}

// WebdavPasswordContainsFold applies the ContainsFold predicate on the "webdav_password" field.
func WebdavPasswordContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldWebdavPassword, v))
}

// S3EndpointEQ applies the EQ predicate on the "s3_endpoint" field.
func S3EndpointEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Endpoint, v))
}

// S3EndpointNEQ applies the NEQ predicate on the "s3_endpoint" field.
func S3EndpointNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldS3Endpoint, v))
}

// S3EndpointIn applies the In predicate on the "s3_endpoint" field.
func S3EndpointIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldS3Endpoint, vs...))
}

// S3EndpointNotIn applies the NotIn predicate on the "s3_endpoint" field.
func S3EndpointNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldS3Endpoint, vs...))
}

// S3EndpointGT applies the GT predicate on the "s3_endpoint" field.
func S3EndpointGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldS3Endpoint, v))
}

// S3EndpointGTE applies the GTE predicate on the "s3_endpoint" field.
func S3EndpointGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldS3Endpoint, v))
}

// S3EndpointLT applies the LT predicate on the "s3_endpoint" field.
func S3EndpointLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldS3Endpoint, v))
}

// S3EndpointLTE applies the LTE predicate on the "s3_endpoint" field.
func S3EndpointLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldS3Endpoint, v))
}

// S3EndpointContains applies the Contains predicate on the "s3_endpoint" field.
func S3EndpointContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldS3Endpoint, v))
}

// S3EndpointHasPrefix applies the HasPrefix predicate on the "s3_endpoint" field.
func S3EndpointHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldS3Endpoint, v))
}

// S3EndpointHasSuffix applies the HasSuffix predicate on the "s3_endpoint" field.
func S3EndpointHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldS3Endpoint, v))
}

// S3EndpointIsNil applies the IsNil predicate on the "s3_endpoint" field.
func S3EndpointIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldS3Endpoint))
}

// S3EndpointNotNil applies the NotNil predicate on the "s3_endpoint" field.
func S3EndpointNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldS3Endpoint))
}

// S3EndpointEqualFold applies the EqualFold predicate on the "s3_endpoint" field.
func S3EndpointEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldS3Endpoint, v))
}

// S3EndpointContainsFold applies the ContainsFold predicate on the "s3_endpoint" field.
func S3EndpointContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldS3Endpoint, v))
}

// S3RegionEQ applies the EQ predicate on the "s3_region" field.
func S3RegionEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Region, v))
}

// S3RegionNEQ applies the NEQ predicate on the "s3_region" field.
func S3RegionNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldS3Region, v))
}

// S3RegionIn applies the In predicate on the "s3_region" field.
func S3RegionIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldS3Region, vs...))
}

// S3RegionNotIn applies the NotIn predicate on the "s3_region" field.
func S3RegionNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldS3Region, vs...))
}

// S3RegionGT applies the GT predicate on the "s3_region" field.
func S3RegionGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldS3Region, v))
}

// S3RegionGTE applies the GTE predicate on the "s3_region" field.
func S3RegionGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldS3Region, v))
}

// S3RegionLT applies the LT predicate on the "s3_region" field.
func S3RegionLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldS3Region, v))
}

// S3RegionLTE applies the LTE predicate on the "s3_region" field.
func S3RegionLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldS3Region, v))
}

// S3RegionContains applies the Contains predicate on the "s3_region" field.
func S3RegionContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldS3Region, v))
}

// S3RegionHasPrefix applies the HasPrefix predicate on the "s3_region" field.
func S3RegionHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldS3Region, v))
}

// S3RegionHasSuffix applies the HasSuffix predicate on the "s3_region" field.
func S3RegionHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldS3Region, v))
}

// S3RegionIsNil applies the IsNil predicate on the "s3_region" field.
func S3RegionIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldS3Region))
}

// S3RegionNotNil applies the NotNil predicate on the "s3_region" field.
func S3RegionNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldS3Region))
}

// S3RegionEqualFold applies the EqualFold predicate on the "s3_region" field.
func S3RegionEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldS3Region, v))
}

// S3RegionContainsFold applies the ContainsFold predicate on the "s3_region" field.
func S3RegionContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldS3Region, v))
}

// S3BucketEQ applies the EQ predicate on the "s3_bucket" field.
func S3BucketEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3Bucket, v))
}

// S3BucketNEQ applies the NEQ predicate on the "s3_bucket" field.
func S3BucketNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldS3Bucket, v))
}

// S3BucketIn applies the In predicate on the "s3_bucket" field.
func S3BucketIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldS3Bucket, vs...))
}

// S3BucketNotIn applies the NotIn predicate on the "s3_bucket" field.
func S3BucketNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldS3Bucket, vs...))
}

// S3BucketGT applies the GT predicate on the "s3_bucket" field.
func S3BucketGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldS3Bucket, v))
}

// S3BucketGTE applies the GTE predicate on the "s3_bucket" field.
func S3BucketGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldS3Bucket, v))
}

// S3BucketLT applies the LT predicate on the "s3_bucket" field.
func S3BucketLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldS3Bucket, v))
}

// S3BucketLTE applies the LTE predicate on the "s3_bucket" field.
func S3BucketLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldS3Bucket, v))
}

// S3BucketContains applies the Contains predicate on the "s3_bucket" field.
func S3BucketContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldS3Bucket, v))
}

// S3BucketHasPrefix applies the HasPrefix predicate on the "s3_bucket" field.
func S3BucketHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldS3Bucket, v))
}

// S3BucketHasSuffix applies the HasSuffix predicate on the "s3_bucket" field.
func S3BucketHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldS3Bucket, v))
}

// S3BucketIsNil applies the IsNil predicate on the "s3_bucket" field.
func S3BucketIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldS3Bucket))
}

// S3BucketNotNil applies the NotNil predicate on the "s3_bucket" field.
func S3BucketNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldS3Bucket))
}

// S3BucketEqualFold applies the EqualFold predicate on the "s3_bucket" field.
func S3BucketEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldS3Bucket, v))
}

// S3BucketContainsFold applies the ContainsFold predicate on the "s3_bucket" field.
func S3BucketContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldS3Bucket, v))
}

// S3AccessKeyEQ applies the EQ predicate on the "s3_access_key" field.
func S3AccessKeyEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3AccessKey, v))
}

// S3AccessKeyNEQ applies the NEQ predicate on the "s3_access_key" field.
func S3AccessKeyNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldS3AccessKey, v))
}

// S3AccessKeyIn applies the In predicate on the "s3_access_key" field.
func S3AccessKeyIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldS3AccessKey, vs...))
}

// S3AccessKeyNotIn applies the NotIn predicate on the "s3_access_key" field.
func S3AccessKeyNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldS3AccessKey, vs...))
}

// S3AccessKeyGT applies the GT predicate on the "s3_access_key" field.
func S3AccessKeyGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldS3AccessKey, v))
}

// S3AccessKeyGTE applies the GTE predicate on the "s3_access_key" field.
func S3AccessKeyGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldS3AccessKey, v))
}

// S3AccessKeyLT applies the LT predicate on the "s3_access_key" field.
func S3AccessKeyLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldS3AccessKey, v))
}

// S3AccessKeyLTE applies the LTE predicate on the "s3_access_key" field.
func S3AccessKeyLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldS3AccessKey, v))
}

// S3AccessKeyContains applies the Contains predicate on the "s3_access_key" field.
func S3AccessKeyContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldS3AccessKey, v))
}

// S3AccessKeyHasPrefix applies the HasPrefix predicate on the "s3_access_key" field.
func S3AccessKeyHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldS3AccessKey, v))
}

// S3AccessKeyHasSuffix applies the HasSuffix predicate on the "s3_access_key" field.
func S3AccessKeyHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldS3AccessKey, v))
}

// S3AccessKeyIsNil applies the IsNil predicate on the "s3_access_key" field.
func S3AccessKeyIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldS3AccessKey))
}

// S3AccessKeyNotNil applies the NotNil predicate on the "s3_access_key" field.
func S3AccessKeyNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldS3AccessKey))
}

// S3AccessKeyEqualFold applies the EqualFold predicate on the "s3_access_key" field.
func S3AccessKeyEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldS3AccessKey, v))
}

// S3AccessKeyContainsFold applies the ContainsFold predicate on the "s3_access_key" field.
func S3AccessKeyContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldS3AccessKey, v))
}

// S3SecretKeyEQ applies the EQ predicate on the "s3_secret_key" field.
func S3SecretKeyEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldS3SecretKey, v))
}

// S3SecretKeyNEQ applies the NEQ predicate on the "s3_secret_key" field.
func S3SecretKeyNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldS3SecretKey, v))
}

// S3SecretKeyIn applies the In predicate on the "s3_secret_key" field.
func S3SecretKeyIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldS3SecretKey, vs...))
}

// S3SecretKeyNotIn applies the NotIn predicate on the "s3_secret_key" field.
func S3SecretKeyNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldS3SecretKey, vs...))
}

// S3SecretKeyGT applies the GT predicate on the "s3_secret_key" field.
func S3SecretKeyGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldS3SecretKey, v))
}

// S3SecretKeyGTE applies the GTE predicate on the "s3_secret_key" field.
func S3SecretKeyGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldS3SecretKey, v))
}

// S3SecretKeyLT applies the LT predicate on the "s3_secret_key" field.
func S3SecretKeyLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldS3SecretKey, v))
}

// S3SecretKeyLTE applies the LTE predicate on the "s3_secret_key" field.
func S3SecretKeyLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldS3SecretKey, v))
}

// S3SecretKeyContains applies the Contains predicate on the "s3_secret_key" field.
func S3SecretKeyContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldS3SecretKey, v))
}

// S3SecretKeyHasPrefix applies the HasPrefix predicate on the "s3_secret_key" field.
func S3SecretKeyHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldS3SecretKey, v))
}

// S3SecretKeyHasSuffix applies the HasSuffix predicate on the "s3_secret_key" field.
func S3SecretKeyHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldS3SecretKey, v))
}

// S3SecretKeyIsNil applies the IsNil predicate on the "s3_secret_key" field.
func S3SecretKeyIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldS3SecretKey))
}

// S3SecretKeyNotNil applies the NotNil predicate on the "s3_secret_key" field.
func S3SecretKeyNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldS3SecretKey))
}

// S3SecretKeyEqualFold applies the EqualFold predicate on the "s3_secret_key" field.
func S3SecretKeyEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldS3SecretKey, v))
}

// S3SecretKeyContainsFold applies the ContainsFold predicate on the "s3_secret_key" field.
func S3SecretKeyContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldS3SecretKey, v))
}

// AutoBackupEnabledEQ applies the EQ predicate on the "auto_backup_enabled" field.
func AutoBackupEnabledEQ(v bool) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldAutoBackupEnabled, v))
}

// AutoBackupEnabledNEQ applies the NEQ predicate on the "auto_backup_enabled" field.
func AutoBackupEnabledNEQ(v bool) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldAutoBackupEnabled, v))
}

// BackupScheduleEQ applies the EQ predicate on the "backup_schedule" field.
func BackupScheduleEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldBackupSchedule, v))
}

// BackupScheduleNEQ applies the NEQ predicate on the "backup_schedule" field.
func BackupScheduleNEQ(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldBackupSchedule, v))
}

// BackupScheduleIn applies the In predicate on the "backup_schedule" field.
func BackupScheduleIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldBackupSchedule, vs...))
}

// BackupScheduleNotIn applies the NotIn predicate on the "backup_schedule" field.
func BackupScheduleNotIn(vs ...string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldBackupSchedule, vs...))
}

// BackupScheduleGT applies the GT predicate on the "backup_schedule" field.
func BackupScheduleGT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldBackupSchedule, v))
}

// BackupScheduleGTE applies the GTE predicate on the "backup_schedule" field.
func BackupScheduleGTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldBackupSchedule, v))
}

// BackupScheduleLT applies the LT predicate on the "backup_schedule" field.
func BackupScheduleLT(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldBackupSchedule, v))
}

// BackupScheduleLTE applies the LTE predicate on the "backup_schedule" field.
func BackupScheduleLTE(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldBackupSchedule, v))
}

// BackupScheduleContains applies the Contains predicate on the "backup_schedule" field.
func BackupScheduleContains(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContains(FieldBackupSchedule, v))
}

// BackupScheduleHasPrefix applies the HasPrefix predicate on the "backup_schedule" field.
func BackupScheduleHasPrefix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasPrefix(FieldBackupSchedule, v))
}

// BackupScheduleHasSuffix applies the HasSuffix predicate on the "backup_schedule" field.
func BackupScheduleHasSuffix(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldHasSuffix(FieldBackupSchedule, v))
}

// BackupScheduleEqualFold applies the EqualFold predicate on the "backup_schedule" field.
func BackupScheduleEqualFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEqualFold(FieldBackupSchedule, v))
}

// BackupScheduleContainsFold applies the ContainsFold predicate on the "backup_schedule" field.
func BackupScheduleContainsFold(v string) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldContainsFold(FieldBackupSchedule, v))
}

// LastBackupAtEQ applies the EQ predicate on the "last_backup_at" field.
func LastBackupAtEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldLastBackupAt, v))
}

// LastBackupAtNEQ applies the NEQ predicate on the "last_backup_at" field.
func LastBackupAtNEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldLastBackupAt, v))
}

// LastBackupAtIn applies the In predicate on the "last_backup_at" field.
func LastBackupAtIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldLastBackupAt, vs...))
}

// LastBackupAtNotIn applies the NotIn predicate on the "last_backup_at" field.
func LastBackupAtNotIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldLastBackupAt, vs...))
}

// LastBackupAtGT applies the GT predicate on the "last_backup_at" field.
func LastBackupAtGT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldLastBackupAt, v))
}

// LastBackupAtGTE applies the GTE predicate on the "last_backup_at" field.
func LastBackupAtGTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldLastBackupAt, v))
}

// LastBackupAtLT applies the LT predicate on the "last_backup_at" field.
func LastBackupAtLT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldLastBackupAt, v))
}

// LastBackupAtLTE applies the LTE predicate on the "last_backup_at" field.
func LastBackupAtLTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldLastBackupAt, v))
}

// LastBackupAtIsNil applies the IsNil predicate on the "last_backup_at" field.
func LastBackupAtIsNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIsNull(FieldLastBackupAt))
}

// LastBackupAtNotNil applies the NotNil predicate on the "last_backup_at" field.
func LastBackupAtNotNil() predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotNull(FieldLastBackupAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BackupConfig {
	return predicate.BackupConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BackupConfig) predicate.BackupConfig {
	return predicate.BackupConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BackupConfig) predicate.BackupConfig {
	return predicate.BackupConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BackupConfig) predicate.BackupConfig {
	return predicate.BackupConfig(sql.NotPredicates(p))
}
