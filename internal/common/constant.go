// Package common contains shared constants and sentinel errors used across
// passkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// session token on authenticated calls.
const AccessTokenHeaderName = "access_token"

// MaxPasswordLength is the largest login password accepted, in bytes.
// bcrypt ignores everything past this length.
const MaxPasswordLength = 72
