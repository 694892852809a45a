// Package account implements sign-in and account maintenance.
//
// Sign-in verifies a Google ID token (google.golang.org/api/idtoken) when a
// client id is configured; without one the credential is parsed as raw JSON,
// which keeps local development working offline. A verified sign-in upserts
// the user by email and issues an HS256 JWT consumed by the auth middleware.
//
// Avatars are stored in object storage through the core/storage client; the
// stored object path lands in the user's logo field.
package account
