// Package storage provides the object storage client used for user avatars.
//
// It wraps the Minio SDK behind a small Client interface so features depend
// on the operations they use rather than the concrete SDK, and so tests can
// substitute the testify mock in the mocks subpackage.
package storage
