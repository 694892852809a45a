package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"collection-tracker/core/middleware/auth"
	"collection-tracker/core/storage"
	"collection-tracker/feature/collection/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// ErrInvalidCredential is returned when the sign-in credential cannot be
// verified or carries no email.
var ErrInvalidCredential = errors.New("invalid sign-in credential")

// profile is what sign-in extracts from a verified credential.
type profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Subject string `json:"sub"`
}

// Service handles sign-in and account maintenance.
type Service struct {
	db      *gorm.DB
	store   storage.Client
	bucket  string
	authCfg auth.Config
	logger  *zap.Logger

	// validateToken is swapped out in tests; defaults to Google verification.
	validateToken func(ctx context.Context, credential, audience string) (*profile, error)
}

// NewService creates a new account service.
func NewService(db *gorm.DB, store storage.Client, bucket string, authCfg auth.Config, logger *zap.Logger) *Service {
	return &Service{
		db:            db,
		store:         store,
		bucket:        bucket,
		authCfg:       authCfg,
		logger:        logger,
		validateToken: validateGoogleToken,
	}
}

func validateGoogleToken(ctx context.Context, credential, audience string) (*profile, error) {
	payload, err := idtoken.Validate(ctx, credential, audience)
	if err != nil {
		return nil, fmt.Errorf("verifying google token: %w", err)
	}
	p := &profile{}
	if v, ok := payload.Claims["email"].(string); ok {
		p.Email = v
	}
	if v, ok := payload.Claims["name"].(string); ok {
		p.Name = v
	}
	if v, ok := payload.Claims["picture"].(string); ok {
		p.Picture = v
	}
	p.Subject = payload.Subject
	return p, nil
}

// Login verifies a Google ID token, upserts the user and issues a JWT.
// Without a configured client id the credential is parsed as raw JSON, which
// keeps local development working without Google.
func (s *Service) Login(ctx context.Context, credential string) (string, *models.User, error) {
	var p *profile
	if s.authCfg.GoogleClientID != "" {
		verified, err := s.validateToken(ctx, credential, s.authCfg.GoogleClientID)
		if err != nil {
			return "", nil, ErrInvalidCredential
		}
		p = verified
	} else {
		p = &profile{}
		if err := json.Unmarshal([]byte(credential), p); err != nil {
			return "", nil, ErrInvalidCredential
		}
	}
	if p.Email == "" {
		return "", nil, ErrInvalidCredential
	}
	if p.Name == "" {
		p.Name = p.Email
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", p.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Email:    p.Email,
			Name:     p.Name,
			Logo:     p.Picture,
			FbID:     p.Subject,
			Type:     1,
			PublicID: uuid.NewString(),
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return "", nil, err
		}
	case err != nil:
		return "", nil, err
	default:
		updates := map[string]any{"name": p.Name}
		if p.Picture != "" {
			updates["logo"] = p.Picture
		}
		if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return "", nil, err
		}
		if err := s.db.WithContext(ctx).First(&user, user.ID).Error; err != nil {
			return "", nil, err
		}
	}

	token, err := auth.GenerateToken(s.authCfg.Secret, user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// UploadAvatar stores an avatar image in object storage and records its
// location on the user. Returns the stored object path.
func (s *Service) UploadAvatar(ctx context.Context, userID int, filename, contentType string, r io.Reader, size int64) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return "", err
	}

	exists, err := s.store.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if err := s.store.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", err
		}
	}

	objectName := fmt.Sprintf("users/%d/%s%s", userID, uuid.NewString(), path.Ext(filename))
	if _, err := s.store.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", err
	}

	logo := s.bucket + "/" + objectName
	if err := s.db.WithContext(ctx).Model(&user).Update("logo", logo).Error; err != nil {
		// The object is orphaned if this fails; best effort cleanup.
		_ = s.store.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
		return "", err
	}

	s.logger.Info("Avatar updated", zap.Int("user_id", userID), zap.String("object", objectName))
	return logo, nil
}
