package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"

	"rently-backend/internal/models"
	"rently-backend/internal/repositories"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "Rently"

type TOTPService struct {
	userRepo *repositories.UserRepository
}

func NewTOTPService(userRepo *repositories.UserRepository) *TOTPService {
	return &TOTPService{userRepo: userRepo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	// Generate new TOTP key
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	// Store the secret (not yet enabled)
	err = s.userRepo.SetTOTPSecret(ctx, user.ID, key.Secret())
	if err != nil {
		return nil, err
	}

	// Generate QR code image
	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}

	// Convert to base64 PNG
	var buf bytes.Buffer
	err = png.Encode(&buf, qrImage)
	if err != nil {
		return nil, err
	}
	qrBase64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + qrBase64,
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable verifies a TOTP code and enables 2FA for the user
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	// Get user with TOTP secret
	user, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.TOTPSecret == "" {
		return invalidf("totp", "2FA setup not initiated")
	}

	// Verify the code
	if !totp.Validate(code, user.TOTPSecret) {
		return invalidf("totp_code", "invalid verification code")
	}

	// Enable TOTP
	return s.userRepo.EnableTOTP(ctx, userID)
}

// Validate checks a TOTP code against a stored secret during login.
func (s *TOTPService) Validate(secret, code string) bool {
	return totp.Validate(code, secret)
}
