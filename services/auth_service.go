package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abdul-09/slooze-restaurant/entity"
	"github.com/abdul-09/slooze-restaurant/pkg/apperr"
	"github.com/abdul-09/slooze-restaurant/pkg/mailer"
	"github.com/abdul-09/slooze-restaurant/repository"
	"github.com/abdul-09/slooze-restaurant/utils"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	mail      mailer.Sender
	jwtSecret string
	jwtTTL    time.Duration
	resetTTL  time.Duration
	resetBase string
}

func NewAuthService(repo *repository.UserRepository, mail mailer.Sender, secret string, ttl, resetTTL time.Duration, resetBase string) *AuthService {
	return &AuthService{
		userRepo:  repo,
		mail:      mail,
		jwtSecret: secret,
		jwtTTL:    ttl,
		resetTTL:  resetTTL,
		resetBase: resetBase,
	}
}

// Register creates a member account. Role escalation and the global region
// only happen through the admin-side user management.
func (s *AuthService) Register(email, password, firstName, lastName, region string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.New(apperr.InvalidArgument, "email and password are required")
	}
	if region != entity.RegionIndia && region != entity.RegionAmerica {
		return nil, apperr.Newf(apperr.InvalidArgument, "unknown region %q", region)
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.New(apperr.InvalidArgument, "email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Role:      entity.RoleMember,
		Region:    region,
		IsActive:  true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.New(apperr.PermissionDenied, "invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperr.New(apperr.PermissionDenied, "account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.New(apperr.PermissionDenied, "invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Region, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	return user, err
}

// RequestPasswordReset mails a short-lived reset link. Whether the email
// exists is not revealed to the caller.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := utils.GenerateResetToken(user.ID, s.jwtSecret, s.resetTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimSuffix(s.resetBase, "/"), token)
	go func() {
		body := "Click the link to reset your password: " + link
		if err := s.mail.Send(user.Email, "Password Reset", body); err != nil {
			log.Printf("reset mail: send to %s: %v", user.Email, err)
		}
	}()
	return nil
}

func (s *AuthService) ConfirmPasswordReset(token, newPassword string) error {
	if newPassword == "" {
		return apperr.New(apperr.InvalidArgument, "new password is required")
	}

	claims, err := utils.ParseToken(token, s.jwtSecret)
	if err != nil || claims.Purpose != utils.PurposePasswordReset {
		return apperr.New(apperr.InvalidArgument, "invalid or expired token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.Update(claims.UserID, map[string]any{"password": string(hashed)})
}
