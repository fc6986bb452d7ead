package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kamaludyn/career-connect-backend/internal/apperr"
	"github.com/Kamaludyn/career-connect-backend/internal/models"
	"github.com/Kamaludyn/career-connect-backend/internal/repository"
)

type AuthService struct {
	users    repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Surname           string   `json:"surname"`
	Othername         string   `json:"othername"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Password          string   `json:"password"`
	Role              string   `json:"role"`
	Department        string   `json:"department"`
	Level             string   `json:"level"`
	Skills            []string `json:"skills"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	YearOfGraduation  int      `json:"yearOfGraduation"`
	JobTitle          string   `json:"jobTitle"`
	Industry          string   `json:"industry"`
	CompanyName       string   `json:"companyName"`
	Website           string   `json:"website"`
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

var allowedRoles = []string{models.RoleStudent, models.RoleMentor, models.RoleEmployer}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Surname == "" || in.Othername == "" || in.Email == "" || in.Phone == "" {
		return nil, apperr.BadRequest("Surname, othername, email and phone are required")
	}
	if len(in.Password) < 6 {
		return nil, apperr.BadRequest("Password must be at least 6 characters")
	}
	if !models.OneOf(in.Role, allowedRoles) {
		return nil, apperr.BadRequest("Invalid role specified")
	}

	exists, err := s.users.ExistsByEmailOrPhone(ctx, strings.ToLower(in.Email), in.Phone)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.BadRequest("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u := &models.User{
		Surname:      in.Surname,
		Othername:    in.Othername,
		Email:        strings.ToLower(in.Email),
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         in.Role,
		Department:   in.Department,
	}
	switch in.Role {
	case models.RoleStudent:
		u.Level = in.Level
		u.Skills = in.Skills
		u.YearsOfExperience = in.YearsOfExperience
	case models.RoleMentor:
		u.YearOfGraduation = in.YearOfGraduation
		u.JobTitle = in.JobTitle
		u.Industry = in.Industry
		u.CompanyName = in.CompanyName
		available := true
		u.Availability = &available
	case models.RoleEmployer:
		u.CompanyName = in.CompanyName
		u.Industry = in.Industry
		u.Website = in.Website
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, apperr.Internal(err)
	}

	token, err := s.IssueToken(u.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.BadRequest("Incorrect Email")
		}
		return nil, apperr.Internal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.BadRequest("Incorrect Password")
	}
	token, err := s.IssueToken(u.ID.Hex())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{User: u, Token: token}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

type ProfileUpdate struct {
	Surname    string   `json:"surname"`
	Othername  string   `json:"othername"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Bio        string   `json:"bio"`
	Department string   `json:"department"`
	Skills     []string `json:"skills"`
	JobTitle   string   `json:"jobTitle"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*models.User, error) {
	set := bson.M{}
	if in.Surname != "" {
		set["surname"] = in.Surname
	}
	if in.Othername != "" {
		set["othername"] = in.Othername
	}
	if in.Email != "" {
		set["email"] = strings.ToLower(in.Email)
	}
	if in.Phone != "" {
		set["phone"] = in.Phone
	}
	if in.Bio != "" {
		set["bio"] = in.Bio
	}
	if in.Department != "" {
		set["department"] = in.Department
	}
	if in.Skills != nil {
		set["skills"] = in.Skills
	}
	if in.JobTitle != "" {
		set["job_title"] = in.JobTitle
	}
	u, err := s.users.Update(ctx, userID, set)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal(err)
	}
	return u, nil
}

// IssueToken signs a bearer token carrying the user id, the same shape the
// platform has always issued.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
