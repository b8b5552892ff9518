package service

import (
	"errors"

	"interview_admin_backend/internal/config"
	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo      *repository.UserRepository
	CandidateRepo *repository.CandidateRepository
	Config        *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, candidateRepo *repository.CandidateRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, CandidateRepo: candidateRepo, Config: cfg}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) AdminLogin(req AdminLoginRequest) (*AdminLoginResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Email, user.Role, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AdminLoginResponse{Token: token, User: user}, nil
}

type CandidateLoginRequest struct {
	Email        string `json:"email" binding:"required,email"`
	TempPassword string `json:"tempPassword" binding:"required"`
}

type CandidateLoginResponse struct {
	Token     string           `json:"token"`
	Candidate *model.Candidate `json:"candidate"`
}

// CandidateLogin 临时口令认证。只有所属活动处于 active 时才放行；
// 返回的 JWT 仅携带 candidate 角色，后续取题/提交都用它。
func (s *AuthService) CandidateLogin(req CandidateLoginRequest) (*CandidateLoginResponse, error) {
	candidate, err := s.CandidateRepo.FindByEmailAndPassword(req.Email, req.TempPassword)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if candidate.Campaign == nil {
		return nil, util.Consistencyf("candidate %s references missing campaign %s", candidate.ID, candidate.CampaignID)
	}
	if !candidate.Campaign.AcceptsCandidates() {
		return nil, util.ErrCampaignNotActive
	}

	token, err := util.GenerateJWT(candidate.ID, candidate.Email, model.RoleCandidate, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &CandidateLoginResponse{Token: token, Candidate: candidate}, nil
}
