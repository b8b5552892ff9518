package service

import (
	"encoding/json"
	"errors"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"

	"gorm.io/gorm"
)

type QuestionService struct {
	Repo         *repository.QuestionRepository
	CampaignRepo *repository.CampaignRepository
	DeptRepo     *repository.DepartmentRepository
}

func NewQuestionService(repo *repository.QuestionRepository, campaignRepo *repository.CampaignRepository, deptRepo *repository.DepartmentRepository) *QuestionService {
	return &QuestionService{Repo: repo, CampaignRepo: campaignRepo, DeptRepo: deptRepo}
}

type QuestionRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	AnswerType    string          `json:"answerType" binding:"required"`
	DepartmentID  string          `json:"departmentId" binding:"required"`
	Difficulty    string          `json:"difficulty" binding:"required"`
	SkillType     string          `json:"skillType" binding:"required"`
	Tags          []string        `json:"tags"`
	Options       []string        `json:"options"`
	CorrectAnswer json.RawMessage `json:"correctAnswer"`
	CodeTemplate  string          `json:"codeTemplate"`
	Rubric        string          `json:"rubric"`
	FileTypes     []string        `json:"fileTypes"`
	RatingScale   int             `json:"ratingScale"`
}

func validAnswerType(t string) bool {
	switch model.AnswerType(t) {
	case model.AnswerMultipleChoice, model.AnswerCodeEditor, model.AnswerEssay,
		model.AnswerFileUpload, model.AnswerRatingScale:
		return true
	}
	return false
}

func (s *QuestionService) validate(req QuestionRequest) error {
	if !validAnswerType(req.AnswerType) {
		return util.Validationf("unknown answerType %q", req.AnswerType)
	}
	if model.AnswerType(req.AnswerType) == model.AnswerMultipleChoice && len(req.Options) < 2 {
		return util.Validationf("multiple_choice questions need at least 2 options")
	}
	if _, err := s.DeptRepo.FindByID(req.DepartmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundf("department %s", req.DepartmentID)
		}
		return err
	}
	return nil
}

func (s *QuestionService) Create(req QuestionRequest, createdBy string) (*model.Question, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	q := &model.Question{
		Title:         req.Title,
		Description:   req.Description,
		AnswerType:    model.AnswerType(req.AnswerType),
		DepartmentID:  req.DepartmentID,
		Difficulty:    model.DifficultyLevel(req.Difficulty),
		SkillType:     model.SkillType(req.SkillType),
		Tags:          model.StringList(req.Tags),
		Marks:         util.MarksPerQuestion,
		Options:       model.StringList(req.Options),
		CorrectAnswer: req.CorrectAnswer,
		CodeTemplate:  req.CodeTemplate,
		Rubric:        req.Rubric,
		FileTypes:     model.StringList(req.FileTypes),
		RatingScale:   req.RatingScale,
		CreatedBy:     createdBy,
	}
	if err := s.Repo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Get(id string) (*model.Question, error) {
	q, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("question %s", id)
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(f repository.QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	return s.Repo.List(f, page, limit)
}

// ensureMutable 被活动题集引用的题目视为不可变，先把题目从活动里摘出来才能改
func (s *QuestionService) ensureMutable(id string) error {
	refs, err := s.CampaignRepo.CountReferencingQuestion(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return util.Consistencyf("question %s is referenced by %d campaign(s) and cannot be modified", id, refs)
	}
	return nil
}

func (s *QuestionService) Update(id string, req QuestionRequest) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ensureMutable(id); err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	q.Title = req.Title
	q.Description = req.Description
	q.AnswerType = model.AnswerType(req.AnswerType)
	q.DepartmentID = req.DepartmentID
	q.Difficulty = model.DifficultyLevel(req.Difficulty)
	q.SkillType = model.SkillType(req.SkillType)
	q.Tags = model.StringList(req.Tags)
	q.Options = model.StringList(req.Options)
	q.CorrectAnswer = req.CorrectAnswer
	q.CodeTemplate = req.CodeTemplate
	q.Rubric = req.Rubric
	q.FileTypes = model.StringList(req.FileTypes)
	q.RatingScale = req.RatingScale

	if err := s.Repo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.ensureMutable(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
