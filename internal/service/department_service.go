package service

import (
	"errors"
	"fmt"

	"interview_admin_backend/internal/model"
	"interview_admin_backend/internal/repository"
	"interview_admin_backend/internal/util"

	"gorm.io/gorm"
)

type DepartmentService struct {
	Repo *repository.DepartmentRepository
}

func NewDepartmentService(repo *repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{Repo: repo}
}

type DepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *DepartmentService) Create(req DepartmentRequest) (*model.Department, error) {
	d := &model.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.Repo.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Get(id string) (*model.Department, error) {
	d, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("department %s", id)
		}
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) List() ([]model.Department, error) {
	return s.Repo.List()
}

func (s *DepartmentService) Update(id string, req DepartmentRequest) (*model.Department, error) {
	d, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	d.Name = req.Name
	d.Description = req.Description
	if err := s.Repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DepartmentService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	refs, err := s.Repo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w (%d references)", util.ErrDepartmentReferenced, refs)
	}
	return s.Repo.Delete(id)
}
