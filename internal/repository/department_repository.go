package repository

import (
	"interview_admin_backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(d *model.Department) error {
	return r.DB.Create(d).Error
}

func (r *DepartmentRepository) FindByID(id string) (*model.Department, error) {
	var d model.Department
	err := r.DB.First(&d, "id = ?", id).Error
	return &d, err
}

func (r *DepartmentRepository) List() ([]model.Department, error) {
	var ds []model.Department
	err := r.DB.Order("created_at asc").Find(&ds).Error
	return ds, err
}

func (r *DepartmentRepository) Update(d *model.Department) error {
	return r.DB.Save(d).Error
}

func (r *DepartmentRepository) Delete(id string) error {
	return r.DB.Delete(&model.Department{}, "id = ?", id).Error
}

func (r *DepartmentRepository) Count() (int64, error) {
	var total int64
	err := r.DB.Model(&model.Department{}).Count(&total).Error
	return total, err
}

// CountReferences 部门被题目或活动引用的数量，删除前校验用
func (r *DepartmentRepository) CountReferences(id string) (int64, error) {
	var questions, campaigns int64
	if err := r.DB.Model(&model.Question{}).Where("department_id = ?", id).Count(&questions).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&model.Campaign{}).Where("department_id = ?", id).Count(&campaigns).Error; err != nil {
		return 0, err
	}
	return questions + campaigns, nil
}
