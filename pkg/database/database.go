package database

import (
	"fmt"
	"log"

	"interview_admin_backend/internal/config"
	"interview_admin_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, admin *config.AdminConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Department{},
		&model.Question{},
		&model.Campaign{},
		&model.Candidate{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认部门
	var deptCount int64
	db.Model(&model.Department{}).Count(&deptCount)
	if deptCount == 0 {
		defaultDepartments := []model.Department{
			{Name: "Engineering", Description: "Software engineering and development roles"},
			{Name: "Product Design", Description: "UI/UX and product design roles"},
			{Name: "Data Science", Description: "Data analysis and machine learning roles"},
			{Name: "Marketing", Description: "Marketing and growth roles"},
			{Name: "Sales", Description: "Sales and business development roles"},
		}
		for _, d := range defaultDepartments {
			db.Create(&d)
		}
	}

	// 种子管理员账号
	if admin != nil && admin.Email != "" && admin.Password != "" {
		var adminCount int64
		db.Model(&model.User{}).Where("email = ?", admin.Email).Count(&adminCount)
		if adminCount == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			db.Create(&model.User{
				Name:     "Administrator",
				Email:    admin.Email,
				Password: string(hash),
				Role:     model.RoleAdmin,
			})
		}
	}

	return db, nil
}
