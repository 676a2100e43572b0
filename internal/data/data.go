package data

import (
	"fmt"
	"log"

	"NovelForge/internal/conf"
	"NovelForge/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Data 结构体持有数据库句柄
type Data struct {
	DB *gorm.DB
}

func NewData(cfg *conf.Config) (*Data, func(), error) {
	// 1. 连接 Postgres
	dsn := cfg.Data.DatabaseSource

	log.Printf("正在连接数据库...") // 不要打印 DSN，防止密码泄露

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %v", err)
	}

	// 2. 自动迁移表结构
	if err := Migrate(db); err != nil {
		return nil, nil, err
	}

	log.Println("✅ PostgreSQL 连接成功 & 表结构已迁移!")

	d := &Data{DB: db}

	// 构造清理函数
	cleanup := func() {
		log.Println("正在关闭数据层资源...")
		if sqlDB, err := d.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return d, cleanup, nil
}

// Migrate 迁移全部实体表，测试环境（sqlite 内存库）也走这里
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Chapter{},
		&model.Character{},
		&model.Outline{},
		&model.CharacterRelationship{},
		&model.Organization{},
		&model.OrganizationMember{},
		&model.WritingStyle{},
		&model.GenerationHistory{},
		&model.PromptTemplate{},
	); err != nil {
		return fmt.Errorf("schema migration failed: %v", err)
	}
	return nil
}
