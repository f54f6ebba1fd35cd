package config

import (
	"fmt"

	"vaulting/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const Schema = "vaulting"

// Models lists every table AutoMigrate manages, parents first.
var Models = []interface{}{
	&repository.User{},
	&repository.Event{},
	&repository.Category{},
	&repository.Person{},
	&repository.Horse{},
	&repository.Entry{},
	&repository.TimetablePart{},
	&repository.JudgeAssignment{},
	&repository.StartingOrderItem{},
	&repository.ScoreSheet{},
	&repository.Score{},
	&repository.CalcTemplate{},
	&repository.ResultGroup{},
}

func DSN(host string, port string, user string, password string, dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=%s",
		host, port, user, password, dbName, Schema)
}

func InitDB(host string, port string, user string, password string, dbName string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(host, port, user, password, dbName)), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   Schema + ".",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS ` + Schema)
	if x.Error != nil {
		return x.Error
	}
	return db.AutoMigrate(Models...)
}
