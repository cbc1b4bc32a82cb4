package mysql

import (
	"fmt"
	"github.com/reusedev/pattern-hub/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func DSN(config config.MySQL) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Username, config.Password, config.Host, config.Port, config.Database, config.Charset)
}

func InitMySQL(config config.MySQL) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(DSN(config)), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if config.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	}
	return db, nil
}
