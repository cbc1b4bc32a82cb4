package database

import (
	"context"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"strings"
	"testing"
)

func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "root:pw@tcp(127.0.0.1:3306)/patterns?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestUploadBuildsInsert(t *testing.T) {
	db := dryRunDB(t)
	u := &Uploader{db: db}
	location, err := u.Upload(context.Background(), "docs", "Output.txt", strings.NewReader("Hello World"))
	require.NoError(t, err)
	require.Equal(t, "stored_files/0", location)
	require.Equal(t, "database storage", u.Name())

	stmt := db.Session(&gorm.Session{DryRun: true}).Create(&StoredFile{Path: "/docs", Name: "Output.txt"}).Statement
	require.Contains(t, stmt.SQL.String(), "INSERT INTO `stored_files`")
}
