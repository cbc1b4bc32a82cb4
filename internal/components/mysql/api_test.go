package mysql

import (
	"github.com/reusedev/pattern-hub/config"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.MySQL{
		Host:     "127.0.0.1",
		Port:     3306,
		Username: "root",
		Password: "pw",
		Database: "patterns",
		Charset:  "utf8mb4",
	})
	require.Equal(t, "root:pw@tcp(127.0.0.1:3306)/patterns?charset=utf8mb4&parseTime=True&loc=Local", dsn)
}
