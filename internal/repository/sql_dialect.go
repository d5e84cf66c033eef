package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/RealZimboGuy/relvalmatrix/internal/config"
)

// placeholder returns the correct bind variable for the given index based on DB type.
// Postgres uses $1, $2... while MySQL and SQLite use ?
func placeholder(i int) string {
	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	if db == config.DATABASE_TYPE_POSTGRES {
		return fmt.Sprintf("$%d", i)
	}
	return "?"
}

func placeholders(n int) string {
	pps := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		pps = append(pps, placeholder(i))
	}
	return strings.Join(pps, ", ")
}

// upsertQuery builds an insert that updates the non-key columns when a row with the
// same key already exists.
func upsertQuery(table string, columns []string, keys []string) string {
	isKey := make(map[string]bool, len(keys))
	for _, k := range keys {
		isKey[k] = true
	}

	base := `INSERT INTO ` + table + ` (` + strings.Join(columns, ", ") + `) VALUES (` + placeholders(len(columns)) + `)`

	var sets []string
	db := config.GetSystemSettingString(config.DATABASE_TYPE)
	for _, c := range columns {
		if isKey[c] {
			continue
		}
		if db == config.DATABASE_TYPE_MYSQL {
			sets = append(sets, c+" = VALUES("+c+")")
		} else {
			sets = append(sets, c+" = EXCLUDED."+c)
		}
	}
	if len(sets) == 0 {
		if db == config.DATABASE_TYPE_MYSQL {
			return `INSERT IGNORE` + strings.TrimPrefix(base, `INSERT`)
		}
		return base + ` ON CONFLICT (` + strings.Join(keys, ", ") + `) DO NOTHING`
	}
	if db == config.DATABASE_TYPE_MYSQL {
		return base + ` ON DUPLICATE KEY UPDATE ` + strings.Join(sets, ", ")
	}
	return base + ` ON CONFLICT (` + strings.Join(keys, ", ") + `) DO UPDATE SET ` + strings.Join(sets, ", ")
}

func formatDateInDatabase(t time.Time) interface{} {
	switch config.GetSystemSettingString(config.DATABASE_TYPE) {
	case config.DATABASE_TYPE_SQLLITE:
		return t.UTC().Format("2006-01-02 15:04:05.000")
	case config.DATABASE_TYPE_MYSQL:
		return t.UTC().Format("2006-01-02 15:04:05.000000")
	default:
		return t.UTC()
	}
}
