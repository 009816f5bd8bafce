// database/bootstrap.go
package database

import (
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cropadvisor/entities"
)

// OpenSQLite opens the account store and brings its schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&entities.Account{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	// Runs after AutoMigrate so the accounts table and its unique index exist.
	if err := importLegacyUsers(db); err != nil {
		return nil, fmt.Errorf("import legacy users: %w", err)
	}
	return db, nil
}

// importLegacyUsers copies rows from a `user` table (id, name, email, password)
// left by an earlier deployment into accounts, then drops it. The stored
// passwords are bcrypt hashes and are carried over unchanged.
func importLegacyUsers(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='user'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Cid  int
		Name string
		Type string
		Pk   int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info("user")`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	have := map[string]bool{}
	for _, c := range cols {
		have[strings.ToLower(c.Name)] = true
	}
	for _, need := range []string{"email", "password"} {
		if !have[need] {
			return fmt.Errorf("legacy user table has no %q column", need)
		}
	}
	name := "''"
	if have["name"] {
		name = "COALESCE(name, '')"
	}

	copySQL := fmt.Sprintf(`
INSERT OR IGNORE INTO accounts (name, email, password_hash, created_at)
SELECT %s, email, password, CURRENT_TIMESTAMP FROM "user" WHERE email IS NOT NULL;
`, name)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		return tx.Exec(`DROP TABLE "user"`).Error
	})
}
