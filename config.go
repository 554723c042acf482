package trsimage

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// ConfigDB persists the last used input and output directories between
// runs so the front-end can default to them.
type ConfigDB struct {
	db *sql.DB
}

const (
	settingInputDir  = "input_dir"
	settingOutputDir = "output_dir"
)

// NewConfigDB opens, creating if necessary, the settings database at file.
func NewConfigDB(file string) (*ConfigDB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS setting (key TEXT PRIMARY KEY NOT NULL, value TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	return &ConfigDB{
		db: db,
	}, nil
}

// Close closes the settings database.
func (db *ConfigDB) Close() error {
	return db.db.Close()
}

func (db *ConfigDB) get(key string) (string, error) {
	var value string
	switch err := db.db.QueryRow("SELECT value FROM setting WHERE key = ?", key).Scan(&value); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return value, nil
	default:
		return "", err
	}
}

func (db *ConfigDB) set(key, value string) error {
	_, err := db.db.Exec("INSERT OR REPLACE INTO setting (key, value) VALUES (?, ?)", key, value)
	return err
}

// InputDir returns the directory of the last opened image, or "" if none
// has been recorded yet.
func (db *ConfigDB) InputDir() (string, error) {
	return db.get(settingInputDir)
}

// SetInputDir records the directory of the last opened image.
func (db *ConfigDB) SetInputDir(dir string) error {
	return db.set(settingInputDir, dir)
}

// OutputDir returns the last used output directory, or "" if none has been
// recorded yet.
func (db *ConfigDB) OutputDir() (string, error) {
	return db.get(settingOutputDir)
}

// SetOutputDir records the last used output directory.
func (db *ConfigDB) SetOutputDir(dir string) error {
	return db.set(settingOutputDir, dir)
}
