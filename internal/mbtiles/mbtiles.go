package mbtiles

import (
	"database/sql"
	"fmt"
	"sync"

	// sqlite3 driver
	_ "github.com/mattn/go-sqlite3"
)

// MBTiles is a tile set stored in a single SQLite file
type MBTiles struct {
	db             *sql.DB
	tileInsertStmt *sql.Stmt
	mutex          *sync.Mutex
}

// Open opens (and if needed creates) the mbtiles file at mbTilesPath
func Open(mbTilesPath string, name string, format string) (MBTiles, error) {
	var mbTiles MBTiles

	db, err := sql.Open("sqlite3", mbTilesPath)
	if err != nil {
		return mbTiles, err
	}

	_, err = db.Exec(`
		PRAGMA application_id = 0x4d504258;
		CREATE TABLE IF NOT EXISTS metadata (name text, value text);
		CREATE UNIQUE INDEX IF NOT EXISTS metadata_index on metadata (name);
		CREATE TABLE IF NOT EXISTS tiles (zoom_level integer, tile_column integer, tile_row integer, tile_data blob);
		CREATE UNIQUE INDEX IF NOT EXISTS tile_index on tiles (zoom_level, tile_column, tile_row);
	`)
	if err != nil {
		db.Close()
		return mbTiles, fmt.Errorf("creating mbtiles schema: %w", err)
	}

	tileInsertStmt, err := db.Prepare("INSERT OR REPLACE INTO tiles (zoom_level, tile_column, tile_row, tile_data) VALUES (?, ?, ?, ?);")
	if err != nil {
		db.Close()
		return mbTiles, err
	}

	mbTiles.db = db
	mbTiles.tileInsertStmt = tileInsertStmt
	mbTiles.mutex = &sync.Mutex{}

	err = mbTiles.InsertMeta(map[string]string{
		"name":   name,
		"format": format,
	})
	if err != nil {
		mbTiles.Close()
		return mbTiles, err
	}

	return mbTiles, nil
}

// Close releases db file
func (mbTiles MBTiles) Close() error {
	err := mbTiles.tileInsertStmt.Close()
	if err != nil {
		return err
	}

	return mbTiles.db.Close()
}

// WriteTile inserts a tile at (z, x, y) given in xyz scheme. MBTiles counts
// rows from the bottom, so y is flipped.
func (mbTiles MBTiles) WriteTile(z, x, y uint, data []byte) error {
	tmsY := (uint(1) << z) - 1 - y

	mbTiles.mutex.Lock()
	defer mbTiles.mutex.Unlock()

	_, err := mbTiles.tileInsertStmt.Exec(z, x, tmsY, data)
	return err
}

// ReadTile returns the tile at (z, x, y) given in xyz scheme
func (mbTiles MBTiles) ReadTile(z, x, y uint) ([]byte, error) {
	tmsY := (uint(1) << z) - 1 - y

	var data []byte
	err := mbTiles.db.QueryRow("SELECT tile_data FROM tiles WHERE zoom_level = ? AND tile_column = ? AND tile_row = ?;", z, x, tmsY).Scan(&data)

	return data, err
}

// InsertMeta sets metadata entries
func (mbTiles MBTiles) InsertMeta(entries map[string]string) error {
	mbTiles.mutex.Lock()
	defer mbTiles.mutex.Unlock()

	for name, value := range entries {
		_, err := mbTiles.db.Exec("INSERT OR REPLACE INTO metadata (name, value) VALUES (?, ?);", name, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// Meta returns the metadata entry name
func (mbTiles MBTiles) Meta(name string) (string, error) {
	var value string
	err := mbTiles.db.QueryRow("SELECT value FROM metadata WHERE name = ?;", name).Scan(&value)
	return value, err
}
