package duckdb

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/admpub/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/marcboeker/go-duckdb/v2"
	"github.com/webx-top/com"

	"github.com/admpub/charting/pkg/storage"
)

const tableName = `ChartRecords`

func init() {
	storage.Register(`duckdb`, newDuckDB)
}

// duckdb://./data/ stores into ./data/duck.db, a nil or empty URL keeps the
// database in memory.
func newDuckDB(settings *url.URL) (storage.Storager, error) {
	var storagePath string
	if settings != nil {
		var err error
		storagePath = settings.Path
		if len(settings.Path) > 0 {
			storagePath, err = url.PathUnescape(storagePath)
			if err != nil {
				return nil, err
			}
			storagePath = settings.Host + storagePath
		} else {
			storagePath = settings.Query().Get(`path`)
		}
		if len(storagePath) > 0 {
			switch storagePath[len(storagePath)-1] {
			case '/', '\\':
				com.MkdirAll(storagePath, 0760)
				storagePath = filepath.Join(storagePath, `duck.db`)
			default:
				if com.IsDir(storagePath) {
					storagePath = filepath.Join(storagePath, `duck.db`)
				}
			}
		}
	}
	db, err := sqlx.Open("duckdb", storagePath)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ` + tableName + ` (
Name    VARCHAR PRIMARY KEY,
Kind    VARCHAR,
Body    VARCHAR,
Created TIMESTAMP
);`)
	if err != nil {
		db.Close()
		return nil, err
	}
	if len(storagePath) > 0 {
		log.Debugf(`using duckdb database: %s`, storagePath)
	}
	return &storageDuckDB{db: db}, nil
}

type storageDuckDB struct {
	db *sqlx.DB
}

func (e *storageDuckDB) Save(rec storage.Record) error {
	_, err := e.db.Exec(`INSERT OR REPLACE INTO `+tableName+` (Name, Kind, Body, Created) VALUES(?, ?, ?, ?)`, rec.Name, rec.Kind, rec.Body, rec.Created)
	return err
}

func (e *storageDuckDB) Get(name string) (storage.Record, error) {
	var rec storage.Record
	err := e.db.Get(&rec, `SELECT Name, Kind, Body, Created FROM `+tableName+` WHERE Name=?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, fmt.Errorf(`%w: %s`, storage.ErrNotFound, name)
	}
	return rec, err
}

func (e *storageDuckDB) List(limit int) ([]storage.Record, error) {
	var list []storage.Record
	query := `SELECT Name, Kind, Body, Created FROM ` + tableName + ` ORDER BY Created DESC, Name ASC`
	if limit > 0 {
		query += ` LIMIT ` + strconv.Itoa(limit)
	}
	err := e.db.Select(&list, query)
	return list, err
}

func (e *storageDuckDB) Delete(name string) error {
	res, err := e.db.Exec(`DELETE FROM `+tableName+` WHERE Name=?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf(`%w: %s`, storage.ErrNotFound, name)
	}
	return nil
}

func (e *storageDuckDB) Close() {
	if err := e.db.Close(); err != nil {
		log.Error(err)
	}
}
