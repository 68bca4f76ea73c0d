package storage

import (
	"database/sql"

	"github.com/kaspar030/clist"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStorage keeps one row per list, the list's encoded snapshot as a
// blob.
type SqliteStorage struct {
	*sql.DB
}

func NewSqliteStorage(path string) (*SqliteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("create table if not exists lists (name text primary key, payload blob not null)"); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteStorage{db}, nil
}

func (s *SqliteStorage) Close() error {
	return s.DB.Close()
}

func (s *SqliteStorage) ListCount() uint32 {
	count := 0
	s.DB.QueryRow("select count(*) from lists").Scan(&count)
	return uint32(count)
}

func (s *SqliteStorage) Save(name string, list *clist.List) error {
	_, err := s.DB.Exec("insert or replace into lists (name, payload) values (?, ?)", name, clist.Encode(list))
	return err
}

func (s *SqliteStorage) Delete(name string) error {
	_, err := s.DB.Exec("delete from lists where name = ?", name)
	return err
}

func (s *SqliteStorage) EachList(f func(name string, ids []clist.Handle)) error {
	rows, err := s.DB.Query("select name, payload from lists order by name")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var payload []byte
		if err := rows.Scan(&name, &payload); err != nil {
			return err
		}
		ids, err := clist.Decode(payload)
		if err != nil {
			return err
		}
		f(name, ids)
	}
	return rows.Err()
}
