package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"passnice/pkg/checkplus"

	_ "embed"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var Schema string

const birthdateLayout = "2006-01-02"

func wrapOpen(err error) error {
	return fmt.Errorf("open db: %w", err)
}

// Open opens (or creates) the sqlite database at path and applies the
// schema, use ":memory:" for a throwaway database.
func Open(path string) (*sql.DB, error) {
	if path != ":memory:" {
		err := os.MkdirAll(filepath.Dir(path), 0777)
		if err != nil {
			return nil, wrapOpen(err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapOpen(err)
	}

	// sqlite only has a single writer, this also keeps ":memory:" databases
	// pinned to one connection
	db.SetMaxOpenConns(1)
	if path != ":memory:" {
		_, err = db.Exec("PRAGMA journal_mode=WAL")
		if err != nil {
			db.Close()
			return nil, wrapOpen(err)
		}
	}

	_, err = db.Exec(Schema)
	if err != nil {
		db.Close()
		return nil, wrapOpen(err)
	}
	return db, nil
}

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Verification struct {
	ID          int64
	Method      string
	Carrier     string
	Name        string
	Birthdate   string
	Gender      string
	PhoneNumber string
	VerifiedAt  int64
}

const createVerification = `insert into verification (
    method, carrier, name, birthdate, gender, phone_number, verified_at
) values (?, ?, ?, ?, ?, ?, ?)`

type CreateVerificationParams struct {
	Method      string
	Carrier     string
	Name        string
	Birthdate   string
	Gender      string
	PhoneNumber string
	VerifiedAt  int64
}

func (q *Queries) CreateVerification(ctx context.Context, arg CreateVerificationParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createVerification,
		arg.Method,
		arg.Carrier,
		arg.Name,
		arg.Birthdate,
		arg.Gender,
		arg.PhoneNumber,
		arg.VerifiedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const listVerifications = `select id, method, carrier, name, birthdate, gender, phone_number, verified_at
from verification
order by verified_at desc, id desc
limit ?`

func (q *Queries) ListVerifications(ctx context.Context, limit int64) ([]Verification, error) {
	rows, err := q.db.QueryContext(ctx, listVerifications, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Verification
	for rows.Next() {
		var i Verification
		err := rows.Scan(
			&i.ID,
			&i.Method,
			&i.Carrier,
			&i.Name,
			&i.Birthdate,
			&i.Gender,
			&i.PhoneNumber,
			&i.VerifiedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveVerification stores a confirmed identity verified with method.
func (q *Queries) SaveVerification(ctx context.Context, method checkplus.Method, data checkplus.VerificationData, at time.Time) (int64, error) {
	return q.CreateVerification(ctx, CreateVerificationParams{
		Method:      string(method),
		Carrier:     string(data.Carrier),
		Name:        data.Name,
		Birthdate:   data.Birthdate.Format(birthdateLayout),
		Gender:      string(data.Gender),
		PhoneNumber: data.PhoneNumber,
		VerifiedAt:  at.Unix(),
	})
}
