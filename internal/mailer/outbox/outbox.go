// Package outbox keeps a local record of every notification email this
// process attempted to send. A signup whose verification mail failed leaves
// the account unverified and unnotified; the outbox is the trail support
// needs to find and resend those.
package outbox

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/docnest/docnest/internal/model"
)

type Kind string

const (
	KindVerification  Kind = "verification"
	KindPasswordReset Kind = "password-reset"
)

type Status int

const (
	StatusPending Status = iota
	StatusSent
	StatusFailed
)

type Entry struct {
	ID        string    `db:"ID"`
	CreatedAt time.Time `db:"CreatedAt"`
	Kind      Kind      `db:"Kind"`
	Recipient string    `db:"Recipient"`
	Subject   string    `db:"Subject"`
	Status    Status    `db:"Status"`
}

type Outbox struct {
	db *sqlx.DB
}

func Open(dataDir string) (*Outbox, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	dbName := path.Join(dataDir, "outbox.db")

	db, err := sqlx.Connect("sqlite3", "file:"+dbName)
	if err != nil {
		return nil, fmt.Errorf("opening outbox database: %w", err)
	}

	box := &Outbox{db}
	if err := box.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating outbox tables: %w", err)
	}
	return box, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

func (o *Outbox) createTables() error {
	_, err := o.db.Exec(`create table if not exists outbox(
		ID        text not null primary key,
		CreatedAt DATETIME not null,
		Kind      text not null,
		Recipient text not null,
		Subject   text not null,
		Status    tinyint not null default 0
	)`)
	return err
}

func (o *Outbox) Record(kind Kind, recipient string, subject string, status Status) error {
	entry := &Entry{
		ID:        model.CreateID(),
		CreatedAt: time.Now().UTC(),
		Kind:      kind,
		Recipient: recipient,
		Subject:   subject,
		Status:    status,
	}

	res, err := o.db.NamedExec(`insert into outbox
		(ID, CreatedAt, Kind, Recipient, Subject, Status)
		values(:ID, :CreatedAt, :Kind, :Recipient, :Subject, :Status)`, entry)
	if err != nil {
		return fmt.Errorf("inserting outbox entry: %w", err)
	}
	if rows, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	} else if rows != 1 {
		return fmt.Errorf("expected 1 row to be affected, got %d", rows)
	}

	return nil
}

// ListFailed returns entries whose delivery failed, newest first.
func (o *Outbox) ListFailed() ([]*Entry, error) {
	entries := []*Entry{}
	err := o.db.Select(&entries, `select * from outbox where Status = ? order by CreatedAt desc`, StatusFailed)
	if err != nil {
		return nil, fmt.Errorf("listing failed outbox entries: %w", err)
	}
	return entries, nil
}
