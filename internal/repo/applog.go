// Package repo contains the durable storage of the registration service:
// the append-only appointment log file. No business logic lives here, only
// file I/O and the text format of a log block.
package repo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// Separator terminates every block in the appointment log.
const Separator = "------------------------"

// Field prefixes of a log block, in write order.
const (
	prefixName        = "Name: "
	prefixPhone       = "Phone: "
	prefixEmail       = "Email: "
	prefixAppointment = "Appointment: "
)

// AppointmentLog defines the durable record of accepted registrations.
// The service layer depends on this interface, so it can be unit-tested
// with a mock that fails on demand.
type AppointmentLog interface {
	// Append writes one block for the visitor and slot.
	// The underlying file handle is released on every exit path.
	Append(ctx context.Context, visitor domain.Visitor, appt domain.Appointment) error

	// Entries reads every block back, in file order.
	// A log that does not exist yet yields an empty, non-nil slice.
	Entries(ctx context.Context) ([]domain.LogEntry, error)
}

// fileAppointmentLog is the flat-file implementation of AppointmentLog.
type fileAppointmentLog struct {
	path string
}

// NewAppointmentLog constructs an AppointmentLog that appends to path,
// creating the file on first write.
func NewAppointmentLog(path string) AppointmentLog {
	return &fileAppointmentLog{path: path}
}

// Append opens the file in append mode, writes the block in a single write
// and closes the file. A close error is reported when the write succeeded,
// since buffered data may not have reached the disk.
func (l *fileAppointmentLog) Append(ctx context.Context, visitor domain.Visitor, appt domain.Appointment) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("repo.AppointmentLog.Append: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("repo.AppointmentLog.Append: open: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("repo.AppointmentLog.Append: close: %w", cerr)
		}
	}()

	if _, err := io.WriteString(f, FormatBlock(visitor, appt)); err != nil {
		return fmt.Errorf("repo.AppointmentLog.Append: write: %w", err)
	}
	return nil
}

// Entries opens the log read-only and parses it with ParseLog.
func (l *fileAppointmentLog) Entries(ctx context.Context) ([]domain.LogEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repo.AppointmentLog.Entries: %w", err)
	}

	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.LogEntry{}, nil
		}
		return nil, fmt.Errorf("repo.AppointmentLog.Entries: open: %w", err)
	}
	defer f.Close()

	entries, err := ParseLog(f)
	if err != nil {
		return nil, fmt.Errorf("repo.AppointmentLog.Entries: %w", err)
	}
	return entries, nil
}

// FormatBlock renders the fixed 5-line block for one registration:
//
//	Name: <name>
//	Phone: <phone>
//	Email: <email>
//	Appointment: <date> at <time>
//	------------------------
//
// Values are written verbatim, with no escaping.
func FormatBlock(visitor domain.Visitor, appt domain.Appointment) string {
	var b strings.Builder
	b.WriteString(prefixName + visitor.Name + "\n")
	b.WriteString(prefixPhone + visitor.Phone + "\n")
	b.WriteString(prefixEmail + visitor.Email + "\n")
	b.WriteString(prefixAppointment + appt.Date + " at " + appt.Time + "\n")
	b.WriteString(Separator + "\n")
	return b.String()
}

// ParseLog scans a log stream block by block, splitting on the separator
// line. Lines of any length are accepted. Lines without a known prefix are
// ignored. A trailing block with no separator (a torn last write) is still
// returned.
func ParseLog(r io.Reader) ([]domain.LogEntry, error) {
	entries := []domain.LogEntry{}

	var (
		cur     domain.LogEntry
		pending bool
	)

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read log: %w", err)
		}
		if raw == "" && err != nil {
			break
		}
		line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		switch {
		case line == Separator:
			entries = append(entries, cur)
			cur, pending = domain.LogEntry{}, false
		case strings.HasPrefix(line, prefixName):
			cur.Name, pending = strings.TrimPrefix(line, prefixName), true
		case strings.HasPrefix(line, prefixPhone):
			cur.Phone, pending = strings.TrimPrefix(line, prefixPhone), true
		case strings.HasPrefix(line, prefixEmail):
			cur.Email, pending = strings.TrimPrefix(line, prefixEmail), true
		case strings.HasPrefix(line, prefixAppointment):
			cur.Appointment, pending = strings.TrimPrefix(line, prefixAppointment), true
		}
		if err != nil {
			break
		}
	}
	if pending {
		entries = append(entries, cur)
	}
	return entries, nil
}
