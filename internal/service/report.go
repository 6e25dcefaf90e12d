package service

import (
	"bufio"
	"io"

	"github.com/pkordes/community-garden/backend/internal/domain"
)

// WriteReport writes the cumulative console listing of r:
//
//	Registered Users:
//	<name> - <phone> - <email>
//	Scheduled Appointments:
//	<date> <time>
func WriteReport(w io.Writer, r domain.Roster) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("Registered Users:\n")
	for _, u := range r.Users {
		bw.WriteString(u.Name + " - " + u.Phone + " - " + u.Email + "\n")
	}
	bw.WriteString("Scheduled Appointments:\n")
	for _, a := range r.Appointments {
		bw.WriteString(a + "\n")
	}

	// bufio.Writer keeps the first write error and returns it from Flush.
	return bw.Flush()
}
