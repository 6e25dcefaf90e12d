package repo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/repo"
	"github.com/pkordes/community-garden/backend/testutil"
)

func aliceFixture() (domain.Visitor, domain.Appointment) {
	return domain.Visitor{Name: "Alice", Phone: "555-1000", Email: "a@x.com"},
		domain.Appointment{Date: "2024-06-10", Time: "09:00"}
}

const aliceBlock = "Name: Alice\n" +
	"Phone: 555-1000\n" +
	"Email: a@x.com\n" +
	"Appointment: 2024-06-10 at 09:00\n" +
	"------------------------\n"

func TestFormatBlock(t *testing.T) {
	v, a := aliceFixture()
	assert.Equal(t, aliceBlock, repo.FormatBlock(v, a))
}

func TestAppointmentLog_Append_CreatesFile(t *testing.T) {
	path := testutil.LogPath(t)
	log := repo.NewAppointmentLog(path)
	v, a := aliceFixture()

	require.NoError(t, log.Append(context.Background(), v, a))

	assert.Equal(t, aliceBlock, testutil.ReadLog(t, path))
}

func TestAppointmentLog_Append_AppendsToExisting(t *testing.T) {
	path := testutil.LogPath(t)
	testutil.WriteLog(t, path, "existing line\n")
	log := repo.NewAppointmentLog(path)
	v, a := aliceFixture()

	require.NoError(t, log.Append(context.Background(), v, a))
	require.NoError(t, log.Append(context.Background(), v, a))

	got := testutil.ReadLog(t, path)
	assert.True(t, strings.HasPrefix(got, "existing line\n"), "existing content must be preserved")
	assert.Equal(t, 2, strings.Count(got, repo.Separator+"\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(got, "\n"), "\n"), 11)
}

func TestAppointmentLog_Append_OpenFailure(t *testing.T) {
	log := repo.NewAppointmentLog(testutil.UnwritableLogPath(t))
	v, a := aliceFixture()

	err := log.Append(context.Background(), v, a)

	require.Error(t, err)
	assert.ErrorContains(t, err, "repo.AppointmentLog.Append: open")
}

func TestAppointmentLog_Append_CancelledContext(t *testing.T) {
	path := testutil.LogPath(t)
	log := repo.NewAppointmentLog(path)
	v, a := aliceFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, log.Append(ctx, v, a), context.Canceled)
}

func TestAppointmentLog_Entries_RoundTrip(t *testing.T) {
	path := testutil.LogPath(t)
	log := repo.NewAppointmentLog(path)
	ctx := context.Background()

	v, a := aliceFixture()
	require.NoError(t, log.Append(ctx, v, a))
	require.NoError(t, log.Append(ctx,
		domain.Visitor{Name: "Bob", Phone: "555-2000", Email: "b@x.com"},
		domain.Appointment{Date: "2024-06-15", Time: "16:30"},
	))

	entries, err := log.Entries(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.LogEntry{Name: "Alice", Phone: "555-1000", Email: "a@x.com", Appointment: "2024-06-10 at 09:00"}, entries[0])
	assert.Equal(t, "Bob", entries[1].Name)
	assert.Equal(t, "2024-06-15 at 16:30", entries[1].Appointment)
}

func TestAppointmentLog_Entries_LongField(t *testing.T) {
	path := testutil.LogPath(t)
	log := repo.NewAppointmentLog(path)
	ctx := context.Background()

	v, a := aliceFixture()
	require.NoError(t, log.Append(ctx, v, a))
	long := strings.Repeat("x", 70_000)
	require.NoError(t, log.Append(ctx, domain.Visitor{Name: long, Phone: "555-2000", Email: "b@x.com"}, a))
	require.NoError(t, log.Append(ctx, v, a))

	entries, err := log.Entries(ctx)

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, long, entries[1].Name)
	assert.Equal(t, "555-2000", entries[1].Phone)
	assert.Equal(t, "Alice", entries[2].Name)
}

func TestAppointmentLog_Entries_MissingFile(t *testing.T) {
	log := repo.NewAppointmentLog(testutil.LogPath(t))

	entries, err := log.Entries(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestParseLog_TornLastBlock(t *testing.T) {
	in := aliceBlock + "Name: Bob\nPhone: 555-2000\n"

	entries, err := repo.ParseLog(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Bob", entries[1].Name)
	assert.Empty(t, entries[1].Appointment)
}

func TestParseLog_CRLF(t *testing.T) {
	in := strings.ReplaceAll(aliceBlock, "\n", "\r\n")

	entries, err := repo.ParseLog(strings.NewReader(in))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a@x.com", entries[0].Email)
}

func TestParseLog_EmptyValues(t *testing.T) {
	// The form does no sanitization, so empty fields are legal.
	v := domain.Visitor{}
	a := domain.Appointment{Date: "2024-06-10", Time: "09:00"}

	entries, err := repo.ParseLog(strings.NewReader(repo.FormatBlock(v, a)))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Name)
	assert.Equal(t, "2024-06-10 at 09:00", entries[0].Appointment)
}
