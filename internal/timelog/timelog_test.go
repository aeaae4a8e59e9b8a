package timelog

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const twoDays = `
2022-06-09 06:02: arrived
2022-06-09 06:27: email
2022-06-09 06:32: **tea
2022-06-09 12:00: work

2022-06-10 07:00: arrived
2022-06-10 12:05: rtimelog: code
2022-06-10 12:30: **lunch
2022-06-10 14:00: rtimelog: code
2022-06-10 15:00: bug triage
2022-06-10 16:00: customer joe: support
`

func TestParseLineValid(t *testing.T) {
	e1, ok := parseLine("2022-05-31 13:59: email")
	require.True(t, ok)
	require.Equal(t, "email", e1.Task)
	require.Equal(t, "2022-05-31 13:59", e1.Stop.Format(TimeFormat))

	e2, ok := parseLine("2022-05-31 14:07: read docs")
	require.True(t, ok)
	require.Equal(t, "read docs", e2.Task)
	require.Equal(t, 8*time.Minute, e2.Stop.Sub(e1.Stop))
}

func TestParseLineInvalid(t *testing.T) {
	for _, line := range []string{
		"",
		"   ",
		"a",
		"2022-05-31 13:59 email",  // no ": " separator
		"2022-05-31 25:61: email", // invalid time
		"2022-13-32 13:59: email", // invalid date
	} {
		_, ok := parseLine(line)
		require.False(t, ok, "line %q should be rejected", line)
	}
}

func TestTaskKeepsColons(t *testing.T) {
	e, ok := parseLine("2022-06-10 16:00: customer joe: support")
	require.True(t, ok)
	require.Equal(t, "customer joe: support", e.Task)
}

func TestFromStringEmpty(t *testing.T) {
	tl, err := FromString("")
	require.NoError(t, err)
	require.Equal(t, 0, tl.Len())
	require.Empty(t, tl.Filename())
}

func TestFromStringTwoDays(t *testing.T) {
	tl, err := FromString(twoDays)
	require.NoError(t, err)
	require.Equal(t, 10, tl.Len())

	entries := slices.Collect(tl.All())
	require.Equal(t, "2022-06-09 06:02: arrived", entries[0].String())
	require.Equal(t, "2022-06-10 16:00: customer joe: support", entries[9].String())
}

func TestMalformedLinesSkipped(t *testing.T) {
	tl, err := FromString(`
2022-06-09 06:02: arrived
this is not an entry
2022-06-09 25:00: bad time
2022-06-09 06:27: email
`)
	require.NoError(t, err)
	require.Equal(t, 2, tl.Len())

	entries := slices.Collect(tl.All())
	require.Equal(t, "arrived", entries[0].Task)
	require.Equal(t, "email", entries[1].Task)
}

func TestMalformedLinesWarn(t *testing.T) {
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	tl, err := FromString("2022-06-09 06:02: arrived\nnot an entry\n2022-06-09 25:00: bad time\n")
	require.NoError(t, err)
	require.Equal(t, 1, tl.Len())

	require.NoError(t, w.Close())
	os.Stderr = oldStderr

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Contains(t, string(out), "WARNING: ignoring invalid line in timelog: not an entry")
	require.Contains(t, string(out), "WARNING: ignoring line with invalid date in timelog: 2022-06-09 25:00: bad time")
}

func TestTimeRegressionFailsLoad(t *testing.T) {
	_, err := FromString(`
2022-06-09 06:02: arrived
2022-06-09 06:10: ** tea
2022-06-08 07:32: huh, previous day
`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTimeRegression)
}

func TestEqualTimestampsAllowed(t *testing.T) {
	tl, err := FromString("2022-06-09 06:02: arrived\n2022-06-09 06:02: email\n")
	require.NoError(t, err)
	require.Equal(t, 2, tl.Len())
}

func TestGetDay(t *testing.T) {
	tl, err := FromString(twoDays)
	require.NoError(t, err)

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	}

	require.Empty(t, slices.Collect(tl.GetDay(day(2022, time.June, 8))))

	ninth := slices.Collect(tl.GetDay(day(2022, time.June, 9)))
	require.Len(t, ninth, 4)
	require.Equal(t, "2022-06-09 06:02: arrived", ninth[0].String())
	require.Equal(t, "2022-06-09 12:00: work", ninth[3].String())

	tenth := slices.Collect(tl.GetDay(day(2022, time.June, 10)))
	require.Len(t, tenth, 6)
	require.Equal(t, "2022-06-10 07:00: arrived", tenth[0].String())
	require.Equal(t, "2022-06-10 16:00: customer joe: support", tenth[5].String())

	// The sequence is restartable.
	require.Equal(t, ninth, slices.Collect(tl.GetDay(day(2022, time.June, 9))))
}

func TestGetDayMidnightBoundary(t *testing.T) {
	tl, err := FromString("2022-06-09 23:59: late\n2022-06-10 00:00: start\n")
	require.NoError(t, err)

	ninth := slices.Collect(tl.GetDay(time.Date(2022, time.June, 9, 12, 0, 0, 0, time.Local)))
	require.Len(t, ninth, 1)
	require.Equal(t, "late", ninth[0].Task)

	tenth := slices.Collect(tl.GetDay(time.Date(2022, time.June, 10, 12, 0, 0, 0, time.Local)))
	require.Len(t, tenth, 1)
	require.Equal(t, "start", tenth[0].Task)
}

func TestFormatRoundTrip(t *testing.T) {
	tl, err := FromString(twoDays)
	require.NoError(t, err)

	// Canonical output: the fixture without its leading blank line.
	require.Equal(t, strings.TrimPrefix(twoDays, "\n"), tl.Format())

	again, err := FromString(tl.Format())
	require.NoError(t, err)
	require.Equal(t, tl.entries, again.entries)
}

func TestFormatDayBoundary(t *testing.T) {
	tl, err := FromString("2022-06-09 06:02: arrived\n2022-06-09 06:27: email\n")
	require.NoError(t, err)
	require.Equal(t, "2022-06-09 06:02: arrived\n2022-06-09 06:27: email\n", tl.Format())

	tl, err = FromString("2022-06-09 06:02: arrived\n2022-06-10 07:00: arrived\n")
	require.NoError(t, err)
	require.Equal(t, "2022-06-09 06:02: arrived\n\n2022-06-10 07:00: arrived\n", tl.Format())
}

func TestAdd(t *testing.T) {
	tl, err := FromString("")
	require.NoError(t, err)

	tl.Add("think hard")
	require.Equal(t, 1, tl.Len())

	entries := slices.Collect(tl.All())
	require.Equal(t, "think hard", entries[0].Task)
	require.Zero(t, entries[0].Stop.Second())

	// Appends round-trip through the file format.
	again, err := FromString(tl.Format())
	require.NoError(t, err)
	require.Equal(t, tl.entries, again.entries)
}

func TestSaveNoBackingFile(t *testing.T) {
	tl, err := FromString("")
	require.NoError(t, err)
	require.ErrorIs(t, tl.Save(), ErrNoBackingFile)
}

func TestFromFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timelog.txt")

	tl, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, 0, tl.Len())
	require.Equal(t, path, tl.Filename())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timelog.txt")

	tl, err := FromFile(path)
	require.NoError(t, err)

	tl.Add("arrived")
	tl.Add("rtimelog: code")
	require.NoError(t, tl.Save())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, tl.Format(), string(raw))

	again, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, tl.entries, again.entries)

	// Save is a full overwrite, not an append.
	again.Add("email")
	require.NoError(t, again.Save())

	final, err := FromFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, final.Len())
}
