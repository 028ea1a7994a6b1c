package sharefile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goshare/internal/shamir"
	"github.com/idelchi/goshare/internal/sharefile"
)

func newSet(t *testing.T, threshold, total int) shamir.ShareSet {
	t.Helper()

	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 7)
	}

	set, err := shamir.New().Split(key, threshold, total)
	require.NoError(t, err)

	set.ID = uuid.New()

	return set
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	set := newSet(t, 3, 5)
	records := sharefile.FromSet(set)
	require.Len(t, records, 5)

	for i, record := range records {
		data, err := sharefile.Marshal(record)
		require.NoError(t, err)

		parsed, err := sharefile.Parse(data)
		require.NoError(t, err)
		require.Len(t, parsed, 1)
		assert.Equal(t, record, parsed[0])

		share, err := parsed[0].Share()
		require.NoError(t, err)
		assert.Equal(t, set.Shares[i], share)
	}
}

func TestParseBundleAndComments(t *testing.T) {
	t.Parallel()

	set := newSet(t, 2, 3)

	data, err := sharefile.MarshalBundle(sharefile.FromSet(set))
	require.NoError(t, err)

	annotated := "// held by the finance team\n" + strings.Replace(string(data), "\n]", ",\n]", 1)

	records, err := sharefile.Parse([]byte(annotated))
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	valid := `"set":"` + uuid.NewString() + `","index":1,"threshold":2,"total":3,"value":"0a0b"`

	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "  "},
		{"not json", "share"},
		{"wrong version", `{"version":2,` + valid + `}`},
		{"missing version", `{` + valid + `}`},
		{"bad set", `{"version":1,"set":"abc","index":1,"threshold":2,"total":3,"value":"0a"}`},
		{"index zero", `{"version":1,"set":"` + uuid.NewString() + `","index":0,"threshold":2,"total":3,"value":"0a"}`},
		{"index above total", `{"version":1,"set":"` + uuid.NewString() + `","index":4,"threshold":2,"total":3,"value":"0a"}`},
		{"threshold one", `{"version":1,"set":"` + uuid.NewString() + `","index":1,"threshold":1,"total":3,"value":"0a"}`},
		{"threshold above total", `{"version":1,"set":"` + uuid.NewString() + `","index":1,"threshold":4,"total":3,"value":"0a"}`},
		{"not hex", `{"version":1,"set":"` + uuid.NewString() + `","index":1,"threshold":2,"total":3,"value":"zz"}`},
		{"bad array element", `[{"version":1,` + valid + `},{"version":1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := sharefile.Parse([]byte(tt.doc))
			require.ErrorIs(t, err, sharefile.ErrInvalidRecord)
		})
	}
}

func TestShareRejectsOddHex(t *testing.T) {
	t.Parallel()

	record := sharefile.Record{
		Version:   sharefile.Version,
		Set:       uuid.NewString(),
		Index:     1,
		Threshold: 2,
		Total:     2,
		Value:     "abc",
	}

	_, err := record.Share()
	require.ErrorIs(t, err, sharefile.ErrInvalidRecord)
}

func TestCollect(t *testing.T) {
	t.Parallel()

	set := newSet(t, 3, 5)
	records := sharefile.FromSet(set)

	collection, err := sharefile.Collect([]sharefile.Record{records[4], records[0], records[2], records[0]})
	require.NoError(t, err)

	assert.Equal(t, set.ID, collection.SetID)
	assert.Equal(t, 3, collection.Threshold)
	assert.Equal(t, 5, collection.Total)
	assert.Equal(t, []int{1, 3, 5}, collection.Indices())
	assert.True(t, collection.Quorum())
	assert.Zero(t, collection.Missing())

	got, err := shamir.New().Combine(collection.Shares)
	require.NoError(t, err)

	want, err := shamir.New().Combine(set.Shares)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	partial, err := sharefile.Collect(records[:1])
	require.NoError(t, err)
	assert.False(t, partial.Quorum())
	assert.Equal(t, 2, partial.Missing())
}

func TestCollectInconsistent(t *testing.T) {
	t.Parallel()

	set := newSet(t, 2, 3)
	records := sharefile.FromSet(set)
	other := sharefile.FromSet(newSet(t, 2, 3))

	conflicting := records[1]
	conflicting.Value = other[1].Value

	resized := records[1]
	resized.Value = resized.Value[:10]

	reshaped := sharefile.FromSet(newSet(t, 3, 3))
	for i := range reshaped {
		reshaped[i].Set = records[0].Set
	}

	tests := []struct {
		name    string
		records []sharefile.Record
	}{
		{"empty", nil},
		{"mixed sets", []sharefile.Record{records[0], other[1]}},
		{"conflicting duplicate", []sharefile.Record{records[1], conflicting}},
		{"mixed lengths", []sharefile.Record{records[0], resized}},
		{"mixed parameters", []sharefile.Record{records[0], reshaped[1]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := sharefile.Collect(tt.records)
			require.ErrorIs(t, err, sharefile.ErrInconsistent)
		})
	}
}

func TestResolveAndLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	set := newSet(t, 2, 4)
	records := sharefile.FromSet(set)

	for _, record := range records[:2] {
		data, err := sharefile.Marshal(record)
		require.NoError(t, err)

		writeFile(t, sharefile.Path(filepath.Join(dir, "a", "secret.txt"), record.Index), data)
	}

	bundle, err := sharefile.MarshalBundle(records[2:])
	require.NoError(t, err)

	writeFile(t, sharefile.BundlePath(filepath.Join(dir, "b", "secret.txt")), bundle)
	writeFile(t, filepath.Join(dir, "b", "notes.json"), []byte("{}"))
	writeFile(t, filepath.Join(dir, "secret.txt.enc"), []byte("GOSH"))

	explicit := sharefile.Path(filepath.Join(dir, "a", "secret.txt"), 1)

	paths, err := sharefile.Resolve([]string{explicit, dir})
	require.NoError(t, err)
	assert.Len(t, paths, 3, "explicit file is not listed twice")

	for _, path := range paths {
		assert.True(t, sharefile.IsShareFile(path), path)
	}

	loaded, err := sharefile.LoadAll(paths, 2)
	require.NoError(t, err)
	require.Len(t, loaded, 4)

	collection, err := sharefile.Collect(loaded)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, collection.Indices())
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := sharefile.Resolve([]string{dir})
	require.ErrorIs(t, err, sharefile.ErrNoShares)

	_, err = sharefile.Resolve([]string{filepath.Join(dir, "missing.share-1.json")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadAllReportsBadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bad := filepath.Join(dir, "x.share-1.json")
	writeFile(t, bad, []byte(`{"version":1}`))

	_, err := sharefile.LoadAll([]string{bad}, 0)
	require.ErrorIs(t, err, sharefile.ErrInvalidRecord)
	assert.Contains(t, err.Error(), bad)
}

func TestIsShareFile(t *testing.T) {
	t.Parallel()

	assert.True(t, sharefile.IsShareFile("dir/report.pdf.share-12.json"))
	assert.True(t, sharefile.IsShareFile("report.pdf.shares.json"))
	assert.False(t, sharefile.IsShareFile("report.pdf.enc"))
	assert.False(t, sharefile.IsShareFile("share.json"))
}

func TestFilterSet(t *testing.T) {
	t.Parallel()

	current := newSet(t, 2, 3)
	stale := sharefile.FromSet(newSet(t, 3, 5))

	records := append(sharefile.FromSet(current), stale[3:]...)

	_, err := sharefile.Collect(records)
	require.ErrorIs(t, err, sharefile.ErrInconsistent)
	assert.Contains(t, err.Error(), "left over")

	kept, skipped := sharefile.FilterSet(records, current.ID)
	assert.Len(t, kept, 3)
	assert.Equal(t, 2, skipped)

	collection, err := sharefile.Collect(kept)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, collection.Indices())
}
