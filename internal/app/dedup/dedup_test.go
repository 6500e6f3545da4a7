package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/har-tools/har2openapi/internal/app/harparse"
)

func entry(method, url string, status int, size int64) harparse.Entry {
	return harparse.Entry{
		Method:       method,
		URL:          url,
		Status:       status,
		ResponseBody: &harparse.Body{MimeType: "application/json", Size: size},
	}
}

func TestMergeEmptyInput(t *testing.T) {
	r := require.New(t)

	_, err := Merge(nil)
	r.ErrorIs(err, ErrEmptyInput)

	_, err = Merge([][]harparse.Entry{})
	r.ErrorIs(err, ErrEmptyInput)
}

func TestMergeSingleCollectionUnchanged(t *testing.T) {
	r := require.New(t)

	in := []harparse.Entry{
		entry("POST", "https://x/b", 201, 5),
		entry("GET", "https://x/a", 200, 1),
	}

	out, err := Merge([][]harparse.Entry{in})
	r.NoError(err)
	// Same entries, same order, no resort.
	r.Equal(in, out)
}

func TestKeyIgnoresQueryString(t *testing.T) {
	r := require.New(t)

	a := entry("GET", "https://x/a?b=1", 200, 0)
	b := entry("GET", "https://x/a?b=2", 200, 0)
	r.Equal(Key(a), Key(b))
}

func TestKeyCaseNormalizesMethod(t *testing.T) {
	r := require.New(t)

	r.Equal(Key(entry("get", "https://x/a", 200, 0)), Key(entry("GET", "https://x/a", 200, 0)))
}

func TestMergeLargestResponseWins(t *testing.T) {
	r := require.New(t)

	small := entry("GET", "https://x/a", 200, 10)
	big := entry("GET", "https://x/a", 200, 99)
	other := entry("GET", "https://x/b", 200, 1)

	out, err := Merge([][]harparse.Entry{{small}, {big, other}})
	r.NoError(err)
	r.Len(out, 2)
	r.Equal(int64(99), out[0].ResponseSize())
}

func TestMergeTieKeepsFirstSeen(t *testing.T) {
	r := require.New(t)

	first := entry("GET", "https://x/a", 200, 10)
	first.ResponseBody.Text = "first"
	second := entry("GET", "https://x/a", 200, 10)
	second.ResponseBody.Text = "second"

	out, err := Merge([][]harparse.Entry{{first}, {second}})
	r.NoError(err)
	r.Len(out, 1)
	r.Equal("first", out[0].ResponseBody.Text)
}

func TestMergeDeterministicOrder(t *testing.T) {
	r := require.New(t)

	a := entry("POST", "https://x/a", 201, 0)
	b := entry("GET", "https://x/a", 200, 0)
	c := entry("DELETE", "https://x/b", 204, 0)
	d := entry("GET", "https://x/b", 200, 0)

	out, err := Merge([][]harparse.Entry{{c, a}, {d, b}})
	r.NoError(err)
	r.Len(out, 4)
	r.Equal([]harparse.Entry{b, a, d, c}, out)

	// Input order does not matter.
	out2, err := Merge([][]harparse.Entry{{b, d}, {a, c}})
	r.NoError(err)
	r.Equal(out, out2)
}

func TestMergeUnknownMethodSortsFirst(t *testing.T) {
	r := require.New(t)

	get := entry("GET", "https://x/a", 200, 0)
	custom := entry("PURGE", "https://x/a", 200, 0)

	out, err := Merge([][]harparse.Entry{{get}, {custom}})
	r.NoError(err)
	r.Equal("PURGE", out[0].Method)
	r.Equal("GET", out[1].Method)
}

func TestMergeMissingBodyDefaultsToZero(t *testing.T) {
	r := require.New(t)

	withBody := entry("GET", "https://x/a", 200, 1)
	noBody := harparse.Entry{Method: "GET", URL: "https://x/a", Status: 200}

	out, err := Merge([][]harparse.Entry{{noBody}, {withBody}})
	r.NoError(err)
	r.Len(out, 1)
	r.Equal(int64(1), out[0].ResponseSize())
}
