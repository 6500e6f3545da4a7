// Package dedup collapses captured transactions from one or more capture
// sessions into a single deterministic collection with one entry per
// (method, url, status) key.
package dedup

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/har-tools/har2openapi/internal/app/harparse"
)

// ErrEmptyInput is returned when Merge is asked to operate on zero
// collections.
var ErrEmptyInput = errors.New("no entry collections to merge")

// methodPriority fixes the secondary sort order. Methods outside the
// list get index -1 and therefore sort before all listed methods.
var methodPriority = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// Merge flattens the collections, keeps the most informative entry per
// dedup key and returns a deterministically ordered result. A single
// collection is returned unchanged, in its original order.
func Merge(collections [][]harparse.Entry) ([]harparse.Entry, error) {
	if len(collections) == 0 {
		return nil, ErrEmptyInput
	}
	if len(collections) == 1 {
		return collections[0], nil
	}

	var keys []string
	winners := map[string]harparse.Entry{}
	for _, collection := range collections {
		for _, e := range collection {
			k := Key(e)
			existing, seen := winners[k]
			if !seen {
				keys = append(keys, k)
				winners[k] = e
				continue
			}
			// Larger response body wins; ties keep the first-seen entry.
			if e.ResponseSize() > existing.ResponseSize() {
				winners[k] = e
			}
		}
	}

	out := make([]harparse.Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, winners[k])
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].URL != out[j].URL {
			return out[i].URL < out[j].URL
		}
		return priority(out[i].Method) < priority(out[j].Method)
	})
	return out, nil
}

// Key derives the dedup key: upper-cased method, URL with the query and
// fragment stripped, and response status. A URL that does not parse is
// used raw.
func Key(e harparse.Entry) string {
	return strings.ToUpper(e.Method) + " " + stripQuery(e.URL) + " " + strconv.Itoa(e.Status)
}

func stripQuery(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String()
}

func priority(method string) int {
	for i, m := range methodPriority {
		if strings.EqualFold(method, m) {
			return i
		}
	}
	return -1
}
