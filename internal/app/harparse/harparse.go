// Package harparse reads HAR 1.2 capture files into transaction entries.
package harparse

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// MalformedInputError reports a capture file whose structural invariants
// are violated. It aborts the parse of that file; the caller decides
// whether to skip the file or abort the batch.
type MalformedInputError struct {
	File   string
	Reason string
}

func (e *MalformedInputError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed HAR input: %s", e.Reason)
	}
	return fmt.Sprintf("malformed HAR input %s: %s", e.File, e.Reason)
}

type harFile struct {
	Log struct {
		Entries []harEntry `json:"entries"`
	} `json:"log"`
}

type harEntry struct {
	Request  *harRequest  `json:"request"`
	Response *harResponse `json:"response"`
}

type harRequest struct {
	Method      string     `json:"method"`
	URL         string     `json:"url"`
	Headers     []harNV    `json:"headers"`
	QueryString []harNV    `json:"queryString"`
	Cookies     []harNV    `json:"cookies"`
	PostData    *harPost   `json:"postData"`
}

type harResponse struct {
	Status  int         `json:"status"`
	Headers []harNV     `json:"headers"`
	Cookies []harNV     `json:"cookies"`
	Content *harContent `json:"content"`
}

type harNV struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type harPost struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

type harContent struct {
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Size     int64  `json:"size"`
}

// Parse decodes one HAR document. The file argument is attached to any
// MalformedInputError for the caller's benefit and is not read from disk
// here.
func Parse(data []byte, file string) ([]Entry, error) {
	if !gjson.ValidBytes(data) {
		return nil, &MalformedInputError{File: file, Reason: "not valid JSON"}
	}

	entries := gjson.GetBytes(data, "log.entries")
	if !entries.Exists() || !entries.IsArray() {
		return nil, &MalformedInputError{File: file, Reason: "log.entries missing or not an array"}
	}

	var doc harFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedInputError{File: file, Reason: err.Error()}
	}

	out := make([]Entry, 0, len(doc.Log.Entries))
	for i, he := range doc.Log.Entries {
		if he.Request == nil {
			return nil, &MalformedInputError{File: file, Reason: fmt.Sprintf("entry %d has no request object", i)}
		}
		if he.Response == nil {
			return nil, &MalformedInputError{File: file, Reason: fmt.Sprintf("entry %d has no response object", i)}
		}
		if he.Request.Method == "" {
			return nil, &MalformedInputError{File: file, Reason: fmt.Sprintf("entry %d request has no method", i)}
		}
		if he.Request.URL == "" {
			return nil, &MalformedInputError{File: file, Reason: fmt.Sprintf("entry %d request has no url", i)}
		}
		out = append(out, toEntry(he))
	}
	return out, nil
}

func toEntry(he harEntry) Entry {
	e := Entry{
		Method:          he.Request.Method,
		URL:             he.Request.URL,
		RequestHeaders:  toHeaders(he.Request.Headers),
		QueryParams:     toQueryParams(he.Request.QueryString),
		RequestCookies:  toCookies(he.Request.Cookies),
		Status:          he.Response.Status,
		ResponseHeaders: toHeaders(he.Response.Headers),
		ResponseCookies: toCookies(he.Response.Cookies),
	}
	if pd := he.Request.PostData; pd != nil {
		e.RequestBody = &Body{MimeType: pd.MimeType, Text: pd.Text, Size: int64(len(pd.Text))}
	}
	if c := he.Response.Content; c != nil {
		size := c.Size
		if size <= 0 {
			size = int64(len(c.Text))
		}
		e.ResponseBody = &Body{MimeType: c.MimeType, Text: c.Text, Size: size}
	}
	return e
}

func toHeaders(in []harNV) []Header {
	if in == nil {
		return nil
	}
	out := make([]Header, len(in))
	for i, h := range in {
		out[i] = Header{Name: h.Name, Value: h.Value}
	}
	return out
}

func toQueryParams(in []harNV) []QueryParam {
	if in == nil {
		return nil
	}
	out := make([]QueryParam, len(in))
	for i, q := range in {
		out[i] = QueryParam{Name: q.Name, Value: q.Value}
	}
	return out
}

func toCookies(in []harNV) []Cookie {
	if in == nil {
		return nil
	}
	out := make([]Cookie, len(in))
	for i, c := range in {
		out[i] = Cookie{Name: c.Name, Value: c.Value}
	}
	return out
}
