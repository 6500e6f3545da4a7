package harparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r := require.New(t)

	data := `{
	  "log": {
	    "version": "1.2",
	    "entries": [
	      {
	        "request": {
	          "method": "GET",
	          "url": "https://api.example.com/api/frames?page=1",
	          "headers": [{"name": "Accept", "value": "application/json"}],
	          "queryString": [{"name": "page", "value": "1"}],
	          "cookies": [{"name": "sid", "value": "abc"}]
	        },
	        "response": {
	          "status": 200,
	          "headers": [{"name": "Content-Type", "value": "application/json"}],
	          "cookies": [],
	          "content": {"mimeType": "application/json", "text": "{\"ok\":true}", "size": 11}
	        }
	      },
	      {
	        "request": {
	          "method": "POST",
	          "url": "https://api.example.com/api/frames",
	          "headers": [],
	          "queryString": [],
	          "cookies": [],
	          "postData": {"mimeType": "application/json", "text": "{\"name\":\"x\"}"}
	        },
	        "response": {
	          "status": 201,
	          "headers": [],
	          "cookies": [],
	          "content": {"mimeType": "application/json", "text": "{}", "size": -1}
	        }
	      }
	    ]
	  }
	}`

	entries, err := Parse([]byte(data), "capture.har")
	r.NoError(err)
	r.Len(entries, 2)

	first := entries[0]
	r.Equal("GET", first.Method)
	r.Equal("https://api.example.com/api/frames?page=1", first.URL)
	r.Equal(200, first.Status)
	r.Equal([]Header{{Name: "Accept", Value: "application/json"}}, first.RequestHeaders)
	r.Equal([]QueryParam{{Name: "page", Value: "1"}}, first.QueryParams)
	r.Equal([]Cookie{{Name: "sid", Value: "abc"}}, first.RequestCookies)
	r.Nil(first.RequestBody)
	r.NotNil(first.ResponseBody)
	r.Equal(int64(11), first.ResponseBody.Size)

	second := entries[1]
	r.NotNil(second.RequestBody)
	r.Equal(`{"name":"x"}`, second.RequestBody.Text)
	// Negative declared size falls back to the text length.
	r.Equal(int64(2), second.ResponseBody.Size)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		reason string
	}{
		{
			name:   "invalid json",
			data:   `{"log": `,
			reason: "not valid JSON",
		},
		{
			name:   "missing entries",
			data:   `{"log": {"version": "1.2"}}`,
			reason: "log.entries missing or not an array",
		},
		{
			name:   "entries not an array",
			data:   `{"log": {"entries": {}}}`,
			reason: "log.entries missing or not an array",
		},
		{
			name:   "entry without request",
			data:   `{"log": {"entries": [{"response": {"status": 200}}]}}`,
			reason: "entry 0 has no request object",
		},
		{
			name:   "entry without response",
			data:   `{"log": {"entries": [{"request": {"method": "GET", "url": "https://x/a"}}]}}`,
			reason: "entry 0 has no response object",
		},
		{
			name:   "request without method",
			data:   `{"log": {"entries": [{"request": {"url": "https://x/a"}, "response": {"status": 200}}]}}`,
			reason: "entry 0 request has no method",
		},
		{
			name:   "request without url",
			data:   `{"log": {"entries": [{"request": {"method": "GET"}, "response": {"status": 200}}]}}`,
			reason: "entry 0 request has no url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			_, err := Parse([]byte(tt.data), "bad.har")
			r.Error(err)

			var malformed *MalformedInputError
			r.ErrorAs(err, &malformed)
			r.Equal("bad.har", malformed.File)
			r.Equal(tt.reason, malformed.Reason)
			r.Contains(err.Error(), "bad.har")
		})
	}
}

func TestEntryResponseSize(t *testing.T) {
	r := require.New(t)

	r.Equal(int64(0), Entry{}.ResponseSize())
	r.Equal(int64(42), Entry{ResponseBody: &Body{Size: 42}}.ResponseSize())
}

func TestEntryClone(t *testing.T) {
	r := require.New(t)

	orig := Entry{
		Method:         "GET",
		URL:            "https://x/a",
		RequestHeaders: []Header{{Name: "Accept", Value: "application/json"}},
		ResponseBody:   &Body{MimeType: "application/json", Text: "{}", Size: 2},
	}

	clone := orig.Clone()
	clone.RequestHeaders[0].Value = "text/plain"
	clone.ResponseBody.Text = "[]"

	r.Equal("application/json", orig.RequestHeaders[0].Value)
	r.Equal("{}", orig.ResponseBody.Text)
}
