package harparse

// Header is one request or response header. Duplicate names are allowed
// and order is preserved.
type Header struct {
	Name  string
	Value string
}

// QueryParam is one query string parameter as captured.
type QueryParam struct {
	Name  string
	Value string
}

// Cookie is one captured cookie. Cookies are dropped wholesale during
// redaction; the struct exists so parsed entries carry them until then.
type Cookie struct {
	Name  string
	Value string
}

// Body is a captured request or response payload. Text is kept raw; Size
// is the declared byte size and defaults to 0 when the capture omits it.
type Body struct {
	MimeType string
	Text     string
	Size     int64
}

// PathParam is a path parameter extracted during URL redaction: the
// parameter name the segment was rewritten to and the concrete ID value
// it replaced.
type PathParam struct {
	Name  string
	Value string
}

// Entry is one captured request/response transaction. Entries are never
// mutated in place; every transform returns a new Entry.
type Entry struct {
	Method          string
	URL             string
	RequestHeaders  []Header
	QueryParams     []QueryParam
	RequestCookies  []Cookie
	RequestBody     *Body
	Status          int
	ResponseHeaders []Header
	ResponseCookies []Cookie
	ResponseBody    *Body

	// PathParams is populated by URL redaction.
	PathParams []PathParam
}

// ResponseSize returns the declared response body size, 0 when absent.
func (e Entry) ResponseSize() int64 {
	if e.ResponseBody == nil {
		return 0
	}
	return e.ResponseBody.Size
}

// Clone returns a deep copy of the entry.
func (e Entry) Clone() Entry {
	out := e
	out.RequestHeaders = append([]Header(nil), e.RequestHeaders...)
	out.QueryParams = append([]QueryParam(nil), e.QueryParams...)
	out.RequestCookies = append([]Cookie(nil), e.RequestCookies...)
	out.ResponseHeaders = append([]Header(nil), e.ResponseHeaders...)
	out.ResponseCookies = append([]Cookie(nil), e.ResponseCookies...)
	out.PathParams = append([]PathParam(nil), e.PathParams...)
	if e.RequestBody != nil {
		b := *e.RequestBody
		out.RequestBody = &b
	}
	if e.ResponseBody != nil {
		b := *e.ResponseBody
		out.ResponseBody = &b
	}
	return out
}
