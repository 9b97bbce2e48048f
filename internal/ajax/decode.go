// internal/ajax/decode.go
//
// POST body decoding.
//
// Context
//   The contact page posts either JSON
//
//      {"method": "formSubmit", "data": [{"name": "name", "value": "John"}]}
//
//   or the form-encoded shape jQuery produces for the same object
//
//      method=formSubmit&data[0][name]=name&data[0][value]=John
//
//   Both decode into one Request, as does a multipart/form-data body
//   (fetch with a FormData object) carrying the same keys.  A body without
//   any keys is Empty.
//
// Notes
//   •  A JSON "method": null counts as absent, like an unset key.
//   •  A non-string JSON method is kept as its raw text, so it dispatches
//      as an unknown method rather than failing the decode.
//   •  Form entries data[i][…] are ordered by their numeric index.
//
//------------------------------------------------------------------------------

package ajax

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"

	"github.com/yanizio/landing/internal/form"
)

// Request is a decoded AJAX call.
type Request struct {
	Empty     bool         // body carried no keys at all
	HasMethod bool         // a non-null "method" key was present
	Method    string       // meaningful only when HasMethod
	Data      []form.Field // "data" entries in submission order
}

// Decode reads at most limit bytes of r's body (limit ≤ 0 means no cap).
// Syntax errors and oversize bodies wrap ErrMalformedRequest.
func Decode(r *http.Request, limit int64) (Request, error) {
	body := io.Reader(r.Body)
	if limit > 0 {
		body = io.LimitReader(r.Body, limit+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return Request{}, fmt.Errorf("%w: read body: %v", ErrMalformedRequest, err)
	}
	if limit > 0 && int64(len(raw)) > limit {
		return Request{}, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedRequest, limit)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Request{Empty: true}, nil
	}

	mt, params, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/json":
		return decodeJSON(raw)
	case "multipart/form-data":
		return decodeMultipart(raw, params["boundary"])
	}
	return decodeForm(raw)
}

//
// JSON
//

func decodeJSON(raw []byte) (Request, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if len(obj) == 0 {
		return Request{Empty: true}, nil
	}

	var req Request
	if m, ok := obj["method"]; ok && string(m) != "null" {
		req.HasMethod = true
		if err := json.Unmarshal(m, &req.Method); err != nil {
			req.Method = string(m)
		}
	}
	if d, ok := obj["data"]; ok && string(d) != "null" {
		if err := json.Unmarshal(d, &req.Data); err != nil {
			return Request{}, fmt.Errorf("%w: data: %v", ErrMalformedRequest, err)
		}
	}
	return req, nil
}

//
// Form-encoded (jQuery)
//

var dataKeyRE = regexp.MustCompile(`^data\[(\d+)\]\[(name|value)\]$`)

func decodeForm(raw []byte) (Request, error) {
	vals, err := url.ParseQuery(string(raw))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	return decodeValues(vals)
}

// decodeMultipart handles a FormData body.  Only value parts are read;
// file parts are discarded.
func decodeMultipart(raw []byte, boundary string) (Request, error) {
	if boundary == "" {
		return Request{}, fmt.Errorf("%w: multipart body without boundary", ErrMalformedRequest)
	}
	mf, err := multipart.NewReader(bytes.NewReader(raw), boundary).ReadForm(int64(len(raw)))
	if err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	defer func() { _ = mf.RemoveAll() }()
	return decodeValues(url.Values(mf.Value))
}

// decodeValues maps method and data[i][name|value] keys onto a Request.
func decodeValues(vals url.Values) (Request, error) {
	if len(vals) == 0 {
		return Request{Empty: true}, nil
	}

	var req Request
	if m, ok := vals["method"]; ok && len(m) > 0 {
		req.HasMethod = true
		req.Method = m[0]
	}

	byIndex := make(map[int]*form.Field)
	for key, vs := range vals {
		sub := dataKeyRE.FindStringSubmatch(key)
		if sub == nil || len(vs) == 0 {
			continue
		}
		i, err := strconv.Atoi(sub[1])
		if err != nil {
			return Request{}, fmt.Errorf("%w: %s", ErrMalformedRequest, key)
		}
		f, ok := byIndex[i]
		if !ok {
			f = &form.Field{}
			byIndex[i] = f
		}
		if sub[2] == "name" {
			f.Name = vs[0]
		} else {
			f.Value = vs[0]
		}
	}

	idx := make([]int, 0, len(byIndex))
	for i := range byIndex {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	for _, i := range idx {
		req.Data = append(req.Data, *byIndex[i])
	}
	return req, nil
}
