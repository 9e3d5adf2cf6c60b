// decode.go
// ---------
// Content-type-aware decoding of a RawResponse into a caller-facing value.
// Classification gates decoding: a non-success status never reaches the
// JSON parser, it becomes a StatusError carrying the raw body instead.
package specwire

import (
	"bytes"
	"encoding/json"
	"mime"
)

const jsonMediaType = "application/json"

// mediaType extracts the bare media type from a Content-Type header value,
// dropping parameters such as charset. An unparsable or empty header yields "".
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}

// DecodeResponse turns a RawResponse into the value handed back to callers.
//
// A non-success status yields the matching StatusError. A successful
// response whose content type is not the JSON media type decodes to the
// boolean true: the call worked but produced no structured payload the
// client understands. A successful JSON response with an empty body decodes
// to an empty map; otherwise the body is parsed and returned as-is. A body
// that fails to parse under a JSON content type yields MalformedResponseError.
func DecodeResponse(resp *RawResponse) (any, error) {
	if c := Classify(resp.StatusCode); c != Success {
		return nil, &StatusError{
			Classification: c,
			StatusCode:     resp.StatusCode,
			Body:           resp.Body,
		}
	}

	ct := mediaType(resp.Header("Content-Type"))
	if ct != jsonMediaType {
		return true, nil
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return nil, &MalformedResponseError{ContentType: ct, Body: resp.Body, Err: err}
	}
	return value, nil
}
