// Package block adapts the indentation engine and a textarea model to a
// block editor's tool contract: render, save, paste, sanitize and keydown.
package block

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Data is the persisted shape of a code block: {"code": "..."}.
type Data struct {
	Code string `json:"code"`
}

// ParseData decodes block data leniently. Malformed input, a missing "code"
// field or a non-string value all yield empty code.
func ParseData(raw []byte) Data {
	if !gjson.ValidBytes(raw) {
		return Data{}
	}
	v := gjson.GetBytes(raw, "code")
	if v.Type != gjson.String {
		return Data{}
	}
	return Data{Code: v.String()}
}

// Encode returns the JSON form of d.
func (d Data) Encode() ([]byte, error) {
	return sjson.SetBytes([]byte(`{}`), "code", d.Code)
}

func (d Data) MarshalJSON() ([]byte, error) { return d.Encode() }

func (d *Data) UnmarshalJSON(raw []byte) error {
	*d = ParseData(raw)
	return nil
}

// Validate reports whether d is worth saving: blocks whose code is only
// whitespace are dropped by the host.
func Validate(d Data) bool {
	return strings.TrimSpace(d.Code) != ""
}
