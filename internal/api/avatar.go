// File: internal/api/avatar.go
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Avatar carries the avatar URL on the wire. It marshals as the URL string,
// or as literal false when the user has no avatar.
type Avatar struct {
	URL *string
}

func (a Avatar) MarshalJSON() ([]byte, error) {
	if a.URL == nil {
		return []byte("false"), nil
	}
	return json.Marshal(*a.URL)
}

// UnmarshalJSON accepts a URL string, false, or null. false and null both
// mean "no avatar".
func (a *Avatar) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("false")) || bytes.Equal(trimmed, []byte("null")) {
		a.URL = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return fmt.Errorf("avatar must be a URL string or false")
	}
	a.URL = &s
	return nil
}
