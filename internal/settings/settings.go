package settings

import "time"

// Setting is one key/value pair of editable site text ("who we are", footer
// blurbs, contact info, ...), plus a few operational keys like the legacy
// admin credentials.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
