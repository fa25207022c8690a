package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// SessionOption is a priced sub-option of a program, e.g. a lesson tier
// ("30 min" / "$45") or a tutoring session length in hours.
type SessionOption struct {
	Name  string `json:"name,omitempty"`
	Hours string `json:"hours,omitempty"`
	Price string `json:"price"`
}

// Program is one purchasable offering in a catalog category. Beyond the
// fixed columns every category shares, each program carries an open bag of
// descriptive attributes (ages, location, schedule text, policies, ...)
// whose keys differ per category. On the wire the bag is flattened into
// the top-level JSON object, matching what the admin UI binds to.
type Program struct {
	ID           int64
	Category     string
	Name         string
	Price        string
	Image        string
	Attributes   map[string]string
	SessionTypes []SessionOption
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// reserved keys handled as struct fields; everything else in the JSON
// object lands in Attributes.
var programFixedKeys = map[string]struct{}{
	"id":          {},
	"programName": {},
	"price":       {},
	"image":       {},
	"sessionType": {},
	"createdAt":   {},
	"updatedAt":   {},
}

// MarshalJSON flattens Attributes into the top-level object.
func (p Program) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Attributes)+7)
	for k, v := range p.Attributes {
		if _, fixed := programFixedKeys[k]; fixed {
			continue
		}
		out[k] = v
	}
	out["id"] = p.ID
	out["programName"] = p.Name
	out["image"] = p.Image
	if _, err := strconv.ParseFloat(p.Price, 64); err == nil && p.Price != "" {
		out["price"] = json.Number(p.Price)
	} else {
		out["price"] = p.Price
	}
	if p.SessionTypes != nil {
		out["sessionType"] = p.SessionTypes
	}
	if !p.CreatedAt.IsZero() {
		out["createdAt"] = p.CreatedAt
	}
	if !p.UpdatedAt.IsZero() {
		out["updatedAt"] = p.UpdatedAt
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the flat wire shape and splits fixed fields from
// the open attribute bag. Non-string attribute values are kept as their
// compact JSON text.
func (p *Program) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &p.ID); err != nil {
			return err
		}
	}
	if v, ok := raw["programName"]; ok {
		if err := json.Unmarshal(v, &p.Name); err != nil {
			return err
		}
	}
	if v, ok := raw["image"]; ok {
		if err := json.Unmarshal(v, &p.Image); err != nil {
			return err
		}
	}
	if v, ok := raw["price"]; ok {
		p.Price = rawToString(v)
	}
	if v, ok := raw["sessionType"]; ok {
		if err := json.Unmarshal(v, &p.SessionTypes); err != nil {
			return err
		}
	}
	if v, ok := raw["createdAt"]; ok {
		_ = json.Unmarshal(v, &p.CreatedAt)
	}
	if v, ok := raw["updatedAt"]; ok {
		_ = json.Unmarshal(v, &p.UpdatedAt)
	}
	p.Attributes = make(map[string]string)
	for k, v := range raw {
		if _, fixed := programFixedKeys[k]; fixed {
			continue
		}
		p.Attributes[k] = rawToString(v)
	}
	return nil
}

func rawToString(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return string(v)
}
