package model

import (
	"encoding/json"
	"fmt"
)

// transportWire is the wire shape of Transport: a nested object keyed by
// its own discriminant field, {"protocol":"rtp"}, mirroring the original
// model's internally-tagged Protocol enum.
type transportWire struct {
	Protocol string `json:"protocol"`
}

func (Transport) MarshalJSON() ([]byte, error) {
	return json.Marshal(transportWire{Protocol: "rtp"})
}

func (t *Transport) UnmarshalJSON(data []byte) error {
	var w transportWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Protocol != "rtp" {
		return fmt.Errorf("model: unsupported transport protocol %q", w.Protocol)
	}
	*t = Transport{}
	return nil
}
