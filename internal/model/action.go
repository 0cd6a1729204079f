/*
DESCRIPTION
  action.go defines the Action tagged union. HttpCall is presently the
  only variant; the tagging scheme leaves room for more without breaking
  the wire format.

LICENSE
  Copyright (C) 2026 the Hawkeye Authors.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  This is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
  or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public
  License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package model

import (
	"encoding/json"
	"fmt"
)

// HTTPMethod is the set of methods an HttpCall action may use.
type HTTPMethod string

const (
	MethodGET    HTTPMethod = "GET"
	MethodPOST   HTTPMethod = "POST"
	MethodPUT    HTTPMethod = "PUT"
	MethodPATCH  HTTPMethod = "PATCH"
	MethodDELETE HTTPMethod = "DELETE"
)

// BasicAuth carries HTTP Basic credentials for an HttpCall.
type BasicAuth struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HTTPCallAction is a webhook fired on a Transition.
type HTTPCallAction struct {
	Method      HTTPMethod        `json:"method"`
	URL         string            `json:"url"`
	Description *string           `json:"description,omitempty"`
	Auth        *BasicAuth        `json:"-"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        *string           `json:"body,omitempty"`
	Retries     *uint8            `json:"retries,omitempty"`
	Timeout     *uint32           `json:"timeout,omitempty"`
}

// ActionKind discriminates the Action tagged union.
type ActionKind string

const (
	ActionKindHTTPCall ActionKind = "http_call"
)

// Action is a tagged union of action variants. Exactly one of the
// per-kind fields is populated, matching Kind.
type Action struct {
	Kind     ActionKind
	HTTPCall *HTTPCallAction
}

// action is the flattened wire representation of Action: the internally
// tagged "type" discriminant alongside the HttpCall fields, matching
// serde's #[serde(tag = "type", rename_all = "snake_case")] layout.
type action struct {
	Type        ActionKind        `json:"type"`
	Method      HTTPMethod        `json:"method,omitempty"`
	URL         string            `json:"url,omitempty"`
	Description *string           `json:"description,omitempty"`
	Auth        *basicAuthWire    `json:"auth,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        *string           `json:"body,omitempty"`
	Retries     *uint8            `json:"retries,omitempty"`
	Timeout     *uint32           `json:"timeout,omitempty"`
}

// basicAuthWire mirrors the original model's externally tagged HttpAuth
// enum: {"basic": {"username":..., "password":...}}.
type basicAuthWire struct {
	Basic *BasicAuth `json:"basic"`
}

func (a Action) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionKindHTTPCall:
		if a.HTTPCall == nil {
			return nil, fmt.Errorf("model: http_call action missing HTTPCall")
		}
		w := action{
			Type:        ActionKindHTTPCall,
			Method:      a.HTTPCall.Method,
			URL:         a.HTTPCall.URL,
			Description: a.HTTPCall.Description,
			Headers:     a.HTTPCall.Headers,
			Body:        a.HTTPCall.Body,
			Retries:     a.HTTPCall.Retries,
			Timeout:     a.HTTPCall.Timeout,
		}
		if a.HTTPCall.Auth != nil {
			w.Auth = &basicAuthWire{Basic: a.HTTPCall.Auth}
		}
		return json.Marshal(w)
	default:
		return nil, fmt.Errorf("model: unknown action kind %q", a.Kind)
	}
}

func (a *Action) UnmarshalJSON(data []byte) error {
	var w action
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case ActionKindHTTPCall:
		call := &HTTPCallAction{
			Method:      w.Method,
			URL:         w.URL,
			Description: w.Description,
			Headers:     w.Headers,
			Body:        w.Body,
			Retries:     w.Retries,
			Timeout:     w.Timeout,
		}
		if w.Auth != nil {
			call.Auth = w.Auth.Basic
		}
		*a = Action{Kind: ActionKindHTTPCall, HTTPCall: call}
		return nil
	default:
		return fmt.Errorf("model: unsupported action type %q", w.Type)
	}
}
