// Package replay reads game replay documents and walks their action tree
// into an ordered list of game states.
package replay

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNoPayload means the envelope has no game/pubdata element.
	ErrNoPayload = errors.New("replay has no game payload")
	// ErrNoPurchase means the payload has no PURCHASES/PURCHASE record.
	ErrNoPurchase = errors.New("replay payload has no purchase record")
)

// Envelope is the outer response document. The game payload is itself an
// XML document carried as CDATA in pubdata.
type Envelope struct {
	XMLName xml.Name `xml:"response"`
	Game    *Game    `xml:"game"`
}

// Game wraps the CDATA payload.
type Game struct {
	PubData *string `xml:"pubdata"`
}

// Purchases is the root of the inner payload.
type Purchases struct {
	XMLName  xml.Name
	Purchase *Purchase `xml:"PURCHASE"`
}

// Purchase holds the results of one round.
type Purchase struct {
	Results []Result `xml:"RESULT"`
}

// Result holds one result's ordered actions.
type Result struct {
	ActionList *ActionList `xml:"ACTIONS"`
}

// ActionList is the ACTIONS element of a result.
type ActionList struct {
	Ordered *Ordered `xml:"ORDERED"`
}

// Ordered holds actions in the order they were played.
type Ordered struct {
	Actions []Action `xml:"ACTION"`
}

// OrderedActions returns the result's actions in document order.
func (r Result) OrderedActions() []Action {
	if r.ActionList == nil || r.ActionList.Ordered == nil {
		return nil
	}
	return r.ActionList.Ordered.Actions
}

// Action is a game action, optionally carrying a window snapshot and steps.
type Action struct {
	Name   string `xml:"name,attr"`
	Window string `xml:"window,attr"`
	Mask   string `xml:"mask,attr"`
	Steps  []Step `xml:"STEP"`
}

// Step is a single piece movement.
type Step struct {
	Path       string `xml:"path,attr"`
	Pos        string `xml:"pos,attr"`
	PrevPos    string `xml:"prev-pos,attr"`
	Sym        string `xml:"sym,attr"`
	Win        string `xml:"win,attr"`
	FirstStep  string `xml:"first-step,attr"`
	LastStep   string `xml:"last-step,attr"`
	AngryBirds string `xml:"angry-birds,attr"`
}

// ParseEnvelope decodes the outer document and checks that it carries a payload.
func ParseEnvelope(r io.Reader) (*Envelope, error) {
	var env Envelope
	if err := xml.NewDecoder(r).Decode(&env); err != nil {
		return nil, fmt.Errorf("parse envelope: %w", err)
	}
	if env.Game == nil || env.Game.PubData == nil {
		return nil, ErrNoPayload
	}
	return &env, nil
}

// Payload returns the inner document text.
func (e *Envelope) Payload() string {
	if e.Game == nil || e.Game.PubData == nil {
		return ""
	}
	return *e.Game.PubData
}

// ParsePayload decodes the inner game document.
func ParsePayload(payload string) (*Purchases, error) {
	var doc Purchases
	if err := xml.NewDecoder(strings.NewReader(payload)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPurchase
		}
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	if doc.XMLName.Local != "PURCHASES" || doc.Purchase == nil {
		return nil, ErrNoPurchase
	}
	return &doc, nil
}

// Parse runs both stages: the envelope, then the payload it carries.
func Parse(r io.Reader) (*Purchases, error) {
	env, err := ParseEnvelope(r)
	if err != nil {
		return nil, err
	}
	return ParsePayload(env.Payload())
}
