package interchange

import (
	"fmt"

	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/disassemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/encode"
	"github.com/JoschaMetze/edifact-mapper-sub002/mapping"
)

// Level names the granularity of a reverse conversion's input.
type Level int

const (
	// LevelInterchange supplies a full list of Nachrichten.
	LevelInterchange Level = iota
	// LevelNachricht supplies exactly one Nachricht.
	LevelNachricht
	// LevelTransaktion supplies a single transaction's merged map,
	// wrapped as the sole transaction of a single synthesized Nachricht.
	LevelTransaktion
)

// NachrichtInput is one message's worth of reverse-conversion input: its
// UNH reference and message-type code (optional — Defaults fills them in
// when empty), plus the message-level Stammdaten and zero or more
// transaction maps.
type NachrichtInput struct {
	UNHReferenz    string
	NachrichtenTyp string
	Stammdaten     map[string]any
	Transaktionen  []map[string]any
}

// ReverseInput is what Reverse accepts, shaped by Level.
type ReverseInput struct {
	Level Level
	// Nachrichtendaten optionally overrides the envelope fields Defaults
	// would otherwise supply, so a caller holding a prior Forward
	// result's envelope can round-trip it verbatim.
	Nachrichtendaten Nachrichtendaten
	Nachrichten      []NachrichtInput // LevelInterchange, LevelNachricht (single entry)
	Transaktion      map[string]any   // LevelTransaktion
	Defaults         Defaults
}

// Reverse reconstructs a full EDIFACT interchange from in, synthesizing
// any envelope and service-segment data the input level omits from
// in.Defaults (overridden in turn by in.Nachrichtendaten where set).
func (o *Orchestrator) Reverse(in ReverseInput) ([]byte, error) {
	defaults := in.Defaults.fromNachrichtendaten(in.Nachrichtendaten).withFallbacks()

	var nachrichten []NachrichtInput
	switch in.Level {
	case LevelTransaktion:
		nachrichten = []NachrichtInput{{Transaktionen: []map[string]any{in.Transaktion}}}
	default:
		nachrichten = in.Nachrichten
	}

	ic := &encode.Interchange{
		Header:  synthesizeUNB(defaults),
		Trailer: edifact.NewSegment("UNZ"),
	}

	for i, n := range nachrichten {
		body, err := o.reverseNachricht(n)
		if err != nil {
			return nil, err
		}
		ic.Messages = append(ic.Messages, encode.Message{
			Header:  synthesizeUNH(defaults, n, i),
			Body:    body,
			Trailer: edifact.NewSegment("UNT"),
		})
	}

	return encode.New().Encode(ic)
}

func (o *Orchestrator) reverseNachricht(n NachrichtInput) ([]*edifact.Segment, error) {
	msgRep, err := reverseAll(n.Stammdaten, o.messageDefs)
	if err != nil {
		return nil, err
	}

	tree := &assemble.Tree{Pre: msgRep.Segments, Groups: msgRep.Groups}

	if len(n.Transaktionen) > 0 {
		occ := assemble.GroupOccurrence{GroupID: o.transactionGroupID}
		for _, t := range n.Transaktionen {
			rep, err := reverseAll(t, o.transactionDefs)
			if err != nil {
				return nil, err
			}
			occ.Repetitions = append(occ.Repetitions, *rep)
		}
		tree.Groups = append(tree.Groups, occ)
	}

	segs, _ := disassemble.Disassemble(tree, o.mig)
	return segs, nil
}

// reverseAll runs mapping.Reverse for every definition in scope and
// concatenates their segments and group occurrences into one
// repetition. Each definition reads from data[def.Entity] when that key
// is present (matching how MapAll wraps Forward output); otherwise it
// reads from data directly, so a flat, unwrapped map also works.
func reverseAll(data map[string]any, defs []mapping.Definition) (*assemble.Repetition, error) {
	combined := &assemble.Repetition{}
	for _, def := range defs {
		source := data
		if sub, ok := extractEntity(data, def); ok {
			source = sub
		}
		rep, err := mapping.Reverse(source, def)
		if err != nil {
			return nil, err
		}
		combined.Segments = append(combined.Segments, rep.Segments...)
		combined.Groups = append(combined.Groups, rep.Groups...)
	}
	return combined, nil
}

func extractEntity(data map[string]any, def mapping.Definition) (map[string]any, bool) {
	v, ok := data[def.Entity]
	if !ok {
		return nil, false
	}
	switch vv := v.(type) {
	case map[string]any:
		return vv, true
	case []any:
		if len(vv) > 0 {
			if m, ok := vv[0].(map[string]any); ok {
				return m, true
			}
		}
	}
	return nil, false
}

func synthesizeUNB(d Defaults) *edifact.Segment {
	seg := edifact.NewSegment("UNB")
	seg.Elements = [][]string{
		{d.SyntaxID, "3"},
		{d.SenderCode, "14"},
		{d.ReceiverCode, "14"},
		{d.Datum, d.Zeit},
		{d.InterchangeRef},
	}
	return seg
}

// synthesizeUNH builds a message's UNH segment, preferring n's own
// UNHReferenz/NachrichtenTyp (spec §6's Nachricht fields) and falling
// back to d's defaults when either is empty. An empty reference takes
// d.UNHRef only for the first message; later messages get their 1-based
// position, zero-padded to five digits ("00002", "00003", ...).
func synthesizeUNH(d Defaults, n NachrichtInput, msgIndex int) *edifact.Segment {
	seg := edifact.NewSegment("UNH")
	ref := n.UNHReferenz
	if ref == "" {
		ref = d.UNHRef
		if msgIndex > 0 {
			ref = fmt.Sprintf("%05d", msgIndex+1)
		}
	}
	messageType := n.NachrichtenTyp
	if messageType == "" {
		messageType = d.MessageType
	}
	seg.Elements = [][]string{
		{ref},
		{messageType, "D", "21B", "UN", "2.4e"},
	}
	return seg
}
