package interchange

import (
	"github.com/JoschaMetze/edifact-mapper-sub002/assemble"
	"github.com/JoschaMetze/edifact-mapper-sub002/edifact"
	"github.com/JoschaMetze/edifact-mapper-sub002/mapping"
)

// Nachrichtendaten carries the envelope fields spec §6 recognizes at
// emission time, extracted from (forward) or supplied into (reverse) an
// interchange's UNB segment.
type Nachrichtendaten struct {
	SyntaxKennung  string `json:"syntaxKennung"`
	AbsenderCode   string `json:"absenderCode"`
	EmpfaengerCode string `json:"empfaengerCode"`
	Datum          string `json:"datum"`
	Zeit           string `json:"zeit"`
	InterchangeRef string `json:"interchangeRef"`
}

// Nachricht is one converted message: its UNH reference and message-type
// code, the assembled Stammdaten (from the message-level scope), and one
// Transaktion entry per repetition of the transaction subgroup, each
// holding that repetition's own merged definitions output (typically
// keyed "stammdaten"/"transaktionsdaten" by the transaction definitions'
// own Entity names).
type Nachricht struct {
	UNHReferenz    string                `json:"unhReferenz"`
	NachrichtenTyp string                `json:"nachrichtenTyp"`
	Stammdaten     map[string]any        `json:"stammdaten"`
	Transaktionen  []map[string]any      `json:"transaktionen"`
	Diagnostics    []assemble.Diagnostic `json:"-"`
}

// Interchange is the three-level BO4E JSON shape spec §6 defines:
// envelope metadata plus the list of converted messages.
type Interchange struct {
	Nachrichtendaten Nachrichtendaten `json:"nachrichtendaten"`
	Nachrichten      []Nachricht      `json:"nachrichten"`
}

// ForwardResult is the full conversion of one interchange, plus the raw
// envelope/trailer segments split.go produced (kept for callers that
// need the wire-level service segments, not part of the BO4E JSON shape
// itself).
type ForwardResult struct {
	Interchange
	Envelope *edifact.Segment `json:"-"`
	Trailer  *edifact.Segment `json:"-"`
}

// Forward splits data, assembles each message chunk against the
// orchestrator's schema, and maps both the message-level scope and each
// transaction-subgroup repetition to BO4E-shaped JSON, wrapping the
// result into the interchange shape spec §6 requires.
func (o *Orchestrator) Forward(data []byte) (*ForwardResult, error) {
	split, err := SplitInterchange(data)
	if err != nil {
		return nil, err
	}

	result := &ForwardResult{
		Interchange: Interchange{Nachrichtendaten: extractNachrichtendaten(split.Envelope)},
		Envelope:    split.Envelope,
		Trailer:     split.Trailer,
	}
	for _, chunk := range split.Messages {
		n, err := o.forwardMessage(chunk)
		if err != nil {
			return nil, err
		}
		result.Nachrichten = append(result.Nachrichten, n)
	}
	return result, nil
}

func (o *Orchestrator) forwardMessage(chunk MessageChunk) (Nachricht, error) {
	tree, diags := assemble.Assemble(chunk.Body, o.mig)

	stammdaten, err := mapping.MapAll(tree.Pre, tree.Groups, o.messageDefs)
	if err != nil {
		return Nachricht{}, err
	}

	var transaktionen []map[string]any
	for _, occ := range tree.Groups {
		if occ.GroupID != o.transactionGroupID {
			continue
		}
		for _, rep := range occ.Repetitions {
			t, err := mapping.MapAll(rep.Segments, rep.Groups, o.transactionDefs)
			if err != nil {
				return Nachricht{}, err
			}
			transaktionen = append(transaktionen, t)
		}
	}

	unhRef, nachrichtenTyp := extractUNH(chunk.Header)
	return Nachricht{
		UNHReferenz:    unhRef,
		NachrichtenTyp: nachrichtenTyp,
		Stammdaten:     stammdaten,
		Transaktionen:  transaktionen,
		Diagnostics:    diags,
	}, nil
}

// extractNachrichtendaten reads the envelope fields spec §6 names off a
// UNB segment: syntax identifier, sender/receiver codes, date/time, and
// the interchange reference. A nil segment (malformed input with no UNB)
// yields a zero-value Nachrichtendaten.
func extractNachrichtendaten(unb *edifact.Segment) Nachrichtendaten {
	if unb == nil {
		return Nachrichtendaten{}
	}
	return Nachrichtendaten{
		SyntaxKennung:  unb.Component(0, 0),
		AbsenderCode:   unb.Component(1, 0),
		EmpfaengerCode: unb.Component(2, 0),
		Datum:          unb.Component(3, 0),
		Zeit:           unb.Component(3, 1),
		InterchangeRef: unb.Component(4, 0),
	}
}

// extractUNH reads a message's reference number and message-type code
// off its UNH segment.
func extractUNH(unh *edifact.Segment) (unhReferenz, nachrichtenTyp string) {
	if unh == nil {
		return "", ""
	}
	return unh.Component(0, 0), unh.Component(1, 0)
}
