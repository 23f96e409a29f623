package interchange

// Defaults fills envelope and service-segment data a reverse conversion
// input level doesn't carry — the same fields spec §6 names as
// nachrichtendaten: {syntaxKennung, absenderCode, empfaengerCode, datum,
// zeit, interchangeRef}. Zero-value fields fall back to the package
// defaults: UNH reference "00001", interchange reference "00000",
// message type "UTILMD", syntax identifier "UNOC".
type Defaults struct {
	SenderCode     string
	ReceiverCode   string
	MessageType    string
	InterchangeRef string
	UNHRef         string
	SyntaxID       string
	Datum          string
	Zeit           string
}

func (d Defaults) withFallbacks() Defaults {
	if d.MessageType == "" {
		d.MessageType = "UTILMD"
	}
	if d.InterchangeRef == "" {
		d.InterchangeRef = "00000"
	}
	if d.UNHRef == "" {
		d.UNHRef = "00001"
	}
	if d.SyntaxID == "" {
		d.SyntaxID = "UNOC"
	}
	return d
}

// fromNachrichtendaten overrides d's envelope fields with whatever nd
// carries set, leaving the rest (and later withFallbacks) untouched.
func (d Defaults) fromNachrichtendaten(nd Nachrichtendaten) Defaults {
	if nd.SyntaxKennung != "" {
		d.SyntaxID = nd.SyntaxKennung
	}
	if nd.AbsenderCode != "" {
		d.SenderCode = nd.AbsenderCode
	}
	if nd.EmpfaengerCode != "" {
		d.ReceiverCode = nd.EmpfaengerCode
	}
	if nd.Datum != "" {
		d.Datum = nd.Datum
	}
	if nd.Zeit != "" {
		d.Zeit = nd.Zeit
	}
	if nd.InterchangeRef != "" {
		d.InterchangeRef = nd.InterchangeRef
	}
	return d
}
