package optimize

// leadingFillers are conversational openings, each stripped at most once, in order.
var leadingFillers = []rewrite{
	rw(`(?i)^(lo que quiero es que|lo que necesito es que|quiero que|necesito que|me gustaría que)\s+`, ""),
	rw(`(?i)^(por favor|porfavor),?\s+`, ""),
	rw(`(?i)^(hola|buenas|hola buenas),?\s+`, ""),
}

var (
	// "me hagas una función" keeps only the article.
	requestPhrase = rw(`(?i)\b(me hagas|me crees|me desarrolles|me programes)\s+(una?\s+)`, "${2}")
	// "que pueda validar" reads as a purpose clause.
	capabilityPhrase = rw(`(?i)\b(que pueda|que sea capaz de|que permita)\s+`, "para ")
)

// normalize collapses whitespace and strips spoken-style padding.
func normalize(text, _ string) string {
	text = collapseWhitespace(text)

	for _, f := range leadingFillers {
		text = f.first(text)
	}

	text = requestPhrase.first(text)
	text = capabilityPhrase.first(text)
	return text
}
