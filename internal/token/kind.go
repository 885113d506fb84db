package token

// Kind represents the category of a markup token.
type Kind uint8

const (
	// Invalid indicates a byte sequence the scanner could not classify.
	Invalid Kind = iota
	// EOF marks the end of the document.
	EOF

	// LAngle is the opening bracket of a start tag.
	LAngle // <
	// LAngleSlash is the opening bracket of an end tag.
	LAngleSlash // </
	// RAngle closes a start or end tag.
	RAngle // >
	// SlashRAngle closes a self-closing tag.
	SlashRAngle // />

	// TagName is the element name following '<' or '</'.
	TagName
	// AttrName is an attribute name inside a start tag.
	AttrName
	// Assign separates an attribute name from its value.
	Assign // =
	// AttrValue is a complete quoted attribute value.
	AttrValue
	// Quote is an unterminated quoted value.
	Quote

	// Whitespace inside a tag.
	Whitespace
	// Text is character data between tags.
	Text
	// Comment covers comments, CDATA sections, doctype and processing instructions.
	Comment
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	LAngle:      "LAngle",
	LAngleSlash: "LAngleSlash",
	RAngle:      "RAngle",
	SlashRAngle: "SlashRAngle",
	TagName:     "TagName",
	AttrName:    "AttrName",
	Assign:      "Assign",
	AttrValue:   "AttrValue",
	Quote:       "Quote",
	Whitespace:  "Whitespace",
	Text:        "Text",
	Comment:     "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}
