package lexer

import (
	"tagwise/internal/token"
)

// scanContent handles everything outside of a tag: character data, comments
// and the brackets that open a tag.
func (lx *Lexer) scanContent() token.Token {
	m := lx.cursor.Mark()
	switch {
	case lx.cursor.HasPrefix("<!--"):
		lx.cursor.SkipPast("-->")
		return lx.make(token.Comment, m)
	case lx.cursor.HasPrefix("<![CDATA["):
		lx.cursor.SkipPast("]]>")
		return lx.make(token.Comment, m)
	case lx.cursor.HasPrefix("<!"), lx.cursor.HasPrefix("<?"):
		lx.cursor.SkipPast(">")
		return lx.make(token.Comment, m)
	case lx.cursor.Peek() == '<':
		return lx.scanOpenBracket()
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() != '<' {
		lx.cursor.Bump()
	}
	return lx.make(token.Text, m)
}

func (lx *Lexer) scanOpenBracket() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	kind := token.LAngle
	if lx.cursor.Eat('/') {
		kind = token.LAngleSlash
	}
	lx.inTag = true
	lx.wantName = true
	return lx.make(kind, m)
}

func (lx *Lexer) scanInsideTag() token.Token {
	m := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	switch {
	case isSpace(ch):
		for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.wantName = false
		return lx.make(token.Whitespace, m)
	case ch == '<':
		// незакрытый тег: начинаем новый
		return lx.scanOpenBracket()
	case ch == '>':
		lx.cursor.Bump()
		lx.leaveTag()
		return lx.make(token.RAngle, m)
	case ch == '/' && lx.cursor.PeekAt(1) == '>':
		lx.cursor.Skip(2)
		lx.leaveTag()
		return lx.make(token.SlashRAngle, m)
	case ch == '=':
		lx.cursor.Bump()
		lx.wantName = false
		return lx.make(token.Assign, m)
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	case isNameByte(ch):
		for !lx.cursor.EOF() && isNameByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if lx.wantName {
			lx.wantName = false
			return lx.make(token.TagName, m)
		}
		return lx.make(token.AttrName, m)
	}
	lx.cursor.Bump()
	return lx.make(token.Invalid, m)
}

// scanString reads a quoted value. '<' cannot appear inside a value, so an
// opening bracket or the end of input ends an unterminated Quote token. An
// unterminated value stops at its first line break, which keeps the break out
// of the span a completion would replace.
func (lx *Lexer) scanString(quote byte) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.wantName = false
	lineEnd := uint32(0) // 0: no break seen yet
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case quote:
			lx.cursor.Bump()
			return lx.make(token.AttrValue, m)
		case '<':
			return lx.unterminated(m, lineEnd)
		case '\n', '\r':
			if lineEnd == 0 {
				lineEnd = lx.cursor.Off
			}
		}
		lx.cursor.Bump()
	}
	return lx.unterminated(m, lineEnd)
}

func (lx *Lexer) unterminated(m Mark, lineEnd uint32) token.Token {
	if lineEnd != 0 {
		// разрыв строки и всё после него лексируются заново внутри тега
		lx.cursor.Off = lineEnd
	}
	return lx.make(token.Quote, m)
}

func (lx *Lexer) leaveTag() {
	lx.inTag = false
	lx.wantName = false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// isNameByte accepts every byte that can continue an XML name, including all
// non-ASCII bytes so multi-byte names are kept whole.
func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '-', b == '.', b == ':':
		return true
	case b >= 0x80:
		return true
	}
	return false
}
