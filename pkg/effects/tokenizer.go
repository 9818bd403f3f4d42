package effects

import "strings"

// TokenKind 正文词元类型
type TokenKind int

const (
	// TokenWord 可见词（连续非空白字符）
	TokenWord TokenKind = iota
	// TokenBreak 换行
	TokenBreak
	// TokenSpace 行内空白段（空格、制表符等，保留原样）
	TokenSpace
)

// Token 正文的一个结构单元
//
// 所有词元的 Literal 依原文顺序拼接后必须逐字节还原原文，
// 这是打字机效果可逆性的基础。
type Token struct {
	Kind    TokenKind
	Literal string
}

// TokenizeMessage 将正文拆分为词元序列，保留换行和空白段结构
//
// 换行单独成词元（"\r\n" 归一为一个换行词元并保留字面量），
// 行内空白段合并为一个词元，其余连续字符构成词词元。
func TokenizeMessage(text string) []Token {
	var tokens []Token
	var buf strings.Builder
	var bufKind TokenKind

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: bufKind, Literal: buf.String()})
		buf.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\n' || r == '\r':
			flush()
			literal := string(r)
			// "\r\n" 作为一个换行词元，保持字面量完整
			if r == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				literal += "\n"
				i++
			}
			tokens = append(tokens, Token{Kind: TokenBreak, Literal: literal})
		case r == ' ' || r == '\t':
			if buf.Len() > 0 && bufKind != TokenSpace {
				flush()
			}
			bufKind = TokenSpace
			buf.WriteRune(r)
		default:
			if buf.Len() > 0 && bufKind != TokenWord {
				flush()
			}
			bufKind = TokenWord
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// JoinTokens 按原序拼接词元字面量（测试与还原用）
func JoinTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Literal)
	}
	return b.String()
}
