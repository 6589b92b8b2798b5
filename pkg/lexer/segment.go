package lexer

import "github.com/aka-chestnut/sql-formatter/pkg/token"

// Segment splits the token stream into statements, cutting after each ";"
// (which stays with the statement it terminates). The trailing span after the
// last ";" forms its own statement when non-empty. The EOF token is dropped.
func Segment(tokens []token.Token) [][]token.Token {
	var statements [][]token.Token
	start := 0
	for i, tok := range tokens {
		if tok.Type == token.EOF {
			if i > start {
				statements = append(statements, tokens[start:i])
			}
			break
		}
		if tok.Is(";") {
			statements = append(statements, tokens[start:i+1])
			start = i + 1
		}
	}
	return statements
}
