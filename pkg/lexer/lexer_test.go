package lexer

import (
	"strings"
	"testing"

	"github.com/aka-chestnut/sql-formatter/pkg/dialects/mysql"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/postgresql"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/standard"
	"github.com/aka-chestnut/sql-formatter/pkg/dialects/transactsql"
	"github.com/aka-chestnut/sql-formatter/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kinds extracts the token types, dropping the trailing EOF.
func kinds(tokens []token.Token) []token.TokenType {
	types := make([]token.TokenType, 0, len(tokens)-1)
	for _, t := range tokens[:len(tokens)-1] {
		types = append(types, t.Type)
	}
	return types
}

// texts extracts the token texts, dropping the trailing EOF.
func texts(tokens []token.Token) []string {
	out := make([]string, 0, len(tokens)-1)
	for _, t := range tokens[:len(tokens)-1] {
		out = append(out, t.Text)
	}
	return out
}

func TestTokenize_BasicSelect(t *testing.T) {
	tokens := Tokenize("select a,b from t where x>1", standard.SQL)

	assert.Equal(t, []token.TokenType{
		token.RESERVED_COMMAND, // select
		token.IDENT,            // a
		token.OPERATOR,         // ,
		token.IDENT,            // b
		token.RESERVED_COMMAND, // from
		token.IDENT,            // t
		token.RESERVED_COMMAND, // where
		token.IDENT,            // x
		token.OPERATOR,         // >
		token.NUMBER,           // 1
	}, kinds(tokens))
}

func TestTokenize_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"select a,b from t where x>1",
		"SELECT\n  a,\n  b\nFROM t -- trailing\n",
		"select 'it''s' || \"col\" from t;  ",
		"select /* block\ncomment */ 1",
		"insert into t values (1, -2, 3.5e-1)",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			var b strings.Builder
			for _, tok := range Tokenize(input, standard.SQL) {
				b.WriteString(tok.WhitespaceBefore)
				b.WriteString(tok.Text)
			}
			assert.Equal(t, input, b.String())
		})
	}
}

func TestTokenize_MultiWordReserved(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   token.TokenType
		value string
	}{
		{"group by", "group by", token.RESERVED_COMMAND, "group by"},
		{"collapsed whitespace", "ORDER \t\n BY", token.RESERVED_COMMAND, "ORDER BY"},
		{"left outer join", "LEFT OUTER JOIN", token.RESERVED_BINARY_COMMAND, "LEFT OUTER JOIN"},
		{"union all", "union all", token.RESERVED_BINARY_COMMAND, "union all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input, standard.SQL)
			require.Len(t, tokens, 2) // phrase + EOF
			assert.Equal(t, tt.typ, tokens[0].Type)
			assert.Equal(t, tt.value, tokens[0].Value)
		})
	}
}

func TestTokenize_UnknownKeywordIsIdent(t *testing.T) {
	tokens := Tokenize("group left", standard.SQL)
	// Neither GROUP nor LEFT alone is reserved; both fall back to identifiers.
	assert.Equal(t, []token.TokenType{token.IDENT, token.IDENT}, kinds(tokens))
}

func TestTokenize_CaseEnd(t *testing.T) {
	tokens := Tokenize("case when a then 1 end", standard.SQL)
	assert.Equal(t, token.RESERVED_CASE_START, tokens[0].Type)
	assert.Equal(t, token.RESERVED_CASE_END, tokens[len(tokens)-2].Type)
}

func TestTokenize_Comments(t *testing.T) {
	tokens := Tokenize("select 1 -- one\n+ 2 /* two */", standard.SQL)
	var comments []string
	for _, tok := range tokens {
		if tok.IsComment() {
			comments = append(comments, tok.Text)
		}
	}
	assert.Equal(t, []string{"-- one", "/* two */"}, comments)
}

func TestTokenize_HashCommentMySQL(t *testing.T) {
	tokens := Tokenize("select 1 # note", mysql.MySQL)
	last := tokens[len(tokens)-2]
	assert.Equal(t, token.LINE_COMMENT, last.Type)
	assert.Equal(t, "# note", last.Text)
}

func TestTokenize_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"doubled quote escape", "'it''s'", "'it''s'"},
		{"unterminated runs to end", "'oops", "'oops"},
		{"national prefix", "N'text'", "N'text'"},
		{"hex prefix", "X'1F'", "X'1F'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input, standard.SQL)
			assert.Equal(t, token.STRING, tokens[0].Type)
			assert.Equal(t, tt.text, tokens[0].Text)
		})
	}
}

func TestTokenize_DollarString(t *testing.T) {
	tokens := Tokenize("select $tag$ body $tag$", postgresql.PostgreSQL)
	assert.Equal(t, token.STRING, tokens[1].Type)
	assert.Equal(t, "$tag$ body $tag$", tokens[1].Text)
}

func TestTokenize_QuotedIdentifiers(t *testing.T) {
	t.Run("double quotes are identifiers in ansi", func(t *testing.T) {
		tokens := Tokenize(`"col name"`, standard.SQL)
		assert.Equal(t, token.QUOTED_IDENT, tokens[0].Type)
		assert.Equal(t, "col name", tokens[0].Value)
	})
	t.Run("double quotes are strings in mysql", func(t *testing.T) {
		tokens := Tokenize(`"text"`, mysql.MySQL)
		assert.Equal(t, token.STRING, tokens[0].Type)
	})
	t.Run("backticks in mysql", func(t *testing.T) {
		tokens := Tokenize("`col`", mysql.MySQL)
		assert.Equal(t, token.QUOTED_IDENT, tokens[0].Type)
		assert.Equal(t, "col", tokens[0].Value)
	})
	t.Run("brackets in tsql", func(t *testing.T) {
		tokens := Tokenize("[col]", transactsql.TransactSQL)
		assert.Equal(t, token.QUOTED_IDENT, tokens[0].Type)
		assert.Equal(t, "col", tokens[0].Value)
	})
}

func TestTokenize_Placeholders(t *testing.T) {
	t.Run("bare question mark", func(t *testing.T) {
		tokens := Tokenize("where id = ?", standard.SQL)
		last := tokens[len(tokens)-2]
		assert.Equal(t, token.PLACEHOLDER, last.Type)
		assert.Equal(t, "", last.Value)
	})
	t.Run("numbered dollar", func(t *testing.T) {
		tokens := Tokenize("where id = $1", postgresql.PostgreSQL)
		last := tokens[len(tokens)-2]
		assert.Equal(t, token.PLACEHOLDER, last.Type)
		assert.Equal(t, "1", last.Value)
	})
	t.Run("named colon", func(t *testing.T) {
		tokens := Tokenize("where id = :name", postgresql.PostgreSQL)
		last := tokens[len(tokens)-2]
		assert.Equal(t, token.PLACEHOLDER, last.Type)
		assert.Equal(t, "name", last.Value)
	})
	t.Run("cast operator is not a placeholder", func(t *testing.T) {
		tokens := Tokenize("a::int", postgresql.PostgreSQL)
		assert.Equal(t, []token.TokenType{
			token.IDENT, token.OPERATOR, token.RESERVED_DATA_TYPE,
		}, kinds(tokens))
		assert.Equal(t, "::", tokens[1].Text)
	})
}

func TestTokenize_Variables(t *testing.T) {
	t.Run("mysql session variable", func(t *testing.T) {
		tokens := Tokenize("set @@sql_mode = @x", mysql.MySQL)
		assert.Contains(t, texts(tokens), "@@sql_mode")
		assert.Equal(t, token.VARIABLE, tokens[1].Type)
		assert.Equal(t, token.VARIABLE, tokens[len(tokens)-2].Type)
	})
	t.Run("tsql parameter", func(t *testing.T) {
		tokens := Tokenize("where id = @id", transactsql.TransactSQL)
		last := tokens[len(tokens)-2]
		assert.Equal(t, token.PLACEHOLDER, last.Type)
		assert.Equal(t, "id", last.Value)
	})
}

func TestTokenize_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{"integer", "42", []token.TokenType{token.NUMBER}},
		{"decimal", "4.5", []token.TokenType{token.NUMBER}},
		{"scientific", "1.5e-3", []token.TokenType{token.NUMBER}},
		{"hex", "0x1F", []token.TokenType{token.NUMBER}},
		{"negative after open paren", "(-2)", []token.TokenType{token.BLOCK_START, token.NUMBER, token.BLOCK_END}},
		{"minus between numbers is an operator", "1-2", []token.TokenType{token.NUMBER, token.OPERATOR, token.NUMBER}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinds(Tokenize(tt.input, standard.SQL)))
		})
	}
}

func TestTokenize_Operators(t *testing.T) {
	tokens := Tokenize("a <= b <> c || d", standard.SQL)
	var ops []string
	for _, tok := range tokens {
		if tok.Type == token.OPERATOR {
			ops = append(ops, tok.Text)
		}
	}
	assert.Equal(t, []string{"<=", "<>", "||"}, ops)
}

func TestTokenize_BlocksAndPropertyAccess(t *testing.T) {
	tokens := Tokenize("f(a.b)", standard.SQL)
	assert.Equal(t, []token.TokenType{
		token.IDENT, // f (COUNT-style classification happens via dialect tables)
		token.BLOCK_START,
		token.IDENT,
		token.PROPERTY_ACCESS_OPERATOR,
		token.IDENT,
		token.BLOCK_END,
	}, kinds(tokens))
}

func TestTokenize_FallbackSingleChar(t *testing.T) {
	tokens := Tokenize("a ~ b", standard.SQL)
	assert.Equal(t, token.OPERATOR, tokens[1].Type)
	assert.Equal(t, "~", tokens[1].Text)
}

func TestTokenize_EmptyInput(t *testing.T) {
	tokens := Tokenize("", standard.SQL)
	require.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Type)
}
