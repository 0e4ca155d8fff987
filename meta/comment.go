package meta

type digraphEvent int

const (
	digraphNone digraphEvent = iota
	digraphOpen
	digraphClose
)

// digraph recognizes the two-character comment delimiters across
// consecutive tokens: /* outside a block comment, */ inside one. A
// token that does not continue the pending pair resets it, but is
// reconsidered once as a fresh first character, so a run like **/
// still closes a comment.
type digraph struct {
	inComment bool
	armed     bool
}

func (d *digraph) feed(kind TokenKind) digraphEvent {
	first, second := TokenSlash, TokenStar
	if d.inComment {
		first, second = TokenStar, TokenSlash
	}
	if d.armed {
		d.armed = false
		if kind == second {
			d.inComment = !d.inComment
			if d.inComment {
				return digraphOpen
			}
			return digraphClose
		}
	}
	d.armed = kind == first
	return digraphNone
}

type commentState int

const (
	commentAmbiguous commentState = iota
	commentClosed
	commentStillOpen
)

// trailingCommentState rescans the raw characters of a line that ended
// while a block comment was open, to settle delimiter sequences the
// forward token scan lost track of (a */ swallowed by a literal scan, a
// close-then-reopen run). It looks for the first // to bound the
// search, then walks backward from the end of the line; the last
// complete delimiter decides. A heuristic only: the downstream compiler
// has the final word.
func trailingCommentState(line string) commentState {
	slashes := 0
	for i := 0; i < len(line); i++ {
		if line[i] != '/' {
			slashes = 0
			continue
		}
		slashes++
		if slashes < 2 {
			continue
		}
		var expect byte
		for j := len(line) - 1; j > i; j-- {
			switch line[j] {
			case '*':
				if expect == '*' {
					return commentClosed
				}
				expect = '/'
			case '/':
				if expect == '/' {
					return commentStillOpen
				}
				expect = '*'
			default:
				expect = 0
			}
		}
		return commentAmbiguous
	}
	return commentAmbiguous
}
