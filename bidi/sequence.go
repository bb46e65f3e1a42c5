package bidi

import (
	"fmt"
	"strings"
)

// complement maps a nucleotide to its complement, preserving case.
// Unrecognized characters map to N (or n).
func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'T', 'U':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	case 'a':
		return 't'
	case 't', 'u':
		return 'a'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 'N':
		return 'N'
	default:
		return 'n'
	}
}

// ReverseComplement returns the reverse complement of a nucleotide sequence.
// Complexity: O(len(seq))
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		out[i] = complement(seq[len(seq)-1-i])
	}
	return string(out)
}

// SpellSequence spells the nucleotide sequence of a visit run. Node visits
// contribute their (possibly reverse-complemented) sequence; nested-site
// visits contribute an opaque "(start:end)" placeholder keyed by the
// direction of travel, so runs differing only inside a child site compare
// equal while runs crossing different children do not.
func (g *Graph) SpellSequence(visits []Visit) (string, error) {
	var sb strings.Builder
	for _, v := range visits {
		if v.IsSnarl() {
			if v.Backward {
				fmt.Fprintf(&sb, "(%d:%d)", v.Bounds.EndID, v.Bounds.StartID)
			} else {
				fmt.Fprintf(&sb, "(%d:%d)", v.Bounds.StartID, v.Bounds.EndID)
			}
			continue
		}
		n, err := g.Node(v.NodeID)
		if err != nil {
			return "", err
		}
		if v.Backward {
			sb.WriteString(ReverseComplement(n.Sequence))
		} else {
			sb.WriteString(n.Sequence)
		}
	}
	return sb.String(), nil
}
