package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cslr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.scanner")
	defer teardown()
	//
	input := "# a declaration\ntype id\n\n   ;  \n"
	toks := Split(input)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(toks))
	}
	if k := strings.Join(cslr.Kinds(toks), " "); k != "type id ;" {
		t.Errorf("expected kinds 'type id ;', got %q", k)
	}
	for i, tok := range toks {
		if tok.Span().From() != uint64(i) || tok.Span().To() != uint64(i+1) {
			t.Errorf("expected token %d to span %d…%d, is %v", i, i, i+1, tok.Span())
		}
		if tok.Lexeme() != tok.Kind() {
			t.Errorf("expected lexeme of token file token to equal its kind, is %q", tok.Lexeme())
		}
	}
}

func TestTokenFileEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.scanner")
	defer teardown()
	//
	tz := TokenFile(strings.NewReader("a b"))
	tz.NextToken()
	tz.NextToken()
	for i := 0; i < 2; i++ {
		tok := tz.NextToken()
		if tok.Kind() != EOF {
			t.Errorf("expected end of input, got %v", tok)
		}
		if tok.Span().From() != 2 || tok.Span().Len() != 0 {
			t.Errorf("expected empty span at 2 for end of input, is %v", tok.Span())
		}
	}
}

func TestEmptyTokenFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.scanner")
	defer teardown()
	//
	if toks := Split("  \n# nothing\n"); len(toks) != 0 {
		t.Errorf("expected no tokens, got %v", toks)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestTokenFileError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cslr.scanner")
	defer teardown()
	//
	var reported error
	tz := TokenFile(failingReader{})
	tz.SetErrorHandler(func(e error) { reported = e })
	if tok := tz.NextToken(); tok.Kind() != EOF {
		t.Errorf("expected end of input, got %v", tok)
	}
	if reported == nil || reported.Error() != "disk on fire" {
		t.Errorf("expected read error to be reported, got %v", reported)
	}
}
