package literal

import "testing"

func TestSeqMinimize(t *testing.T) {
	s := NewSeq(
		NewLiteral([]rune("foo"), true),
		NewLiteral([]rune("foobar"), true),
		NewLiteral([]rune("baz"), true),
	)
	s.Minimize()
	if s.Len() != 2 {
		t.Fatalf("Minimize() left %d literals, want 2: %v", s.Len(), s.Strings())
	}
	for _, got := range s.Strings() {
		if got == "foobar" {
			t.Errorf("Minimize() kept redundant literal %q", got)
		}
	}
}

func TestSeqLongestCommonPrefix(t *testing.T) {
	s := NewSeq(
		NewLiteral([]rune("hello"), true),
		NewLiteral([]rune("help"), true),
		NewLiteral([]rune("hero"), true),
	)
	if got := string(s.LongestCommonPrefix()); got != "he" {
		t.Errorf("LongestCommonPrefix() = %q, want \"he\"", got)
	}
}

func TestSeqLongestCommonPrefixNone(t *testing.T) {
	s := NewSeq(NewLiteral([]rune("abc"), true), NewLiteral([]rune("def"), true))
	if got := s.LongestCommonPrefix(); got != nil {
		t.Errorf("LongestCommonPrefix() = %q, want nil", string(got))
	}
}

func TestSeqLongestCommonSuffix(t *testing.T) {
	s := NewSeq(
		NewLiteral([]rune("cat"), true),
		NewLiteral([]rune("bat"), true),
		NewLiteral([]rune("rat"), true),
	)
	if got := string(s.LongestCommonSuffix()); got != "at" {
		t.Errorf("LongestCommonSuffix() = %q, want \"at\"", got)
	}
}

func TestSeqCrossForward(t *testing.T) {
	s := NewSeq(NewLiteral([]rune("a"), true), NewLiteral([]rune("b"), true))
	s.CrossForward(NewSeq(NewLiteral([]rune("1"), true), NewLiteral([]rune("2"), true)))
	want := map[string]bool{"a1": true, "a2": true, "b1": true, "b2": true}
	if s.Len() != 4 {
		t.Fatalf("CrossForward produced %d literals, want 4", s.Len())
	}
	for _, got := range s.Strings() {
		if !want[got] {
			t.Errorf("unexpected literal %q in cross-product", got)
		}
	}
}

func TestSeqDistinctLeading(t *testing.T) {
	s := NewSeq(NewLiteral([]rune("abc"), true), NewLiteral([]rune("axy"), true), NewLiteral([]rune("bq"), true))
	runes, ok := s.DistinctLeading(3)
	if !ok {
		t.Fatal("DistinctLeading(3) = false, want true")
	}
	if string(runes) != "ab" {
		t.Errorf("DistinctLeading(3) = %q, want \"ab\"", string(runes))
	}
	if _, ok := s.DistinctLeading(1); ok {
		t.Error("DistinctLeading(1) = true, want false (2 distinct leading runes)")
	}
}

func TestSeqCloneIsIndependent(t *testing.T) {
	s := NewSeq(NewLiteral([]rune("abc"), true))
	clone := s.Clone()
	clone.literals[0].Runes[0] = 'X'
	if s.Get(0).Runes[0] == 'X' {
		t.Error("Clone() shares underlying rune storage with the original")
	}
}

func TestEmptySeq(t *testing.T) {
	var s *Seq
	if !s.IsEmpty() {
		t.Error("nil Seq should be empty")
	}
	if s.Len() != 0 {
		t.Error("nil Seq should have length 0")
	}
}
