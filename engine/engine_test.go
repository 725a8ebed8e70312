package engine

import "testing"

func TestCompileInvalidPattern(t *testing.T) {
	if _, err := Compile(`a(b`); err == nil {
		t.Fatal("Compile() on unbalanced pattern: want error, got nil")
	}
}

func TestCompileInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxRecursionDepth = 0
	if _, err := CompileWithConfig("a", config); err == nil {
		t.Fatal("CompileWithConfig() with MaxRecursionDepth=0: want ConfigError, got nil")
	}
}

func TestCompileBuildsMatcher(t *testing.T) {
	prog, err := Compile("ab*c")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	m := prog.NewMatcher("xacx")
	s, e, ok := m.Next()
	if !ok || s != 1 || e != 3 {
		t.Fatalf("Next() = (%d,%d,%v), want (1,3,true)", s, e, ok)
	}
}

func TestCompileBuildsPrefilterForLiteral(t *testing.T) {
	prog, err := Compile("abc")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if prog.Prefilter() == nil {
		t.Fatal("Prefilter() = nil, want a runeFinder for a plain literal")
	}
	if !prog.PrefilterIsComplete() {
		t.Error("PrefilterIsComplete() = false, want true for a pattern that is exactly one literal")
	}
}

func TestCompileNoPrefilterForLeadingDot(t *testing.T) {
	prog, err := Compile(".*abc")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if prog.Prefilter() != nil {
		t.Error("Prefilter() != nil, want nil when the pattern has no fixed prefix")
	}
}

func TestCompileWithPrefilterDisabled(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false
	prog, err := CompileWithConfig("abc", config)
	if err != nil {
		t.Fatalf("CompileWithConfig() error: %v", err)
	}
	if prog.Prefilter() != nil {
		t.Error("Prefilter() != nil, want nil when EnablePrefilter is false")
	}
}

func TestCompileAlternationPrefilterNotComplete(t *testing.T) {
	prog, err := Compile("cat|elephant")
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if prog.PrefilterIsComplete() {
		t.Error("PrefilterIsComplete() = true, want false for alternatives of differing length")
	}
}
