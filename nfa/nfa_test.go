package nfa

import (
	"testing"
)

func TestEpsilonClosure_Idempotent(t *testing.T) {
	n := New()
	s1 := n.AddState()
	s2 := n.AddState()
	s3 := n.AddState()
	n.AddEpsilonJump(n.Start(), s1)
	n.AddEpsilonJump(s1, s2)
	n.AddJump(s2, 'x', s3)

	once := n.EpsilonClosure(StateSet{n.Start()})
	twice := n.EpsilonClosure(once)

	if len(once) != 3 {
		t.Fatalf("closure size = %d, want 3", len(once))
	}
	if once.Key() != twice.Key() {
		t.Errorf("closure not idempotent: %v vs %v", once, twice)
	}
}

func TestEpsilonClosure_Cycle(t *testing.T) {
	n := New()
	s1 := n.AddState()
	n.AddEpsilonJump(n.Start(), s1)
	n.AddEpsilonJump(s1, n.Start())

	got := n.EpsilonClosure(StateSet{n.Start()})
	if len(got) != 2 {
		t.Fatalf("closure over epsilon cycle = %v, want both states", got)
	}
}

func TestNewLiteral(t *testing.T) {
	n := NewLiteral("ab")
	if n.StateCount() != 3 {
		t.Errorf("StateCount() = %d, want 3", n.StateCount())
	}
	if !n.Match("ab") {
		t.Error("literal NFA rejects its own string")
	}
	for _, bad := range []string{"", "a", "b", "abc", "ba"} {
		if n.Match(bad) {
			t.Errorf("literal NFA accepts %q", bad)
		}
	}
}

func TestNewLiteral_Empty(t *testing.T) {
	n := NewLiteral("")
	if !n.Match("") {
		t.Error("empty literal NFA rejects the empty string")
	}
	if n.Match("a") {
		t.Error("empty literal NFA accepts a character")
	}
}

func TestNewClass(t *testing.T) {
	tests := []struct {
		body   string
		accept string
		reject string
	}{
		{"abc", "abc", "dxz"},
		{"a-c", "abc", "dA-"},
		{"a-z0-9", "am9", "A-_"},
		{"^abc", "dxz-", "abc"},
		{`a\-b`, "a-b", "cz"},
		{`\]`, "]", "[a"},
		{`[-\]`, "[\\]", "az"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			n := NewClass(tt.body)
			for i := 0; i < len(tt.accept); i++ {
				if !n.Match(tt.accept[i : i+1]) {
					t.Errorf("class [%s] rejects %q", tt.body, tt.accept[i:i+1])
				}
			}
			for i := 0; i < len(tt.reject); i++ {
				if n.Match(tt.reject[i : i+1]) {
					t.Errorf("class [%s] accepts %q", tt.body, tt.reject[i:i+1])
				}
			}
			if n.Match("") || n.Match("aa") {
				t.Errorf("class [%s] accepts a non-single-character string", tt.body)
			}
		})
	}
}

func TestNegatedClass_StaysPrintable(t *testing.T) {
	n := NewClass("^abc")
	// Negation must not select characters outside [0x20, 0x7E].
	if n.Match("\n") || n.Match("\x00") || n.Match("\x7f") {
		t.Error("negated class matches outside the printable range")
	}
	if !n.Match(" ") || !n.Match("~") {
		t.Error("negated class rejects printable boundary characters")
	}
}

func TestConcat(t *testing.T) {
	a := NewLiteral("ab")
	b := NewLiteral("cd")
	a.Concat(b)

	if !a.Match("abcd") {
		t.Error("concat rejects abcd")
	}
	for _, bad := range []string{"", "ab", "cd", "abc", "abcde"} {
		if a.Match(bad) {
			t.Errorf("concat accepts %q", bad)
		}
	}
}

func TestBranch(t *testing.T) {
	a := NewLiteral("ab")
	b := NewLiteral("cd")
	a.Branch(b)

	if !a.Match("ab") || !a.Match("cd") {
		t.Error("alternation rejects one of its branches")
	}
	if a.Match("abcd") || a.Match("") {
		t.Error("alternation accepts a non-branch string")
	}
}

func TestRepeatSkipStar(t *testing.T) {
	plus := NewLiteral("a")
	plus.Repeat()
	if plus.Match("") {
		t.Error("a+ accepts empty")
	}
	if !plus.Match("a") || !plus.Match("aaaa") {
		t.Error("a+ rejects a repetition")
	}

	opt := NewLiteral("a")
	opt.Skip()
	if !opt.Match("") || !opt.Match("a") {
		t.Error("a? rejects a member of {\"\", \"a\"}")
	}
	if opt.Match("aa") {
		t.Error("a? accepts aa")
	}

	star := NewLiteral("a")
	star.Star()
	if !star.Match("") || !star.Match("a") || !star.Match("aaa") {
		t.Error("a* rejects a member of a*")
	}
	if star.Match("b") || star.Match("ab") {
		t.Error("a* accepts a string containing b")
	}
}

func TestRepeat_EdgeIdempotent(t *testing.T) {
	n := NewLiteral("a")
	n.Repeat()
	n.Repeat() // must not add a second epsilon edge
	sole, ok := n.soleAccept()
	if !ok {
		t.Fatal("no accept state after Repeat")
	}
	if !n.ContainsEpsilonJump(sole, n.Start()) {
		t.Error("missing back edge after Repeat")
	}
	if len(n.states[sole].epsNext) != 1 {
		t.Error("Repeat duplicated the back edge")
	}
}

func TestSplice_Translation(t *testing.T) {
	a := NewLiteral("a") // 2 states
	b := NewLiteral("b") // 2 states
	start, accepts := a.splice(b)

	if start != 2 {
		t.Errorf("spliced start = %d, want 2", start)
	}
	if len(accepts) != 1 || accepts[0] != 3 {
		t.Errorf("spliced accepts = %v, want [3]", accepts)
	}
	if a.StateCount() != 4 {
		t.Errorf("StateCount() = %d, want 4", a.StateCount())
	}
}

func TestMarks(t *testing.T) {
	n := NewLiteral("a")
	n.MarkAccepts(2)
	n.MarkAccepts(0)
	n.MarkAccepts(2) // duplicate

	got := n.Marks(n.AcceptStates())
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Marks() = %v, want [0 2]", got)
	}
	if n.Marks(StateSet{n.Start()}) != nil {
		t.Error("start state unexpectedly carries marks")
	}
}

func TestDump_Format(t *testing.T) {
	n := NewLiteral("ab")
	want := "STATE0: {a -> 1}\n" +
		"STATE1: {b -> 2}\n" +
		"STATE2: {}\n" +
		"FINISH_STATES = 2\n"
	if got := n.Dump(); got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDump_EpsilonAndSets(t *testing.T) {
	n := New()
	s1 := n.AddState()
	s2 := n.AddState()
	n.AddEpsilonJump(n.Start(), s1)
	n.AddEpsilonJump(n.Start(), s2)
	n.AddJump(n.Start(), 'x', s1)
	n.AddJump(n.Start(), 'x', s2)
	n.SetAccept(s1, true)
	n.SetAccept(s2, true)

	want := "STATE0: {EPS -> {1,2},x -> {1,2}}\n" +
		"STATE1: {}\n" +
		"STATE2: {}\n" +
		"FINISH_STATES = {1,2}\n"
	if got := n.Dump(); got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}
