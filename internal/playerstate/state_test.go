package playerstate

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Expanded, "Expanded"},
		{Collapsed, "Collapsed"},
		{MiniPlayer, "Mini Player"},
		{Fullscreen, "Fullscreen"},
		{PIPMode, "Picture in Picture"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestByEndpoint_RoundTrip(t *testing.T) {
	for _, s := range []State{Expanded, Collapsed, MiniPlayer, Fullscreen, PIPMode} {
		got, ok := ByEndpoint(s.Endpoint())
		if !ok {
			t.Fatalf("ByEndpoint(%q) not found", s.Endpoint())
		}
		if got != s {
			t.Errorf("ByEndpoint(%q) = %v, want %v", s.Endpoint(), got, s)
		}
	}

	if _, ok := ByEndpoint("nowhere"); ok {
		t.Error("ByEndpoint(nowhere) should not resolve")
	}
	if _, ok := ByEndpoint(""); ok {
		t.Error("ByEndpoint(\"\") should not resolve")
	}
}

func TestByName(t *testing.T) {
	got, ok := ByName("Mini Player")
	if !ok || got != MiniPlayer {
		t.Errorf("ByName(Mini Player) = %v, %v", got, ok)
	}
	if _, ok := ByName("Theater"); ok {
		t.Error("ByName(Theater) should not resolve")
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{Expanded, Collapsed, true},
		{Collapsed, Expanded, true},
		{Expanded, MiniPlayer, true},
		{MiniPlayer, Expanded, true},
		{MiniPlayer, Collapsed, false},
		{Collapsed, MiniPlayer, false},
		{Expanded, Expanded, false},
		{Expanded, Fullscreen, false},
		{PIPMode, Expanded, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
		err := ValidateTransition(tt.from, tt.to)
		if tt.want && err != nil {
			t.Errorf("ValidateTransition(%v, %v) = %v, want nil", tt.from, tt.to, err)
		}
		if !tt.want && err == nil {
			t.Errorf("ValidateTransition(%v, %v) = nil, want error", tt.from, tt.to)
		}
	}
}

func TestTargets(t *testing.T) {
	got := Targets(Expanded)
	if len(got) != 2 || got[0] != Collapsed || got[1] != MiniPlayer {
		t.Errorf("Targets(Expanded) = %v, want [Collapsed MiniPlayer]", got)
	}
	if got := Targets(Fullscreen); len(got) != 0 {
		t.Errorf("Targets(Fullscreen) = %v, want none", got)
	}
}

func TestMachine_SetNotifies(t *testing.T) {
	m := NewMachine(Expanded)

	var calls [][2]State
	m.Subscribe(func(prev, next State) {
		calls = append(calls, [2]State{prev, next})
	})

	if !m.Set(Collapsed) {
		t.Fatal("Set(Collapsed) = false, want true")
	}
	if m.Set(Collapsed) {
		t.Error("Set to same state should report false")
	}
	if m.Current() != Collapsed {
		t.Errorf("Current() = %v, want Collapsed", m.Current())
	}
	if len(calls) != 1 || calls[0] != [2]State{Expanded, Collapsed} {
		t.Errorf("subscriber calls = %v, want [[Expanded Collapsed]]", calls)
	}
}
