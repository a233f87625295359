package core

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGameRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     NewGameRequest
		wantErr string
	}{
		{"default board", NewGameRequest{Size: 10, Mines: 10}, ""},
		{"one safe cell", NewGameRequest{Size: 3, Mines: 8}, ""},
		{"missing size", NewGameRequest{Mines: 3}, "Size is required"},
		{"size too large", NewGameRequest{Size: 100, Mines: 3}, "Size must be at most 99"},
		{"mines fill board", NewGameRequest{Size: 3, Mines: 9}, "Mines must be less than 9"},
		{"no mines", NewGameRequest{Size: 4}, "Mines is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate.Struct(tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", ValidationDetails(err))
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if got := ValidationDetails(err); !strings.Contains(got, tt.wantErr) {
				t.Errorf("details %q do not contain %q", got, tt.wantErr)
			}
		})
	}
}

func TestGamesQueryValidation(t *testing.T) {
	if err := Validate.Struct(GamesQuery{}); err != nil {
		t.Errorf("empty query rejected: %v", err)
	}
	err := Validate.Struct(GamesQuery{State: "paused"})
	if err == nil || !strings.Contains(ValidationDetails(err), "State must be one of [ongoing won lost]") {
		t.Errorf("bad state accepted or misreported: %v", err)
	}
}

func TestValidationDetailsPassesThroughOtherErrors(t *testing.T) {
	if got := ValidationDetails(errors.New("boom")); got != "boom" {
		t.Errorf("got %q", got)
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []State{StateOngoing, StateWon, StateLost} {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseState("draw"); ok {
		t.Error("ParseState accepted unknown state")
	}
	if StateOngoing.Finished() || !StateLost.Finished() {
		t.Error("Finished misreports")
	}
}
