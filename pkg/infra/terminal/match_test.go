package terminal_test

import (
	"testing"

	"github.com/0x0zAgency/create-infinitymint/pkg/infra/terminal"
	"github.com/m-mizutani/gt"
)

func TestResolveChoice(t *testing.T) {
	languages := []string{"Typescript", "Javascript", "Exit"}

	tests := []struct {
		name      string
		answer    string
		choices   []string
		wantIndex int
		wantOK    bool
	}{
		{"empty picks first", "", languages, 0, true},
		{"whitespace picks first", "   ", languages, 0, true},
		{"number is 1-based", "2", languages, 1, true},
		{"last number", "3", languages, 2, true},
		{"number too large", "99", languages, -1, false},
		{"zero is out of range", "0", languages, -1, false},
		{"negative is out of range", "-1", languages, -1, false},
		{"number with trailing paren", "2)", languages, 1, true},
		{"number with trailing text", "1 please", languages, 0, true},
		{"trailing text out of range", "7)", languages, -1, false},
		{"sign without digits is text", "-", languages, -1, true},
		{"short answer fails half-length rule", "ts", languages, -1, true},
		{"Java is under half of Javascript", "Java", languages, -1, true},
		{"Javas covers half of Javascript", "Javas", languages, 1, true},
		{"case insensitive", "TYPESCRIPT", languages, 0, true},
		{"exact short label", "exit", languages, 2, true},
		{"first match wins", "script", []string{"Typescript", "Javascript"}, 0, true},
		{"no substring", "python", languages, -1, true},
		{"action label", "<cancel>", []string{"src", "<Back>", "<Cancel>"}, 2, true},
		{"counts runes", "été", []string{"étés"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := terminal.ResolveChoice(tt.answer, tt.choices)
			gt.Value(t, ok).Equal(tt.wantOK)
			gt.Value(t, index).Equal(tt.wantIndex)
		})
	}
}
