package bookmarkparsing

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/google/go-cmp/cmp"
)

func TestNewLineParser(t *testing.T) {
	parser := NewLineParser()
	if parser == nil {
		t.Fatal("NewLineParser() returned nil")
	}
	if _, ok := parser.(*LineParser); !ok {
		t.Errorf("NewLineParser() did not return a *LineParser, got %T", parser)
	}
}

func TestLineParser_Parse(t *testing.T) {
	parser := NewLineParser()
	downloadsAndDesktop := bookmark.List{
		{Shortcut: "d", Path: "~/downloads"},
		{Shortcut: "D", Path: "~/desktop"},
	}

	tests := []struct {
		name  string
		input string
		want  bookmark.List
	}{
		{
			name:  "two simple entries",
			input: "d ~/downloads\nD ~/desktop\n",
			want:  downloadsAndDesktop,
		},
		{
			name:  "comment and blank line contribute nothing",
			input: "# my bookmarks\nd ~/downloads\n\nD ~/desktop\n",
			want:  downloadsAndDesktop,
		},
		{
			name:  "no trailing newline",
			input: "d ~/downloads\nD ~/desktop",
			want:  downloadsAndDesktop,
		},
		{
			name:  "CRLF line endings",
			input: "d ~/downloads\r\nD ~/desktop\r\n",
			want:  downloadsAndDesktop,
		},
		{
			name:  "indented comment and whitespace-only line",
			input: "   # indented\n \t \nd ~/downloads\nD ~/desktop",
			want:  downloadsAndDesktop,
		},
		{
			name:  "tabs and runs of whitespace as separator",
			input: "d\t\t~/downloads\nD    ~/desktop   ",
			want:  downloadsAndDesktop,
		},
		{
			name:  "path keeps internal spaces and shell characters",
			input: "w   /mnt/my work/$PROJECT # not a comment",
			want:  bookmark.List{{Shortcut: "w", Path: "/mnt/my work/$PROJECT # not a comment"}},
		},
		{
			name:  "quoted path keeps its quotes",
			input: `w "/mnt/my work"`,
			want:  bookmark.List{{Shortcut: "w", Path: `"/mnt/my work"`}},
		},
		{
			name:  "empty quotes are a verbatim path",
			input: `x ""`,
			want:  bookmark.List{{Shortcut: "x", Path: `""`}},
		},
		{
			name:  "several quoted words stay verbatim",
			input: `w "/mnt/a" "/mnt/b"`,
			want:  bookmark.List{{Shortcut: "w", Path: `"/mnt/a" "/mnt/b"`}},
		},
		{
			name:  "duplicate shortcuts are kept in file order",
			input: "p ~/one\np ~/two\n",
			want:  bookmark.List{{Shortcut: "p", Path: "~/one"}, {Shortcut: "p", Path: "~/two"}},
		},
		{
			name:  "shortcut is case sensitive and may contain symbols",
			input: "Cfg ~/.config\n.. ~/..\n",
			want:  bookmark.List{{Shortcut: "Cfg", Path: "~/.config"}, {Shortcut: "..", Path: "~/.."}},
		},
		{
			name:  "empty input",
			input: "",
			want:  bookmark.List{},
		},
		{
			name:  "only comments and blanks",
			input: "# a\n\n  # b\n",
			want:  bookmark.List{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() unexpected error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineParser_Parse_Malformed(t *testing.T) {
	parser := NewLineParser()

	tests := []struct {
		name        string
		input       string
		wantLine    int
		wantContent string
		wantReason  string
	}{
		{
			name:        "shortcut without path",
			input:       "justashortcutnopath",
			wantLine:    1,
			wantContent: "justashortcutnopath",
			wantReason:  "missing path",
		},
		{
			name:        "line number counts comments and blanks",
			input:       "# header\nd ~/downloads\n\n  lonely  \nD ~/desktop\n",
			wantLine:    4,
			wantContent: "  lonely  ",
			wantReason:  "missing path",
		},
		{
			name:        "first malformed line wins",
			input:       "a\nb\n",
			wantLine:    1,
			wantContent: "a",
			wantReason:  "missing path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse() expected error, got entries %#v", got)
			}
			if got != nil {
				t.Errorf("Parse() expected nil list on error, got %#v", got)
			}

			var malformed *bookmark.MalformedLineError
			if !errors.As(err, &malformed) {
				t.Fatalf("Parse() error = %T %v, want *bookmark.MalformedLineError", err, err)
			}
			want := &bookmark.MalformedLineError{Line: tt.wantLine, Content: tt.wantContent, Reason: tt.wantReason}
			if diff := cmp.Diff(want, malformed); diff != "" {
				t.Errorf("MalformedLineError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineParser_Parse_Idempotent(t *testing.T) {
	parser := NewLineParser()
	input := "# marks\nd ~/downloads\n\nD ~/desktop\nw \"/mnt/my work\"\n"

	first, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("first Parse() error = %v", err)
	}
	second, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Parse() is not idempotent (-first +second):\n%s", diff)
	}
}
