package bookmark

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestDialect_Valid(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    bool
	}{
		{dialect: DialectLF, want: true},
		{dialect: DialectZsh, want: true},
		{dialect: DialectCdAlias, want: true},
		{dialect: Dialect("fish"), want: false},
		{dialect: Dialect("ZSH"), want: false},
		{dialect: Dialect(""), want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			if got := tt.dialect.Valid(); got != tt.want {
				t.Errorf("Dialect(%q).Valid() = %v, want %v", tt.dialect, got, tt.want)
			}
		})
	}
}

func TestDialects_AllValid(t *testing.T) {
	for _, d := range Dialects() {
		if !d.Valid() {
			t.Errorf("Dialects() returned invalid dialect %q", d)
		}
	}
}

func TestErrors_MessagesAndUnwrap(t *testing.T) {
	malformed := &MalformedLineError{Line: 3, Content: "justashortcutnopath", Reason: "missing path"}
	if !strings.Contains(malformed.Error(), "line 3") || !strings.Contains(malformed.Error(), "justashortcutnopath") {
		t.Errorf("MalformedLineError.Error() = %q, want line number and content", malformed.Error())
	}

	readErr := &InputReadError{Path: "/tmp/marks", Err: fs.ErrNotExist}
	if !errors.Is(readErr, fs.ErrNotExist) {
		t.Errorf("InputReadError does not unwrap to its cause")
	}
	if !strings.Contains(readErr.Error(), "/tmp/marks") {
		t.Errorf("InputReadError.Error() = %q, want path", readErr.Error())
	}

	writeErr := &OutputWriteError{Path: "/tmp/out", Err: fs.ErrPermission}
	if !errors.Is(writeErr, fs.ErrPermission) {
		t.Errorf("OutputWriteError does not unwrap to its cause")
	}
}
