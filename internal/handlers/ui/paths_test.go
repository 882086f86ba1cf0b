package ui

import "testing"

func TestFriendlyPathFor(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{name: "home itself", path: "/home/me", home: "/home/me", want: "~"},
		{name: "inside home", path: "/home/me/.config/lf/marks", home: "/home/me", want: "~/.config/lf/marks"},
		{name: "sibling with shared prefix", path: "/home/meow/file", home: "/home/me", want: "/home/meow/file"},
		{name: "outside home", path: "/etc/zsh/named", home: "/home/me", want: "/etc/zsh/named"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := friendlyPathFor(tt.path, tt.home); got != tt.want {
				t.Errorf("friendlyPathFor(%q, %q) = %q, want %q", tt.path, tt.home, got, tt.want)
			}
		})
	}
}
