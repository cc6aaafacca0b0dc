package deck

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/viant/afs"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "stops at extra marker and drops non-numeric lines",
			content: "#main\n100\nabc\n200\n#extra\n300\n",
			want:    []string{"100", "200"},
		},
		{
			name:    "no extra marker reads to end",
			content: "#main\n100\n200\n!side\n300\n",
			want:    []string{"100", "200", "300"},
		},
		{
			name:    "duplicates collapse keeping first position",
			content: "#main\n200\n100\n200\n100\n",
			want:    []string{"200", "100"},
		},
		{
			name:    "first line dropped even when numeric",
			content: "999\n100\n",
			want:    []string{"100"},
		},
		{
			name:    "windows line endings",
			content: "#created by someone\r\n#main\r\n100\r\n#extra\r\n300\r\n",
			want:    []string{"100"},
		},
		{
			name:    "comment lines skipped",
			content: "#created by deck builder\n#main\n# comment\n46986414\n",
			want:    []string{"46986414"},
		},
		{
			name:    "marker must match exactly",
			content: "#main\n100\n#extra deck\n200\n",
			want:    []string{"100", "200"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content).Values()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRead_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.ydk")
	if err := os.WriteFile(path, []byte("#main\n100\nabc\n200\n#extra\n300\n"), 0644); err != nil {
		t.Fatalf("writing deck: %v", err)
	}

	ids, err := Read(context.Background(), afs.New(), "file://"+filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"100", "200"}
	if got := ids.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Read() = %v, want %v", got, want)
	}
}

func TestRead_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.ydk")
	if _, err := Read(context.Background(), afs.New(), "file://"+filepath.ToSlash(path)); err == nil {
		t.Fatal("expected error for missing deck file")
	}
}
