package docx

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

const sampleMinutes = `# 会議議事録

## 1. 会議の基本情報
- **タイトル**: 定例会議
- 日時: 情報なし

## 5. 次回のアクション項目
| 担当者 | 内容 | 期限 |
|---|---|---|
| 田中 | 資料作成 | 情報なし |

- [ ] 見積もりを送る
`

func TestWriteMinutes(t *testing.T) {
	out := filepath.Join(t.TempDir(), "meeting1_minutes.docx")

	if err := WriteMinutes(sampleMinutes, out); err != nil {
		t.Fatalf("WriteMinutes() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// docx is a zip container
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output is not a zip archive")
	}
}

func TestTableRow(t *testing.T) {
	got := tableRow("| 田中 | 資料作成 | 情報なし |")
	want := "田中\t資料作成\t情報なし"
	if got != want {
		t.Errorf("tableRow() = %q, want %q", got, want)
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**決定**", "決定"},
		{"`code` and __under__", "code and under"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanMarkdownInline(tt.in); got != tt.want {
			t.Errorf("cleanMarkdownInline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
