package devtools

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestDetectExtension(t *testing.T) {
	cases := []struct {
		name string
		kind AssetKind
		data []byte
		want string
	}{
		{"png", AssetImages, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A}, "png"},
		{"jpeg", AssetImages, []byte{0xFF, 0xD8, 0xFF, 0xE0}, "jpg"},
		{"gif", AssetImages, []byte("GIF89a"), "gif"},
		{"webp", AssetImages, []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), "webp"},
		{"unknown image", AssetImages, []byte{0x00, 0x01}, "png"},
		{"wav", AssetAudio, []byte("RIFF\x00\x00\x00\x00WAVE"), "wav"},
		{"mp3 frame", AssetAudio, []byte{0xFF, 0xFB, 0x90}, "mp3"},
		{"mp3 id3", AssetAudio, []byte("ID3\x04\x00"), "mp3"},
		{"m4a", AssetAudio, []byte("\x00\x00\x00\x20ftypM4A "), "m4a"},
		{"unknown audio", AssetAudio, []byte{0x00}, "mp3"},
		{"mp4", AssetVideo, []byte("\x00\x00\x00\x18ftypmp42"), "mp4"},
		{"avi", AssetVideo, []byte("RIFF\x00\x00\x00\x00AVI LIST"), "avi"},
		{"unknown video", AssetVideo, nil, "mp4"},
		{"other", AssetKind("files"), []byte("x"), "bin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectExtension(tc.kind, tc.data); got != tc.want {
				t.Fatalf("DetectExtension = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAssetKindFor(t *testing.T) {
	for typ, want := range map[EndpointType]AssetKind{
		TypeImagesGenerations: AssetImages,
		TypeImagesEdits:       AssetImages,
		TypeAudioSpeech:       AssetAudio,
		TypeVideoGenerations:  AssetVideo,
	} {
		if got, ok := AssetKindFor(typ); !ok || got != want {
			t.Fatalf("AssetKindFor(%s) = %q, %v", typ, got, ok)
		}
	}
	if _, ok := AssetKindFor(TypeChatCompletions); ok {
		t.Fatalf("chat completions should not produce assets")
	}
}

func TestAssetContentType(t *testing.T) {
	if got := AssetContentType("assets/images/a.PNG"); got != "image/png" {
		t.Fatalf("png content type = %q", got)
	}
	if got := AssetContentType("assets/video/a.avi"); got != "video/x-msvideo" {
		t.Fatalf("avi content type = %q", got)
	}
	if got := AssetContentType("assets/other/a.bin"); got != "application/octet-stream" {
		t.Fatalf("fallback content type = %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	entries := []Entry{
		{
			ID:         "a",
			Type:       TypeChatCompletions,
			Timestamp:  1700000000000,
			DurationMs: 120,
			Metadata: Metadata{
				Model:    "gpt-4o",
				Provider: "openai",
				Stream:   true,
				Usage:    &UsageInfo{TotalTokens: 30},
				Cost:     &CostInfo{TotalCost: 0.0025},
			},
		},
		{
			ID:        "b",
			Type:      TypeEmbeddings,
			Timestamp: 1700000001000,
			Error:     &ErrorInfo{Message: `bad "input", try again`},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, entries); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header and two rows, got %d", len(rows))
	}
	if rows[0][0] != "id" || rows[0][9] != "error" {
		t.Fatalf("header = %v", rows[0])
	}
	want := []string{"a", "chat.completions", "2023-11-14T22:13:20Z", "120", "gpt-4o", "openai", "true", "30", "0.0025", ""}
	for i, cell := range want {
		if rows[1][i] != cell {
			t.Fatalf("row 1 column %d = %q, want %q", i, rows[1][i], cell)
		}
	}
	if rows[2][9] != `bad "input", try again` || rows[2][7] != "0" {
		t.Fatalf("row 2 = %v", rows[2])
	}
}
