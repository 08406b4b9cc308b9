package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short text single chunk",
			text:       "hello world",
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "exact chunk size single chunk",
			text:       strings.Repeat("a", 100),
			chunkSize:  100,
			overlap:    10,
			wantChunks: 1,
		},
		{
			name:       "two chunks with overlap",
			text:       strings.Repeat("a", 150),
			chunkSize:  100,
			overlap:    50,
			wantChunks: 2,
		},
		{
			name:       "overlap larger than chunk falls back to full step",
			text:       strings.Repeat("a", 250),
			chunkSize:  100,
			overlap:    150,
			wantChunks: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)

			if len(chunks) != tt.wantChunks {
				t.Errorf("chunk count = %d, want %d", len(chunks), tt.wantChunks)
			}

			for i, chunk := range chunks {
				if len([]rune(chunk)) > tt.chunkSize {
					t.Errorf("chunk %d length = %d, exceeds chunkSize %d", i, len(chunk), tt.chunkSize)
				}
			}
		})
	}
}

func TestSplitTextOverlapSharesBoundary(t *testing.T) {
	text := "abcdefghij" // 10 runes
	chunks := SplitText(text, 6, 2)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	// Step is 4, so chunk 2 starts at rune 4 and repeats the last 2 runes
	// of chunk 1.
	tail := chunks[0][len(chunks[0])-2:]
	if !strings.HasPrefix(chunks[1], tail) {
		t.Errorf("chunk 2 %q does not start with overlap %q", chunks[1], tail)
	}
}

func TestSplitTextPreservesContent(t *testing.T) {
	text := strings.Repeat("catalog prose ", 50)
	chunks := SplitText(text, 100, 20)

	// First chunk starts the text, last chunk ends it.
	if !strings.HasPrefix(text, chunks[0]) {
		t.Error("first chunk is not a prefix of the input")
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Error("last chunk is not a suffix of the input")
	}
}
