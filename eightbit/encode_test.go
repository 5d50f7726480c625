package eightbit

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var printable = With(USASCIIPrintable, DefaultReplacement)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxChars int
		expected []byte
	}{
		{name: "shorter than cap", input: "Hi!", maxChars: 10, expected: []byte{0x48, 0x69, 0x21}},
		{name: "exact cap", input: "Hi!", maxChars: 3, expected: []byte("Hi!")},
		{name: "capped", input: "Hello", maxChars: 2, expected: []byte("He")},
		{name: "zero cap", input: "Hello", maxChars: 0, expected: []byte{}},
		{name: "negative cap", input: "Hello", maxChars: -4, expected: []byte{}},
		{name: "empty input", input: "", maxChars: 5, expected: []byte{}},
		{name: "space replaced", input: "a b", maxChars: 5, expected: []byte("a*b")},
		{name: "multibyte counts as one", input: "héllo", maxChars: 5, expected: []byte("h*llo")},
		{name: "cap counts runes not bytes", input: "日本語abc", maxChars: 4, expected: []byte("***a")},
		{name: "four byte rune", input: "😀ok", maxChars: 10, expected: []byte("*ok")},
		{name: "control codes", input: "\t\x00\x7f~", maxChars: 10, expected: []byte("***~")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.input, tt.maxChars, printable)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Encode(%q, %d) mismatch (-want +got):\n%s", tt.input, tt.maxChars, diff)
			}
			assert.NotNil(t, got)

			assert.Equal(t, string(tt.expected), EncodeString(tt.input, tt.maxChars, printable))
		})
	}
}

func TestEncode_PreSized(t *testing.T) {
	got := Encode("héllo wörld", 4, printable)
	assert.Len(t, got, 4)
	assert.Equal(t, 4, cap(got))
}

func TestEncode_CallsFunctionInOrder(t *testing.T) {
	var seen []rune
	fn := func(r rune) byte {
		seen = append(seen, r)
		return byte(len(seen))
	}

	got := Encode("aé☃😀z", 4, fn)

	assert.Equal(t, []rune{'a', 'é', '☃', '😀'}, seen)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)
}

func TestEncode_ZeroCapSkipsFunction(t *testing.T) {
	called := false
	fn := func(rune) byte {
		called = true
		return 0
	}

	assert.Empty(t, Encode("abc", 0, fn))
	assert.False(t, called)
}

func TestEncode_InvalidUTF8(t *testing.T) {
	var seen []rune
	fn := func(r rune) byte {
		seen = append(seen, r)
		return '?'
	}

	got := Encode("a\xff\xfeb", 10, fn)

	assert.Equal(t, []byte("????"), got)
	assert.Equal(t, []rune{'a', utf8.RuneError, utf8.RuneError, 'b'}, seen)
}

func TestEncode_Latin1StyleMapping(t *testing.T) {
	latin1 := func(r rune) byte {
		if r <= 0xFF {
			return byte(r)
		}
		return '?'
	}

	got := Encode("café ☕", 10, latin1)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, ' ', '?'}, got)

	// The string flavor carries the same raw bytes, not UTF-8.
	s := EncodeString("café ☕", 10, latin1)
	assert.Equal(t, string(got), s)
	assert.False(t, utf8.ValidString(s))
}

func TestAppend(t *testing.T) {
	dst := []byte("<")
	dst = Append(dst, "abc", 2, printable)
	dst = Append(dst, "xyz", 0, printable)
	dst = Append(dst, "z", 5, printable)

	assert.Equal(t, []byte("<abz"), dst)
}

func TestAppend_StopsAtEndOfInput(t *testing.T) {
	got := Append(nil, "ab", 100, printable)
	require.Len(t, got, 2)
	assert.Equal(t, []byte("ab"), got)
}

func TestRuneCount(t *testing.T) {
	assert.Equal(t, 0, runeCount("abc", 0))
	assert.Equal(t, 0, runeCount("abc", -1))
	assert.Equal(t, 2, runeCount("abc", 2))
	assert.Equal(t, 3, runeCount("abc", 10))
	assert.Equal(t, 3, runeCount("日本語", 10))
	assert.Equal(t, 0, runeCount("", 10))
}

func FuzzEncode(f *testing.F) {
	f.Add("Hi!", 10)
	f.Add("héllo wörld", 4)
	f.Add("", 0)

	f.Fuzz(func(t *testing.T, s string, maxChars int) {
		got := Encode(s, maxChars, printable)

		runes := []rune(s)
		want := min(max(maxChars, 0), len(runes))
		if len(got) != want {
			t.Fatalf("len(Encode(%q, %d)) = %d, expected %d", s, maxChars, len(got), want)
		}
		for i, b := range got {
			if expected := USASCIIPrintable(runes[i], DefaultReplacement); b != expected {
				t.Fatalf("Encode(%q, %d)[%d] = %#x, expected %#x", s, maxChars, i, b, expected)
			}
		}
		if EncodeString(s, maxChars, printable) != string(got) {
			t.Fatalf("EncodeString and Encode disagree for %q", s)
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	text := strings.Repeat("Hello Wörld ", 1000)

	b.ResetTimer()
	for range b.N {
		Encode(text, 255, printable)
	}
}
