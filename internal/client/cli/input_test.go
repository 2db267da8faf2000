package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "a\nb"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetBoundedInt(t *testing.T) {
	var out bytes.Buffer
	got, err := GetBoundedInt(rdr("8\n"), "SUDS", sudsMin, sudsMax, &out)
	if err != nil || got != 8 {
		t.Fatalf("got %d, err=%v", got, err)
	}
}

func TestGetBoundedInt_RetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	got, err := GetBoundedInt(rdr("abc\n70\n7\n"), "SUDS", sudsMin, sudsMax, &out)
	if err != nil || got != 7 {
		t.Fatalf("got %d, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "between 0 and 10") {
		t.Fatalf("expected retry hint in output, got %q", out.String())
	}
}
