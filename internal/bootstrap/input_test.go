package bootstrap

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  anna  \n"))

	got, err := GetSimpleText(reader, "Enter username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "anna" {
		t.Errorf("expected %q, got %q", "anna", got)
	}
	if !strings.Contains(out.String(), "Enter username") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleTextEOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("anna"))

	got, err := GetSimpleText(reader, "Enter username", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "anna" {
		t.Errorf("expected %q, got %q", "anna", got)
	}
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()
	readPassword = func(fd int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pw) != "s3cret" {
		t.Errorf("expected %q, got %q", "s3cret", pw)
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Errorf("prompt not written: %q", out.String())
	}
}
