package testdata_test

import (
	"bytes"
	"testing"

	"github.com/JoschaMetze/edifact-mapper-sub002/testdata"
)

func TestLoadUtilmdAnmeldung(t *testing.T) {
	data, err := testdata.LoadUtilmdAnmeldung()
	if err != nil {
		t.Fatalf("LoadUtilmdAnmeldung() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("LoadUtilmdAnmeldung() returned empty data")
	}
	if !bytes.Contains(data, []byte("UNH+1+UTILMD")) {
		t.Error("LoadUtilmdAnmeldung() message does not contain a UTILMD UNH segment")
	}
	if !bytes.Contains(data, []byte("UNZ+1+")) {
		t.Error("LoadUtilmdAnmeldung() message missing UNZ trailer")
	}
}

func TestLoadMalformedTruncated(t *testing.T) {
	data, err := testdata.LoadMalformedTruncated()
	if err != nil {
		t.Fatalf("LoadMalformedTruncated() error = %v", err)
	}
	if bytes.Contains(data, []byte("UNT+")) {
		t.Error("LoadMalformedTruncated() unexpectedly contains a UNT trailer")
	}
}

func TestLoadMalformedEmpty(t *testing.T) {
	data, err := testdata.LoadMalformedEmpty()
	if err != nil {
		t.Fatalf("LoadMalformedEmpty() error = %v", err)
	}
	if len(data) != 0 {
		t.Errorf("LoadMalformedEmpty() expected 0 bytes, got %d", len(data))
	}
}
