package errors

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(KeyError, Unknown)
	if err == nil {
		t.Fatal("Error creation failed.")
	}
	if err.ErrorCode != int(KeyError)+int(Unknown) {
		t.Fatal("Error code construction failed.")
	}
	if err.Message != "Unknown key error" {
		t.Fatal("Error message construction failed.")
	}
}

func TestWrap(t *testing.T) {
	msg := "Arbitrary error message"
	err := Wrap(ContainerError, Unknown, errors.New(msg))
	if err == nil {
		t.Fatal("Error creation failed.")
	}
	if err.ErrorCode != int(ContainerError)+int(Unknown) {
		t.Fatal("Error code construction failed.")
	}
	if err.Message != msg {
		t.Fatal("Error message construction failed.")
	}
}

func TestMarshal(t *testing.T) {
	msg := "Arbitrary error message"
	err := Wrap(KeyError, Unknown, errors.New(msg))
	bytes, _ := json.Marshal(err)
	var received Error
	json.Unmarshal(bytes, &received)
	if received.ErrorCode != int(KeyError)+int(Unknown) {
		t.Fatal("Error code construction failed.")
	}
	if received.Message != msg {
		t.Fatal("Error message construction failed.")
	}
}

func TestErrorString(t *testing.T) {
	err := New(ContainerError, AlgorithmMismatch)
	if err.Error() != `{"code":2100,"message":"Key container algorithm is not Ed25519"}` {
		t.Fatal("Error string construction failed:", err.Error())
	}
}

func TestErrorCodes(t *testing.T) {
	codes := map[*Error]int{
		New(KeyError, InvalidLength):           1100,
		New(KeyError, MalformedKey):            1200,
		New(KeyError, GenerationFailed):        1300,
		New(ContainerError, DecodeFailed):      2001,
		New(ContainerError, AlgorithmMismatch): 2100,
		New(ContainerError, MalformedFraming):  2200,
	}
	for err, code := range codes {
		if err.ErrorCode != code {
			t.Fatalf("got code %d, want %d (%s)", err.ErrorCode, code, err.Message)
		}
	}
}
